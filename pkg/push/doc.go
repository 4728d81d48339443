// Package push provides a provider-agnostic interface for delivering push
// notifications, with a OneSignal-backed implementation and a development
// sender that writes notifications to disk.
//
// The package is built around the Sender interface so application code stays
// decoupled from the push provider:
//   - NewOneSignalSender for production delivery through OneSignal
//   - NewDevSender for local development (saves pushes as JSON files)
//
// # Usage
//
// Production delivery:
//
//	client := onesignal.New("rest-api-key", "app-id")
//	sender := push.MustNewOneSignalSender(client)
//
//	err := sender.SendPush(ctx, push.Notification{
//	    Title:     "Order update",
//	    Body:      "Your order shipped",
//	    Data:      map[string]string{"order_id": "ord-42"},
//	    PlayerIDs: []string{"device-1"},
//	})
//
// Development mode saves pushes locally instead:
//
//	sender := push.NewDevSender("./push-output")
//	err := sender.SendPush(ctx, notification)
//	// Creates a timestamped JSON file per push in ./push-output/
//
// # Error Handling
//
// Sentinel errors classify failures for errors.Is:
//   - ErrInvalidNotification: the notification failed validation
//   - ErrFailedToSendPush: delivery failed; the provider error is joined in
//   - ErrInvalidConfig: sender construction failed
package push
