// Package onesignal provides a thin client for the OneSignal push-notification
// REST API: device registration, device token updates, and notification
// delivery to explicit recipients, segments, or fully manual payloads.
//
// The package follows a deliberately small surface:
//   - One Client per (API key, app id) pair, safe for concurrent use
//   - Every request carries the configured app id; callers never pass it
//   - Exactly two failure classes, distinguishable with errors.Is
//   - No retries, queuing, or rate limiting - those belong to the caller
//
// # Usage
//
// Construct a client from explicit credentials:
//
//	client := onesignal.New("rest-api-key", "app-id")
//
//	deviceID, err := client.RegisterDevice(ctx, pushToken, onesignal.PlatformIOS)
//	if err != nil {
//	    // Handle transport or format error
//	}
//
//	_, err = client.SendNotification(ctx, "Hello!", map[string]string{
//	    "screen": "inbox",
//	}, []string{deviceID})
//
// Or from the environment (ONESIGNAL_API_KEY, ONESIGNAL_APP_ID,
// ONESIGNAL_SANDBOX), with optional .env loading:
//
//	cfg, err := onesignal.LoadConfig()
//	if err != nil {
//	    // Handle configuration error
//	}
//	client, err := onesignal.NewFromConfig(cfg)
//
// The full OneSignal payload surface (multi-locale contents, filters,
// scheduling) is reachable through SendRawNotification:
//
//	_, err = client.SendRawNotification(ctx, map[string]any{
//	    "include_player_ids": []string{"p1"},
//	    "contents":           map[string]string{"en": "hi", "de": "hallo"},
//	})
//
// # Error Handling
//
// Operations fail in exactly two ways:
//   - ErrRequestFailed: the HTTP exchange itself failed (DNS, refused
//     connection, TLS, timeout). The underlying error stays reachable.
//   - ErrWrongJSONFormat: the exchange completed but the body is not JSON.
//
// No HTTP status code is inspected: a well-formed JSON error body from the
// service resolves as success, and callers that care inspect the returned
// Response map. This keeps the client an honest transport wrapper instead of
// a guess at remote semantics.
//
//	if errors.Is(err, onesignal.ErrRequestFailed) {
//	    // Network problem - maybe retry at the orchestration layer
//	}
//
// # Sandbox
//
// WithSandbox (or ONESIGNAL_SANDBOX=true) sets the registration test flag so
// iOS device registrations target Apple's sandbox push certificate. It has no
// effect on notification sends.
package onesignal
