package push

import (
	"context"
	"errors"
	"fmt"

	"github.com/NickSklyuev/onesignal-api-override/pkg/onesignal"
)

type oneSignalSender struct {
	client *onesignal.Client
}

// NewOneSignalSender creates a OneSignal-backed push sender. The client is
// required; construct it with onesignal.New or onesignal.NewFromConfig.
func NewOneSignalSender(client *onesignal.Client) (Sender, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: client is required", ErrInvalidConfig)
	}
	return &oneSignalSender{client: client}, nil
}

// MustNewOneSignalSender creates a OneSignal-backed sender that panics on
// invalid configuration.
func MustNewOneSignalSender(client *onesignal.Client) Sender {
	sender, err := NewOneSignalSender(client)
	if err != nil {
		panic(err)
	}
	return sender
}

// SendPush implements Sender on top of the OneSignal notification endpoints.
// A titled notification goes through the override endpoint so the heading is
// carried; a plain one uses the simple contents-only shape.
func (s *oneSignalSender) SendPush(ctx context.Context, n Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	var data any
	if len(n.Data) > 0 {
		data = n.Data
	}

	var err error
	if n.Title != "" {
		_, err = s.client.SendOverrideNotification(ctx, onesignal.OverrideNotificationParams{
			Headings:  map[string]string{"en": n.Title},
			Message:   n.Body,
			Data:      data,
			PlayerIDs: n.PlayerIDs,
		})
	} else {
		_, err = s.client.SendNotification(ctx, n.Body, data, n.PlayerIDs)
	}
	if err != nil {
		return errors.Join(ErrFailedToSendPush, err)
	}
	return nil
}
