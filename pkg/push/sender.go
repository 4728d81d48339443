package push

import (
	"context"
	"fmt"
)

// Sender represents an interface for delivering push notifications.
type Sender interface {
	SendPush(ctx context.Context, n Notification) error
}

// Notification represents a single push message addressed to explicit
// devices.
type Notification struct {
	Title     string            `json:"title,omitempty"` // Optional heading shown above the body
	Body      string            `json:"body"`            // Message text
	Data      map[string]string `json:"data,omitempty"`  // Payload forwarded to the receiving app
	PlayerIDs []string          `json:"player_ids"`      // Provider-assigned recipient device ids
}

// Validate checks that the notification is deliverable.
func (n Notification) Validate() error {
	if n.Body == "" {
		return fmt.Errorf("%w: Body is required", ErrInvalidNotification)
	}
	if len(n.PlayerIDs) == 0 {
		return fmt.Errorf("%w: PlayerIDs is required", ErrInvalidNotification)
	}
	return nil
}
