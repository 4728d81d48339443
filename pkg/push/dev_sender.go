package push

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// DevSender implements Sender for local development. It saves each push as a
// JSON file to a specified directory instead of calling a push provider.
type DevSender struct {
	dir string
}

// NewDevSender creates a development push sender that saves notifications to
// disk. The directory will be created if it doesn't exist.
func NewDevSender(dir string) Sender {
	return &DevSender{dir: dir}
}

// pushArtifact is the on-disk shape of a saved notification.
type pushArtifact struct {
	Timestamp string            `json:"timestamp"`
	Title     string            `json:"title,omitempty"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	PlayerIDs []string          `json:"player_ids"`
}

// SendPush saves the notification as a JSON file to the configured directory.
// Filenames combine a timestamp with a UUID so bursts landing in the same
// second never collide.
func (d *DevSender) SendPush(ctx context.Context, n Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendPush, err)
	}

	now := time.Now()
	artifact := pushArtifact{
		Timestamp: now.Format(time.RFC3339),
		Title:     n.Title,
		Body:      n.Body,
		Data:      n.Data,
		PlayerIDs: n.PlayerIDs,
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrFailedToSendPush, err)
	}

	filename := fmt.Sprintf("%s_%s.json", now.Format("2006_01_02_150405"), uuid.NewString())
	if err := os.WriteFile(filepath.Join(d.dir, filename), data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write file: %v", ErrFailedToSendPush, err)
	}

	return nil
}
