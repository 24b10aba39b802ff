// Package notify is the desktop-notification collaborator: a fire-and-forget
// "show this text" call behind a small interface so the watch loop can be
// tested without a desktop session.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier sends a best-effort notification. An error affects only that one
// call; the caller keeps running.
type Notifier interface {
	Send(title string) error
}

// Desktop shows OS desktop notifications.
type Desktop struct {
	// AppName labels the notification source.
	AppName string
}

// Send displays a desktop notification with the given title.
func (d *Desktop) Send(title string) error {
	app := d.AppName
	if app == "" {
		app = "remind"
	}
	if err := beeep.Notify(title, "", ""); err != nil {
		return fmt.Errorf("%s: show notification: %w", app, err)
	}
	return nil
}
