// Package notify delivers in-platform "document shared with you" messages.
package notify

import "context"

// Notifier sends a share notification to a recipient and returns a
// human-readable delivery message.
type Notifier interface {
	Notify(ctx context.Context, username, documentID, documentTitle string) (string, error)
}
