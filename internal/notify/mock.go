package notify

import (
	"context"
	"fmt"
)

// Mock stands in when no bot token is configured. It never delivers anything
// and always reports what would have been sent.
type Mock struct{}

func (Mock) Notify(_ context.Context, username, _, documentTitle string) (string, error) {
	return fmt.Sprintf("Notification would be sent to @%s about \"%s\"", username, documentTitle), nil
}
