package timeutil

import "time"

// Now returns the current UTC time truncated to whole seconds, which is the
// resolution persisted in created_at/updated_at columns.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
