// Package doclink builds and parses shareable document links of the form
// https://<host>/doc/{id}.
package doclink

import (
	"fmt"
	"regexp"
	"strings"

	appErr "github.com/astrumlab/tzbrief/internal/pkg/errors"
)

const DefaultBase = "https://tma.astrum.app"

var docPathRegex = regexp.MustCompile(`/doc/([a-f0-9-]+)`)

func Build(base, documentID string) string {
	if base == "" {
		base = DefaultBase
	}
	return strings.TrimSuffix(base, "/") + "/doc/" + documentID
}

// Parse extracts the document id from a share link. Anything that does not
// contain a /doc/{id} path is rejected before any lookup is attempted.
func Parse(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty link", appErr.ErrInvalid)
	}
	match := docPathRegex.FindStringSubmatch(raw)
	if match == nil {
		return "", fmt.Errorf("%w: invalid link format", appErr.ErrInvalid)
	}
	return match[1], nil
}
