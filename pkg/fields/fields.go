// Package fields holds the required-field rule shared by the API handlers
// and the form client, so both sides reject the same payloads.
package fields

import (
	"strings"

	"github.com/PrinceEeppakayal/Autohub-Car-Selling-Website/pkg/apperror"
)

// IsBlank reports whether a submitted value counts as absent: nil, or a
// string that is empty after trimming.
func IsBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case *string:
		return val == nil || strings.TrimSpace(*val) == ""
	}
	return false
}

// Require checks required in order and fails on the first blank one.
func Require(payload map[string]any, required []string) error {
	for _, name := range required {
		if IsBlank(payload[name]) {
			return apperror.Missing(name)
		}
	}
	return nil
}

// RequireStrings is Require for string-valued payloads.
func RequireStrings(payload map[string]string, required []string) error {
	for _, name := range required {
		if strings.TrimSpace(payload[name]) == "" {
			return apperror.Missing(name)
		}
	}
	return nil
}
