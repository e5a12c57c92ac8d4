package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Sanitize strips all HTML from user supplied text.
func Sanitize(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
