package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.UGCPolicy()

// Sanitize strips dangerous HTML from user-provided content before it is
// persisted. Plain text passes through unchanged.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
