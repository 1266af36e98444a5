package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLabelLength bounds node labels, including the placeholder label.
const MaxLabelLength = 64

// ValidateLabel checks a node label for display safety.
//
// Labels end up in DOT source, SVG text and terminal output, so they must be
// non-empty, short, and free of control characters and double quotes.
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidLabel, "label cannot be empty")
	}
	if !utf8.ValidString(label) {
		return New(ErrCodeInvalidLabel, "label must be valid UTF-8")
	}
	if utf8.RuneCountInString(label) > MaxLabelLength {
		return New(ErrCodeInvalidLabel, "label too long (max %d characters)", MaxLabelLength)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label contains invalid control characters")
		}
	}
	if strings.Contains(label, `"`) {
		return New(ErrCodeInvalidLabel, "label cannot contain double quotes")
	}
	return nil
}

// ValidateOutputPath validates a file path given for writing artifacts.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
