package errors

import (
	"strings"
	"unicode"
)

// ValidateParamKey validates a rendering parameter name read from a style sheet.
//
// Keys are dotted lowercase paths such as "axes.edgecolor" or
// "figure.subplot.top":
//   - No empty keys or empty path segments
//   - No whitespace or control characters
//   - Maximum length of 128 characters
func ValidateParamKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidStyle, "parameter name cannot be empty")
	}

	const maxKeyLength = 128
	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidStyle, "parameter name too long (max %d characters)", maxKeyLength)
	}

	for _, r := range key {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidStyle, "parameter name %q contains whitespace or control characters", key)
		}
	}

	for _, part := range strings.Split(key, ".") {
		if part == "" {
			return New(ErrCodeInvalidStyle, "parameter name %q has an empty segment", key)
		}
	}

	return nil
}

// ValidateFormats checks output format names against the supported set.
func ValidateFormats(formats []string, supported ...string) error {
	for _, f := range formats {
		ok := false
		for _, s := range supported {
			if f == s {
				ok = true
				break
			}
		}
		if !ok {
			return New(ErrCodeInvalidFormat, "unsupported format %q (supported: %s)", f, strings.Join(supported, ", "))
		}
	}
	return nil
}
