package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds unit, stream, and arc identifiers. The limit is
// generous; real flowsheet paths are far shorter.
const maxNameLength = 256

// ValidateComponentName validates a unit or stream identifier.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - Maximum length of 256 characters
//
// Grammar-specific escaping (Mermaid, D2) is handled by the formatters;
// this only rejects names that no output format could represent.
func ValidateComponentName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "component name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "component name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "component name contains control characters")
		}
	}

	if strings.Contains(name, "\x00") {
		return New(ErrCodeInvalidInput, "component name contains a null byte")
	}

	return nil
}

// ValidateOverrideKey validates a display-name override key. Override keys
// share the component name rules but additionally may carry an index
// suffix (e.g. "units[2]"), which is accepted as-is.
func ValidateOverrideKey(key string) error {
	if err := ValidateComponentName(key); err != nil {
		return err
	}
	if strings.Count(key, "[") != strings.Count(key, "]") {
		return New(ErrCodeInvalidInput, "unbalanced brackets in override key: %q", key)
	}
	return nil
}
