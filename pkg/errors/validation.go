package errors

import (
	"strconv"
	"strings"
	"unicode"
)

// ValidateIndex checks that index addresses a member of a collection with
// the given supply. Indices are zero-based, so supply itself is out of range.
func ValidateIndex(index, supply uint64) error {
	if index >= supply {
		return New(ErrCodeIndexOutOfRange, "index %d out of range (supply %d)", index, supply)
	}
	return nil
}

// ParseIndex parses a decimal token index as supplied on a command line or
// in a URL path. Signs, whitespace, and non-decimal prefixes are rejected so
// that "0x10" and "+1" never silently alias another index.
func ParseIndex(s string) (uint64, error) {
	if s == "" {
		return 0, New(ErrCodeInvalidInput, "index cannot be empty")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, New(ErrCodeInvalidInput, "index must be a decimal integer: %q", s)
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidInput, err, "index %q does not fit in 64 bits", s)
	}
	return n, nil
}

// ValidateRange checks a half-open index range [start, end) against supply.
// An empty range is an error because it always indicates a typo on the
// command line.
func ValidateRange(start, end, supply uint64) error {
	if start >= end {
		return New(ErrCodeInvalidInput, "empty range [%d, %d)", start, end)
	}
	if end > supply {
		return New(ErrCodeIndexOutOfRange, "range end %d exceeds supply %d", end, supply)
	}
	return nil
}

// ValidateName validates a collection or category name.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 128 characters
//   - No control characters
//   - No path separators (names become file and cache key components)
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "%s cannot be empty", kind)
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "%s too long (max 128 characters)", kind)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", kind)
		}
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "%s cannot contain path separators", kind)
	}
	return nil
}

// ValidateURI validates a connection URI against a set of allowed schemes.
func ValidateURI(rawURI string, schemes ...string) error {
	if rawURI == "" {
		return New(ErrCodeInvalidConfig, "URI cannot be empty")
	}
	for _, s := range schemes {
		if strings.HasPrefix(rawURI, s+"://") {
			return nil
		}
	}
	return New(ErrCodeInvalidConfig, "URI must use one of the schemes %v", schemes)
}
