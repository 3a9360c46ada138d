package patch

import "strings"

// Coalesce returns *ptr when set, otherwise fallback.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Text applies a partial-update string: nil keeps fallback, anything else is trimmed.
// A blank result is returned as is so validation can reject it.
func Text(ptr *string, fallback string) string {
	if ptr == nil {
		return fallback
	}
	return strings.TrimSpace(*ptr)
}
