// Package patch supports pointer-field partial updates, where a nil field
// means "keep the stored value".
package patch

// Coalesce returns *ptr when ptr is set, fallback otherwise.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
