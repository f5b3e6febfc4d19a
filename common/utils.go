package common

// Coalesce returns the first value that is not the zero value of T.
// Config overlays use it to fall back from a file value to a default.
//
// Parameters:
//   - values: candidates in priority order
//
// Returns:
//   - T: the first non-zero candidate, or the zero value
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// CoalesceSlice returns the first non-empty slice. Lists are never merged.
//
// Parameters:
//   - values: candidate slices in priority order
//
// Returns:
//   - []T: the first slice with at least one element, or nil
func CoalesceSlice[T any](values ...[]T) []T {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}
