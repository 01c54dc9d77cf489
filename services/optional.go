package services

// Optional distinguishes a field omitted from a partial update from one
// explicitly set. The zero value means "not supplied, leave unchanged"; for
// nullable columns an Optional holding a nil pointer means "clear the value".
type Optional[T any] struct {
	Value T
	Valid bool
}

// Set wraps a value as an explicitly supplied Optional
func Set[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}
