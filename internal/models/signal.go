package models

// Signal carries the outcome of one collector call. A collector that could
// not produce a value (timeout, network error, non-2xx, missing credential)
// hands back an absent signal instead of an error, so a degraded provider
// never fails the evaluation it feeds.
type Signal[T any] struct {
	Value T
	Valid bool
}

func SignalOf[T any](value T) Signal[T] {
	return Signal[T]{Value: value, Valid: true}
}

func AbsentSignal[T any]() Signal[T] {
	return Signal[T]{}
}

// Get returns the carried value and whether it is present.
func (s Signal[T]) Get() (T, bool) {
	return s.Value, s.Valid
}
