package functional

// Option is what a partial optic reads: Some(focus) when the focus exists,
// None when it does not. The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps a present focus.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None is the absent focus.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool { return o.present }

func (o Option[T]) IsNone() bool { return !o.present }

// Get returns the focus and whether there was one, in comma-ok form.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the focus. It panics on None, so reserve it for foci
// already known to exist.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("functional: Unwrap of None")
	}
	return o.value
}

// OrElse keeps the first present option; FirstMonoid is built on it.
func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if o.present {
		return o
	}
	return alt
}

// Filter turns a focus that fails predicate into None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if !o.present || !predicate(o.value) {
		return None[T]()
	}
	return o
}

// MapOption transforms a present focus and leaves None alone.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(fn(o.value))
}

// FlatMapOption chains a second partial read after the first.
func FlatMapOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.present {
		return None[U]()
	}
	return fn(o.value)
}
