package functional

import "cmp"

// Monoid is an associative Combine with an identity element Empty.
type Monoid[T any] interface {
	Empty() T
	Combine(a, b T) T
}

// Number is the set of types SumMonoid and ProductMonoid accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

type monoid[T any] struct {
	empty   func() T
	combine func(a, b T) T
}

func (m monoid[T]) Empty() T         { return m.empty() }
func (m monoid[T]) Combine(a, b T) T { return m.combine(a, b) }

// MonoidOf builds a Monoid from an identity element and a combine function.
// The caller is responsible for associativity.
func MonoidOf[T any](empty T, combine func(a, b T) T) Monoid[T] {
	return monoid[T]{empty: func() T { return empty }, combine: combine}
}

// CombineAll folds xs left to right starting from m.Empty().
func CombineAll[T any](m Monoid[T], xs ...T) T {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Combine(acc, x)
	}
	return acc
}

// SliceMonoid concatenates slices. Combine never aliases its inputs.
func SliceMonoid[T any]() Monoid[[]T] {
	return monoid[[]T]{
		empty: func() []T { return []T{} },
		combine: func(a, b []T) []T {
			out := make([]T, 0, len(a)+len(b))
			out = append(out, a...)
			return append(out, b...)
		},
	}
}

// SumMonoid adds numbers.
func SumMonoid[N Number]() Monoid[N] {
	return MonoidOf[N](0, func(a, b N) N { return a + b })
}

// ProductMonoid multiplies numbers.
func ProductMonoid[N Number]() Monoid[N] {
	return MonoidOf[N](1, func(a, b N) N { return a * b })
}

// AnyMonoid is boolean or.
func AnyMonoid() Monoid[bool] {
	return MonoidOf(false, func(a, b bool) bool { return a || b })
}

// AllMonoid is boolean and.
func AllMonoid() Monoid[bool] {
	return MonoidOf(true, func(a, b bool) bool { return a && b })
}

// StringMonoid concatenates strings.
func StringMonoid() Monoid[string] {
	return MonoidOf("", func(a, b string) string { return a + b })
}

// FirstMonoid keeps the leftmost present value.
func FirstMonoid[T any]() Monoid[Option[T]] {
	return MonoidOf(None[T](), func(a, b Option[T]) Option[T] {
		return a.OrElse(b)
	})
}

// LastMonoid keeps the rightmost present value.
func LastMonoid[T any]() Monoid[Option[T]] {
	return MonoidOf(None[T](), func(a, b Option[T]) Option[T] {
		return b.OrElse(a)
	})
}

// MaxMonoid keeps the largest present value.
func MaxMonoid[T cmp.Ordered]() Monoid[Option[T]] {
	return MonoidOf(None[T](), func(a, b Option[T]) Option[T] {
		av, aok := a.Get()
		bv, bok := b.Get()
		switch {
		case !aok:
			return b
		case !bok:
			return a
		}
		return Some(max(av, bv))
	})
}

// EndoMonoid composes endofunctions; Combine(f, g) applies f first.
func EndoMonoid[T any]() Monoid[func(T) T] {
	return monoid[func(T) T]{
		empty:   func() func(T) T { return IdentityFunc[T] },
		combine: func(f, g func(T) T) func(T) T { return ComposeFunc(f, g) },
	}
}
