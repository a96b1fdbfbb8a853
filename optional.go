package optics

import (
	"iter"

	"github.com/authcorp/libs/go/optics/functional"
)

// Optional focuses at most one part of a whole.
//
// GetOrModify returns Right(a) when the focus is present and Left(s), the
// untouched whole, when it is absent. Set is total: whether it fills an
// absent slot or leaves the whole unchanged is decided by each instance and
// documented on its constructor.
type Optional[S, A any] struct {
	getOrModify func(S) functional.Either[S, A]
	set         func(S, A) S
}

// NewOptional creates an optional from getOrModify and set functions.
func NewOptional[S, A any](getOrModify func(S) functional.Either[S, A], set func(S, A) S) Optional[S, A] {
	return Optional[S, A]{getOrModify: getOrModify, set: set}
}

// OptionalFromOption creates an optional from a getOption function.
func OptionalFromOption[S, A any](getOption func(S) functional.Option[A], set func(S, A) S) Optional[S, A] {
	return Optional[S, A]{
		getOrModify: func(s S) functional.Either[S, A] {
			if a, ok := getOption(s).Get(); ok {
				return functional.Right[S](a)
			}
			return functional.Left[S, A](s)
		},
		set: set,
	}
}

// Kind reports KindOptional.
func (o Optional[S, A]) Kind() Kind { return KindOptional }

func (Optional[S, A]) optic(S, A) {}

// GetOrModify returns the focus, or the unchanged whole when it is absent.
func (o Optional[S, A]) GetOrModify(source S) functional.Either[S, A] {
	return o.getOrModify(source)
}

// GetOption returns the focus if present.
func (o Optional[S, A]) GetOption(source S) functional.Option[A] {
	return o.getOrModify(source).ToOption()
}

// Set writes value. See the instance's documentation for the absent case.
func (o Optional[S, A]) Set(source S, value A) S {
	return o.set(source, value)
}

// SetOption writes value only when the focus is present.
func (o Optional[S, A]) SetOption(source S, value A) functional.Option[S] {
	return o.ModifyOption(source, functional.Const[A](value))
}

// Modify applies fn to the focus, or returns source unchanged when absent.
func (o Optional[S, A]) Modify(source S, fn func(A) A) S {
	if a, ok := o.getOrModify(source).GetRight(); ok {
		return o.set(source, fn(a))
	}
	return source
}

// ModifyOption applies fn to the focus and reports absence as None.
func (o Optional[S, A]) ModifyOption(source S, fn func(A) A) functional.Option[S] {
	if a, ok := o.getOrModify(source).GetRight(); ok {
		return functional.Some(o.set(source, fn(a)))
	}
	return functional.None[S]()
}

// Lift turns fn into a whole-to-whole function.
func (o Optional[S, A]) Lift(fn func(A) A) func(S) S {
	return func(s S) S { return o.Modify(s, fn) }
}

// Exists reports whether the focus is present and satisfies predicate.
func (o Optional[S, A]) Exists(source S, predicate func(A) bool) bool {
	return o.GetOption(source).Filter(predicate).IsSome()
}

// AsOptional returns o unchanged.
func (o Optional[S, A]) AsOptional() Optional[S, A] { return o }

// AsFold widens to a fold with zero or one focus.
func (o Optional[S, A]) AsFold() Fold[S, A] {
	return Fold[S, A]{
		each: func(s S) iter.Seq[A] {
			if a, ok := o.getOrModify(s).GetRight(); ok {
				return singleSeq(a)
			}
			return emptySeq[A]()
		},
	}
}

// AsSetter widens to a setter.
func (o Optional[S, A]) AsSetter() Setter[S, A] {
	return Setter[S, A]{modify: o.Modify}
}

// AsTraversal widens to a traversal with zero or one focus.
func (o Optional[S, A]) AsTraversal() Traversal[S, A] {
	return Traversal[S, A]{Fold: o.AsFold(), Setter: o.AsSetter()}
}

// ComposeOptional focuses inner inside outer. The result is absent when
// either step is absent; Set on an absent outer focus leaves the whole
// unchanged.
func ComposeOptional[S, A, B any](outer Optional[S, A], inner Optional[A, B]) Optional[S, B] {
	return Optional[S, B]{
		getOrModify: func(s S) functional.Either[S, B] {
			a, ok := outer.getOrModify(s).GetRight()
			if !ok {
				return functional.Left[S, B](s)
			}
			if b, ok := inner.getOrModify(a).GetRight(); ok {
				return functional.Right[S](b)
			}
			return functional.Left[S, B](s)
		},
		set: func(s S, b B) S {
			return outer.Modify(s, func(a A) A { return inner.set(a, b) })
		},
	}
}

// IdentityOptional always focuses the whole.
func IdentityOptional[S any]() Optional[S, S] {
	return Optional[S, S]{
		getOrModify: functional.Right[S, S],
		set:         func(_ S, s S) S { return s },
	}
}

// VoidOptional never has a focus; Set is a no-op.
func VoidOptional[S, A any]() Optional[S, A] {
	return Optional[S, A]{
		getOrModify: functional.Left[S, A],
		set:         func(s S, _ A) S { return s },
	}
}

// ListHead focuses the first element of a slice. Set on an empty slice is
// a no-op: there is no slot to fill and no insertion policy is assumed.
func ListHead[A any]() Optional[[]A, A] {
	return Index[A](0)
}

// ListLast focuses the last element of a slice. Set on an empty slice is a no-op.
func ListLast[A any]() Optional[[]A, A] {
	return Optional[[]A, A]{
		getOrModify: func(xs []A) functional.Either[[]A, A] {
			if len(xs) == 0 {
				return functional.Left[[]A, A](xs)
			}
			return functional.Right[[]A](xs[len(xs)-1])
		},
		set: func(xs []A, a A) []A {
			return replaceAt(xs, len(xs)-1, a)
		},
	}
}

// Index focuses the element at position i. Set out of range is a no-op.
func Index[A any](i int) Optional[[]A, A] {
	return Optional[[]A, A]{
		getOrModify: func(xs []A) functional.Either[[]A, A] {
			if i < 0 || i >= len(xs) {
				return functional.Left[[]A, A](xs)
			}
			return functional.Right[[]A](xs[i])
		},
		set: func(xs []A, a A) []A {
			return replaceAt(xs, i, a)
		},
	}
}

// MapIndex focuses the value stored under key. Set on a missing key is a
// no-op; use At to insert or delete keys.
func MapIndex[K comparable, V any](key K) Optional[map[K]V, V] {
	return Optional[map[K]V, V]{
		getOrModify: func(m map[K]V) functional.Either[map[K]V, V] {
			if v, ok := m[key]; ok {
				return functional.Right[map[K]V](v)
			}
			return functional.Left[map[K]V, V](m)
		},
		set: func(m map[K]V, v V) map[K]V {
			if _, ok := m[key]; !ok {
				return m
			}
			out := copyMap(m)
			out[key] = v
			return out
		},
	}
}

// FirstOptional lifts o over the first half of a pair, carrying the second.
func FirstOptional[S, A, C any](o Optional[S, A]) Optional[functional.Pair[S, C], functional.Pair[A, C]] {
	return Optional[functional.Pair[S, C], functional.Pair[A, C]]{
		getOrModify: func(p functional.Pair[S, C]) functional.Either[functional.Pair[S, C], functional.Pair[A, C]] {
			if a, ok := o.getOrModify(p.First).GetRight(); ok {
				return functional.Right[functional.Pair[S, C]](functional.NewPair(a, p.Second))
			}
			return functional.Left[functional.Pair[S, C], functional.Pair[A, C]](p)
		},
		set: func(p functional.Pair[S, C], ac functional.Pair[A, C]) functional.Pair[S, C] {
			return functional.NewPair(o.set(p.First, ac.First), ac.Second)
		},
	}
}

// SecondOptional lifts o over the second half of a pair, carrying the first.
func SecondOptional[S, A, C any](o Optional[S, A]) Optional[functional.Pair[C, S], functional.Pair[C, A]] {
	return Optional[functional.Pair[C, S], functional.Pair[C, A]]{
		getOrModify: func(p functional.Pair[C, S]) functional.Either[functional.Pair[C, S], functional.Pair[C, A]] {
			if a, ok := o.getOrModify(p.Second).GetRight(); ok {
				return functional.Right[functional.Pair[C, S]](functional.NewPair(p.First, a))
			}
			return functional.Left[functional.Pair[C, S], functional.Pair[C, A]](p)
		},
		set: func(p functional.Pair[C, S], ca functional.Pair[C, A]) functional.Pair[C, S] {
			return functional.NewPair(ca.First, o.set(p.Second, ca.Second))
		},
	}
}

func replaceAt[A any](xs []A, i int, a A) []A {
	if i < 0 || i >= len(xs) {
		return xs
	}
	out := make([]A, len(xs))
	copy(out, xs)
	out[i] = a
	return out
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
