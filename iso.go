package optics

import (
	"iter"

	"github.com/authcorp/libs/go/optics/functional"
)

// Iso represents an isomorphism between two types. It widens losslessly
// to every other optic.
//
// A lawful iso satisfies ReverseGet(Get(s)) == s and Get(ReverseGet(a)) == a.
type Iso[S, A any] struct {
	get        func(S) A
	reverseGet func(A) S
}

// NewIso creates a new isomorphism.
func NewIso[S, A any](get func(S) A, reverseGet func(A) S) Iso[S, A] {
	return Iso[S, A]{get: get, reverseGet: reverseGet}
}

// Kind reports KindIso.
func (i Iso[S, A]) Kind() Kind { return KindIso }

func (Iso[S, A]) optic(S, A) {}

// Get maps the whole to the focus.
func (i Iso[S, A]) Get(source S) A {
	return i.get(source)
}

// ReverseGet maps the focus back to the whole.
func (i Iso[S, A]) ReverseGet(value A) S {
	return i.reverseGet(value)
}

// Reverse swaps the direction of i.
func (i Iso[S, A]) Reverse() Iso[A, S] {
	return Iso[A, S]{get: i.reverseGet, reverseGet: i.get}
}

// Modify maps the focus through fn.
func (i Iso[S, A]) Modify(source S, fn func(A) A) S {
	return i.reverseGet(fn(i.get(source)))
}

// Set replaces the whole with the image of value.
func (i Iso[S, A]) Set(_ S, value A) S {
	return i.reverseGet(value)
}

// Lift turns fn into a whole-to-whole function.
func (i Iso[S, A]) Lift(fn func(A) A) func(S) S {
	return func(s S) S { return i.Modify(s, fn) }
}

// AsIso returns i unchanged.
func (i Iso[S, A]) AsIso() Iso[S, A] { return i }

// AsLens converts an Iso to a Lens.
func (i Iso[S, A]) AsLens() Lens[S, A] {
	return Lens[S, A]{get: i.get, set: i.Set}
}

// AsPrism converts an Iso to a Prism that always matches.
func (i Iso[S, A]) AsPrism() Prism[S, A] {
	return Prism[S, A]{
		getOrModify: func(s S) functional.Either[S, A] { return functional.Right[S](i.get(s)) },
		reverseGet:  i.reverseGet,
	}
}

// AsGetter forgets the reverse direction.
func (i Iso[S, A]) AsGetter() Getter[S, A] {
	return Getter[S, A]{get: i.get}
}

// AsOptional widens to an optional that is always present.
func (i Iso[S, A]) AsOptional() Optional[S, A] {
	return i.AsLens().AsOptional()
}

// AsSetter widens to a setter.
func (i Iso[S, A]) AsSetter() Setter[S, A] {
	return Setter[S, A]{modify: i.Modify}
}

// AsFold widens to a fold with exactly one focus.
func (i Iso[S, A]) AsFold() Fold[S, A] {
	return Fold[S, A]{each: func(s S) iter.Seq[A] { return singleSeq(i.get(s)) }}
}

// AsTraversal widens to a traversal with exactly one focus.
func (i Iso[S, A]) AsTraversal() Traversal[S, A] {
	return Traversal[S, A]{Fold: i.AsFold(), Setter: i.AsSetter()}
}

// ComposeIso composes two isomorphisms.
func ComposeIso[S, A, B any](outer Iso[S, A], inner Iso[A, B]) Iso[S, B] {
	return Iso[S, B]{
		get:        functional.ComposeFunc(outer.get, inner.get),
		reverseGet: functional.ComposeFunc(inner.reverseGet, outer.reverseGet),
	}
}

// IdentityIso maps every value to itself.
func IdentityIso[S any]() Iso[S, S] {
	return Iso[S, S]{get: functional.IdentityFunc[S], reverseGet: functional.IdentityFunc[S]}
}

// SplitIso pairs two isomorphisms over independent wholes.
func SplitIso[S, A, S2, A2 any](first Iso[S, A], second Iso[S2, A2]) Iso[functional.Pair[S, S2], functional.Pair[A, A2]] {
	return Iso[functional.Pair[S, S2], functional.Pair[A, A2]]{
		get: func(p functional.Pair[S, S2]) functional.Pair[A, A2] {
			return functional.MapPairBoth(p, first.get, second.get)
		},
		reverseGet: func(p functional.Pair[A, A2]) functional.Pair[S, S2] {
			return functional.MapPairBoth(p, first.reverseGet, second.reverseGet)
		},
	}
}

// FirstIso lifts i over the first half of a pair, carrying the second.
func FirstIso[S, A, C any](i Iso[S, A]) Iso[functional.Pair[S, C], functional.Pair[A, C]] {
	return SplitIso(i, IdentityIso[C]())
}

// SecondIso lifts i over the second half of a pair, carrying the first.
func SecondIso[S, A, C any](i Iso[S, A]) Iso[functional.Pair[C, S], functional.Pair[C, A]] {
	return SplitIso(IdentityIso[C](), i)
}

// LeftIso lifts i into the Left side of an Either.
func LeftIso[S, A, C any](i Iso[S, A]) Iso[functional.Either[S, C], functional.Either[A, C]] {
	return Iso[functional.Either[S, C], functional.Either[A, C]]{
		get: func(e functional.Either[S, C]) functional.Either[A, C] {
			return functional.MapEitherLeft(e, i.get)
		},
		reverseGet: func(e functional.Either[A, C]) functional.Either[S, C] {
			return functional.MapEitherLeft(e, i.reverseGet)
		},
	}
}

// RightIso lifts i into the Right side of an Either.
func RightIso[S, A, C any](i Iso[S, A]) Iso[functional.Either[C, S], functional.Either[C, A]] {
	return Iso[functional.Either[C, S], functional.Either[C, A]]{
		get: func(e functional.Either[C, S]) functional.Either[C, A] {
			return functional.MapEitherRight(e, i.get)
		},
		reverseGet: func(e functional.Either[C, A]) functional.Either[C, S] {
			return functional.MapEitherRight(e, i.reverseGet)
		},
	}
}

// SwapIso exchanges the halves of a pair.
func SwapIso[A, B any]() Iso[functional.Pair[A, B], functional.Pair[B, A]] {
	return Iso[functional.Pair[A, B], functional.Pair[B, A]]{
		get:        functional.Pair[A, B].Swap,
		reverseGet: functional.Pair[B, A].Swap,
	}
}

// EitherSwapIso exchanges the sides of an Either.
func EitherSwapIso[L, R any]() Iso[functional.Either[L, R], functional.Either[R, L]] {
	return Iso[functional.Either[L, R], functional.Either[R, L]]{
		get:        functional.Either[L, R].Swap,
		reverseGet: functional.Either[R, L].Swap,
	}
}
