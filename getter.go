package optics

import (
	"iter"

	"github.com/authcorp/libs/go/optics/functional"
)

// Getter reads exactly one focus. It cannot write.
type Getter[S, A any] struct {
	get func(S) A
}

// NewGetter creates a getter from a projection.
func NewGetter[S, A any](get func(S) A) Getter[S, A] {
	return Getter[S, A]{get: get}
}

// Kind reports KindGetter.
func (g Getter[S, A]) Kind() Kind { return KindGetter }

func (Getter[S, A]) optic(S, A) {}

// Get reads the focus.
func (g Getter[S, A]) Get(source S) A {
	return g.get(source)
}

// Find returns the focus when it satisfies predicate.
func (g Getter[S, A]) Find(source S, predicate func(A) bool) functional.Option[A] {
	return functional.Some(g.get(source)).Filter(predicate)
}

// Exists reports whether the focus satisfies predicate.
func (g Getter[S, A]) Exists(source S, predicate func(A) bool) bool {
	return predicate(g.get(source))
}

// AsGetter returns g unchanged.
func (g Getter[S, A]) AsGetter() Getter[S, A] { return g }

// AsFold widens to a fold with exactly one focus.
func (g Getter[S, A]) AsFold() Fold[S, A] {
	return Fold[S, A]{each: func(s S) iter.Seq[A] { return singleSeq(g.get(s)) }}
}

// ComposeGetter reads inner through outer.
func ComposeGetter[S, A, B any](outer Getter[S, A], inner Getter[A, B]) Getter[S, B] {
	return Getter[S, B]{get: functional.ComposeFunc(outer.get, inner.get)}
}

// IdentityGetter reads the whole.
func IdentityGetter[S any]() Getter[S, S] {
	return Getter[S, S]{get: functional.IdentityFunc[S]}
}

// ZipGetter reads two foci of the same whole as a pair.
func ZipGetter[S, A, B any](first Getter[S, A], second Getter[S, B]) Getter[S, functional.Pair[A, B]] {
	return Getter[S, functional.Pair[A, B]]{
		get: func(s S) functional.Pair[A, B] {
			return functional.NewPair(first.get(s), second.get(s))
		},
	}
}

// SplitGetter reads two independent wholes side by side.
func SplitGetter[S, A, S2, A2 any](first Getter[S, A], second Getter[S2, A2]) Getter[functional.Pair[S, S2], functional.Pair[A, A2]] {
	return Getter[functional.Pair[S, S2], functional.Pair[A, A2]]{
		get: func(p functional.Pair[S, S2]) functional.Pair[A, A2] {
			return functional.MapPairBoth(p, first.get, second.get)
		},
	}
}

// FirstGetter reads through the first half of a pair and carries the second.
func FirstGetter[S, A, C any](g Getter[S, A]) Getter[functional.Pair[S, C], functional.Pair[A, C]] {
	return Getter[functional.Pair[S, C], functional.Pair[A, C]]{
		get: func(p functional.Pair[S, C]) functional.Pair[A, C] {
			return functional.MapPairFirst(p, g.get)
		},
	}
}

// SecondGetter reads through the second half of a pair and carries the first.
func SecondGetter[S, A, C any](g Getter[S, A]) Getter[functional.Pair[C, S], functional.Pair[C, A]] {
	return Getter[functional.Pair[C, S], functional.Pair[C, A]]{
		get: func(p functional.Pair[C, S]) functional.Pair[C, A] {
			return functional.MapPairSecond(p, g.get)
		},
	}
}

// ChoiceGetter reads through left or right depending on the side of the whole.
func ChoiceGetter[S, C, A any](left Getter[S, A], right Getter[C, A]) Getter[functional.Either[S, C], A] {
	return Getter[functional.Either[S, C], A]{
		get: func(e functional.Either[S, C]) A {
			return functional.MatchEither(e, left.get, right.get)
		},
	}
}
