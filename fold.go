// Package optics provides composable, immutable accessors over immutable
// data: Fold, Getter, Setter, Traversal, Optional, Lens, Prism and Iso.
//
// Every optic is a value holding only functions. Optics never mutate the
// whole they are given; Set and Modify return a new whole. Absence of a
// focus is reported through functional.Either and functional.Option,
// never through errors or panics.
//
// Go methods cannot introduce type parameters, so operations that change
// the focus type (composition, pairing, folding into a monoid) are package
// level functions such as ComposeLens and FoldMap.
package optics

import (
	"iter"

	"github.com/authcorp/libs/go/optics/functional"
)

// Fold reads zero or more foci of type A out of a whole S, in a fixed
// left-to-right order.
type Fold[S, A any] struct {
	each func(S) iter.Seq[A]
}

// NewFold creates a fold from an ordered enumeration of the foci.
func NewFold[S, A any](each func(S) iter.Seq[A]) Fold[S, A] {
	return Fold[S, A]{each: each}
}

// FoldFromSlice creates a fold from a function listing the foci.
func FoldFromSlice[S, A any](getAll func(S) []A) Fold[S, A] {
	return Fold[S, A]{each: func(s S) iter.Seq[A] { return sliceSeq(getAll(s)) }}
}

// Kind reports KindFold.
func (f Fold[S, A]) Kind() Kind { return KindFold }

func (Fold[S, A]) optic(S, A) {}

// AsFold returns f unchanged.
func (f Fold[S, A]) AsFold() Fold[S, A] { return f }

// Seq enumerates the foci of s.
func (f Fold[S, A]) Seq(source S) iter.Seq[A] {
	return f.each(source)
}

// GetAll collects every focus. The result is empty, never nil, when there are none.
func (f Fold[S, A]) GetAll(source S) []A {
	out := []A{}
	for a := range f.each(source) {
		out = append(out, a)
	}
	return out
}

// Size counts the foci.
func (f Fold[S, A]) Size(source S) int {
	n := 0
	for range f.each(source) {
		n++
	}
	return n
}

// IsEmpty reports whether there are no foci.
func (f Fold[S, A]) IsEmpty(source S) bool {
	for range f.each(source) {
		return false
	}
	return true
}

// NonEmpty reports whether there is at least one focus.
func (f Fold[S, A]) NonEmpty(source S) bool {
	return !f.IsEmpty(source)
}

// Find returns the first focus satisfying predicate. Enumeration stops at
// the first match.
func (f Fold[S, A]) Find(source S, predicate func(A) bool) functional.Option[A] {
	for a := range f.each(source) {
		if predicate(a) {
			return functional.Some(a)
		}
	}
	return functional.None[A]()
}

// First returns the first focus.
func (f Fold[S, A]) First(source S) functional.Option[A] {
	for a := range f.each(source) {
		return functional.Some(a)
	}
	return functional.None[A]()
}

// Last returns the last focus.
func (f Fold[S, A]) Last(source S) functional.Option[A] {
	return FoldMap(f, functional.LastMonoid[A](), source, functional.Some[A])
}

// Exists reports whether any focus satisfies predicate.
func (f Fold[S, A]) Exists(source S, predicate func(A) bool) bool {
	return f.Find(source, predicate).IsSome()
}

// ForAll reports whether every focus satisfies predicate. It is true
// when there are no foci.
func (f Fold[S, A]) ForAll(source S, predicate func(A) bool) bool {
	for a := range f.each(source) {
		if !predicate(a) {
			return false
		}
	}
	return true
}

// FoldMap maps every focus into m and combines the results left to right,
// starting from m.Empty().
func FoldMap[S, A, R any](f Fold[S, A], m functional.Monoid[R], source S, fn func(A) R) R {
	acc := m.Empty()
	for a := range f.each(source) {
		acc = m.Combine(acc, fn(a))
	}
	return acc
}

// CombineAll combines the foci themselves with m.
func CombineAll[S, A any](f Fold[S, A], m functional.Monoid[A], source S) A {
	return FoldMap(f, m, source, functional.IdentityFunc[A])
}

// FoldLeft threads an accumulator through the foci.
func FoldLeft[S, A, R any](f Fold[S, A], source S, initial R, fn func(R, A) R) R {
	acc := initial
	for a := range f.each(source) {
		acc = fn(acc, a)
	}
	return acc
}

// ComposeFold reads the inner foci of every outer focus, in order.
func ComposeFold[S, A, B any](outer Fold[S, A], inner Fold[A, B]) Fold[S, B] {
	return Fold[S, B]{
		each: func(s S) iter.Seq[B] {
			return func(yield func(B) bool) {
				for a := range outer.each(s) {
					for b := range inner.each(a) {
						if !yield(b) {
							return
						}
					}
				}
			}
		},
	}
}

// IdentityFold has the whole as its only focus.
func IdentityFold[S any]() Fold[S, S] {
	return Fold[S, S]{each: singleSeq[S]}
}

// Select has the whole as its only focus when predicate holds, and no
// focus otherwise.
func Select[S any](predicate func(S) bool) Fold[S, S] {
	return Fold[S, S]{
		each: func(s S) iter.Seq[S] {
			return func(yield func(S) bool) {
				if predicate(s) {
					yield(s)
				}
			}
		},
	}
}

// SliceFold has every element of a slice as a focus.
func SliceFold[A any]() Fold[[]A, A] {
	return Fold[[]A, A]{each: sliceSeq[A]}
}

// ChoiceFold reads through left or right depending on which side the whole is.
func ChoiceFold[S, C, A any](left Fold[S, A], right Fold[C, A]) Fold[functional.Either[S, C], A] {
	return Fold[functional.Either[S, C], A]{
		each: func(e functional.Either[S, C]) iter.Seq[A] {
			if s, ok := e.GetLeft(); ok {
				return left.each(s)
			}
			return right.each(e.RightValue())
		},
	}
}

func sliceSeq[A any](xs []A) iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}
	}
}

func singleSeq[A any](a A) iter.Seq[A] {
	return func(yield func(A) bool) {
		yield(a)
	}
}

func emptySeq[A any]() iter.Seq[A] {
	return func(func(A) bool) {}
}
