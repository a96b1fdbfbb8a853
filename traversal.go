package optics

import (
	"cmp"
	"iter"
	"slices"

	"github.com/authcorp/libs/go/optics/functional"
)

// Traversal reads and rewrites zero or more foci. Modify visits the foci
// in exactly the order Seq and GetAll report them, and leaves every other
// part of the whole untouched.
//
// The read side is the embedded Fold and the write side the embedded
// Setter, so all of their methods are available on a Traversal.
type Traversal[S, A any] struct {
	Fold[S, A]
	Setter[S, A]
}

// NewTraversal creates a traversal from an enumeration of the foci and a
// modify function visiting them in the same order.
func NewTraversal[S, A any](each func(S) iter.Seq[A], modify func(S, func(A) A) S) Traversal[S, A] {
	return Traversal[S, A]{
		Fold:   Fold[S, A]{each: each},
		Setter: Setter[S, A]{modify: modify},
	}
}

// Kind reports KindTraversal.
func (t Traversal[S, A]) Kind() Kind { return KindTraversal }

func (Traversal[S, A]) optic(S, A) {}

// AsTraversal returns t unchanged.
func (t Traversal[S, A]) AsTraversal() Traversal[S, A] { return t }

// ComposeTraversal visits the inner foci of every outer focus, outer order first.
func ComposeTraversal[S, A, B any](outer Traversal[S, A], inner Traversal[A, B]) Traversal[S, B] {
	return Traversal[S, B]{
		Fold:   ComposeFold(outer.Fold, inner.Fold),
		Setter: ComposeSetter(outer.Setter, inner.Setter),
	}
}

// IdentityTraversal has the whole as its only focus.
func IdentityTraversal[S any]() Traversal[S, S] {
	return Traversal[S, S]{
		Fold:   IdentityFold[S](),
		Setter: IdentitySetter[S](),
	}
}

// SliceTraversal focuses every element of a slice. Modify returns a fresh
// slice of the same length.
func SliceTraversal[A any]() Traversal[[]A, A] {
	return Traversal[[]A, A]{
		Fold:   SliceFold[A](),
		Setter: SliceSetter[A](),
	}
}

// MapValues focuses every value of a map in ascending key order. Modify
// returns a fresh map with the same keys. Entries are read by ranging over
// the map, never by key lookup, so float NaN keys keep their values; they
// sort first, in no particular order among themselves.
func MapValues[K cmp.Ordered, V any]() Traversal[map[K]V, V] {
	return NewTraversal(
		func(m map[K]V) iter.Seq[V] {
			return func(yield func(V) bool) {
				for _, e := range sortedEntries(m) {
					if !yield(e.Second) {
						return
					}
				}
			}
		},
		func(m map[K]V, fn func(V) V) map[K]V {
			if m == nil {
				return nil
			}
			out := make(map[K]V, len(m))
			for _, e := range sortedEntries(m) {
				out[e.First] = fn(e.Second)
			}
			return out
		},
	)
}

func sortedEntries[K cmp.Ordered, V any](m map[K]V) []functional.Pair[K, V] {
	entries := make([]functional.Pair[K, V], 0, len(m))
	for k, v := range m {
		entries = append(entries, functional.NewPair(k, v))
	}
	slices.SortFunc(entries, func(a, b functional.Pair[K, V]) int { return cmp.Compare(a.First, b.First) })
	return entries
}

// PairBoth focuses both halves of a homogeneous pair, first then second.
func PairBoth[A any]() Traversal[functional.Pair[A, A], A] {
	return NewTraversal(
		func(p functional.Pair[A, A]) iter.Seq[A] {
			return func(yield func(A) bool) {
				if yield(p.First) {
					yield(p.Second)
				}
			}
		},
		func(p functional.Pair[A, A], fn func(A) A) functional.Pair[A, A] {
			return functional.MapPairBoth(p, fn, fn)
		},
	)
}

// FromLenses focuses the foci of several lenses over the same whole, in
// argument order. The lenses must focus disjoint parts of S for the
// traversal laws to hold.
func FromLenses[S, A any](lenses ...Lens[S, A]) Traversal[S, A] {
	return NewTraversal(
		func(s S) iter.Seq[A] {
			return func(yield func(A) bool) {
				for _, l := range lenses {
					if !yield(l.get(s)) {
						return
					}
				}
			}
		},
		func(s S, fn func(A) A) S {
			for _, l := range lenses {
				s = l.set(s, fn(l.get(s)))
			}
			return s
		},
	)
}

// FilterTraversal narrows t to the foci satisfying predicate. It is only
// lawful when the functions passed to Modify preserve predicate.
func FilterTraversal[S, A any](t Traversal[S, A], predicate func(A) bool) Traversal[S, A] {
	return NewTraversal(
		func(s S) iter.Seq[A] {
			return func(yield func(A) bool) {
				for a := range t.each(s) {
					if predicate(a) && !yield(a) {
						return
					}
				}
			}
		},
		func(s S, fn func(A) A) S {
			return t.modify(s, func(a A) A {
				if predicate(a) {
					return fn(a)
				}
				return a
			})
		},
	)
}
