package optics

import (
	"iter"

	"github.com/authcorp/libs/go/optics/functional"
)

// Lens provides access to exactly one part of an immutable structure.
//
// A lawful lens satisfies Get(Set(s, a)) == a, Set(s, Get(s)) == s and
// Set(Set(s, a), b) == Set(s, b).
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// NewLens creates a lens from get and set functions.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Kind reports KindLens.
func (l Lens[S, A]) Kind() Kind { return KindLens }

func (Lens[S, A]) optic(S, A) {}

// Get retrieves the focused value.
func (l Lens[S, A]) Get(source S) A {
	return l.get(source)
}

// Set returns a new structure with the focused value replaced.
func (l Lens[S, A]) Set(source S, value A) S {
	return l.set(source, value)
}

// Modify applies a function to the focused value.
func (l Lens[S, A]) Modify(source S, fn func(A) A) S {
	return l.set(source, fn(l.get(source)))
}

// Lift turns fn into a whole-to-whole function.
func (l Lens[S, A]) Lift(fn func(A) A) func(S) S {
	return func(s S) S { return l.Modify(s, fn) }
}

// AsLens returns l unchanged.
func (l Lens[S, A]) AsLens() Lens[S, A] { return l }

// AsGetter forgets the write side.
func (l Lens[S, A]) AsGetter() Getter[S, A] {
	return Getter[S, A]{get: l.get}
}

// AsSetter forgets the read side.
func (l Lens[S, A]) AsSetter() Setter[S, A] {
	return Setter[S, A]{modify: l.Modify}
}

// AsFold widens to a fold with exactly one focus.
func (l Lens[S, A]) AsFold() Fold[S, A] {
	return Fold[S, A]{each: func(s S) iter.Seq[A] { return singleSeq(l.get(s)) }}
}

// AsTraversal widens to a traversal with exactly one focus.
func (l Lens[S, A]) AsTraversal() Traversal[S, A] {
	return Traversal[S, A]{Fold: l.AsFold(), Setter: l.AsSetter()}
}

// AsOptional widens to an optional that is always present.
func (l Lens[S, A]) AsOptional() Optional[S, A] {
	return Optional[S, A]{
		getOrModify: func(s S) functional.Either[S, A] {
			return functional.Right[S](l.get(s))
		},
		set: l.set,
	}
}

// ComposeLens creates a lens focusing deeper.
func ComposeLens[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(s S, b B) S {
			return outer.set(s, inner.set(outer.get(s), b))
		},
	}
}

// IdentityLens creates an identity lens.
func IdentityLens[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: functional.IdentityFunc[S],
		set: func(_ S, s S) S { return s },
	}
}

// FirstLens lifts l over the first half of a pair, carrying the second.
func FirstLens[S, A, C any](l Lens[S, A]) Lens[functional.Pair[S, C], functional.Pair[A, C]] {
	return Lens[functional.Pair[S, C], functional.Pair[A, C]]{
		get: func(p functional.Pair[S, C]) functional.Pair[A, C] {
			return functional.MapPairFirst(p, l.get)
		},
		set: func(p functional.Pair[S, C], ac functional.Pair[A, C]) functional.Pair[S, C] {
			return functional.NewPair(l.set(p.First, ac.First), ac.Second)
		},
	}
}

// SecondLens lifts l over the second half of a pair, carrying the first.
func SecondLens[S, A, C any](l Lens[S, A]) Lens[functional.Pair[C, S], functional.Pair[C, A]] {
	return Lens[functional.Pair[C, S], functional.Pair[C, A]]{
		get: func(p functional.Pair[C, S]) functional.Pair[C, A] {
			return functional.MapPairSecond(p, l.get)
		},
		set: func(p functional.Pair[C, S], ca functional.Pair[C, A]) functional.Pair[C, S] {
			return functional.NewPair(ca.First, l.set(p.Second, ca.Second))
		},
	}
}

// SplitLens pairs two lenses over independent wholes.
func SplitLens[S, A, S2, A2 any](first Lens[S, A], second Lens[S2, A2]) Lens[functional.Pair[S, S2], functional.Pair[A, A2]] {
	return Lens[functional.Pair[S, S2], functional.Pair[A, A2]]{
		get: func(p functional.Pair[S, S2]) functional.Pair[A, A2] {
			return functional.MapPairBoth(p, first.get, second.get)
		},
		set: func(p functional.Pair[S, S2], a functional.Pair[A, A2]) functional.Pair[S, S2] {
			return functional.NewPair(first.set(p.First, a.First), second.set(p.Second, a.Second))
		},
	}
}

// ChoiceLens focuses through left or right depending on the side of the whole.
func ChoiceLens[S, C, A any](left Lens[S, A], right Lens[C, A]) Lens[functional.Either[S, C], A] {
	return Lens[functional.Either[S, C], A]{
		get: func(e functional.Either[S, C]) A {
			return functional.MatchEither(e, left.get, right.get)
		},
		set: func(e functional.Either[S, C], a A) functional.Either[S, C] {
			return functional.BimapEither(e,
				func(s S) S { return left.set(s, a) },
				func(c C) C { return right.set(c, a) },
			)
		},
	}
}

// PairFirst creates a lens for the first element of a pair.
func PairFirst[A, B any]() Lens[functional.Pair[A, B], A] {
	return Lens[functional.Pair[A, B], A]{
		get: func(p functional.Pair[A, B]) A { return p.First },
		set: func(p functional.Pair[A, B], a A) functional.Pair[A, B] { return functional.NewPair(a, p.Second) },
	}
}

// PairSecond creates a lens for the second element of a pair.
func PairSecond[A, B any]() Lens[functional.Pair[A, B], B] {
	return Lens[functional.Pair[A, B], B]{
		get: func(p functional.Pair[A, B]) B { return p.Second },
		set: func(p functional.Pair[A, B], b B) functional.Pair[A, B] { return functional.NewPair(p.First, b) },
	}
}

// At creates a lens for map access. Setting None deletes the key.
func At[K comparable, V any](key K) Lens[map[K]V, functional.Option[V]] {
	return Lens[map[K]V, functional.Option[V]]{
		get: func(m map[K]V) functional.Option[V] {
			if v, ok := m[key]; ok {
				return functional.Some(v)
			}
			return functional.None[V]()
		},
		set: func(m map[K]V, opt functional.Option[V]) map[K]V {
			v, ok := opt.Get()
			if _, exists := m[key]; !ok && !exists {
				return m
			}
			result := copyMap(m)
			if ok {
				result[key] = v
			} else {
				delete(result, key)
			}
			return result
		},
	}
}

// MapAt creates a lens for a map value at a specific key with default.
// Only lawful on maps where key is present.
func MapAt[K comparable, V any](key K, defaultVal V) Lens[map[K]V, V] {
	return Lens[map[K]V, V]{
		get: func(m map[K]V) V {
			if v, ok := m[key]; ok {
				return v
			}
			return defaultVal
		},
		set: func(m map[K]V, v V) map[K]V {
			result := copyMap(m)
			result[key] = v
			return result
		},
	}
}

// SliceAt creates a lens for a slice element at a specific index with default.
// Out of range writes are dropped, so it is only lawful within bounds;
// prefer Index for partial access.
func SliceAt[T any](index int, defaultVal T) Lens[[]T, T] {
	return Lens[[]T, T]{
		get: func(s []T) T {
			if index >= 0 && index < len(s) {
				return s[index]
			}
			return defaultVal
		},
		set: func(s []T, v T) []T {
			return replaceAt(s, index, v)
		},
	}
}
