package optics

import (
	"iter"
	"strconv"

	"fortio.org/safecast"

	"github.com/authcorp/libs/go/optics/functional"
)

// Prism provides access to one case of a sum type and can build that case
// back from its payload.
//
// A lawful prism satisfies GetOrModify(ReverseGet(a)) == Right(a), and
// ReverseGet(a) == s whenever GetOrModify(s) == Right(a).
type Prism[S, A any] struct {
	getOrModify func(S) functional.Either[S, A]
	reverseGet  func(A) S
}

// NewPrism creates a prism from getOrModify and reverseGet functions.
func NewPrism[S, A any](getOrModify func(S) functional.Either[S, A], reverseGet func(A) S) Prism[S, A] {
	return Prism[S, A]{getOrModify: getOrModify, reverseGet: reverseGet}
}

// PrismFromOption creates a prism from getOption and reverseGet functions.
func PrismFromOption[S, A any](getOption func(S) functional.Option[A], reverseGet func(A) S) Prism[S, A] {
	return Prism[S, A]{
		getOrModify: OptionalFromOption(getOption, nil).getOrModify,
		reverseGet:  reverseGet,
	}
}

// Kind reports KindPrism.
func (p Prism[S, A]) Kind() Kind { return KindPrism }

func (Prism[S, A]) optic(S, A) {}

// GetOrModify returns the payload, or the unchanged whole on another case.
func (p Prism[S, A]) GetOrModify(source S) functional.Either[S, A] {
	return p.getOrModify(source)
}

// GetOption attempts to extract the focused value.
func (p Prism[S, A]) GetOption(source S) functional.Option[A] {
	return p.getOrModify(source).ToOption()
}

// ReverseGet constructs the source from the focused value.
func (p Prism[S, A]) ReverseGet(value A) S {
	return p.reverseGet(value)
}

// Modify applies a function to the focused value if present.
func (p Prism[S, A]) Modify(source S, fn func(A) A) S {
	if a, ok := p.getOrModify(source).GetRight(); ok {
		return p.reverseGet(fn(a))
	}
	return source
}

// ModifyOption applies fn and reports a case mismatch as None.
func (p Prism[S, A]) ModifyOption(source S, fn func(A) A) functional.Option[S] {
	if a, ok := p.getOrModify(source).GetRight(); ok {
		return functional.Some(p.reverseGet(fn(a)))
	}
	return functional.None[S]()
}

// Set sets the focused value if the prism matches.
func (p Prism[S, A]) Set(source S, value A) S {
	return p.Modify(source, functional.Const[A](value))
}

// SetOption sets the focused value and reports a case mismatch as None.
func (p Prism[S, A]) SetOption(source S, value A) functional.Option[S] {
	return p.ModifyOption(source, functional.Const[A](value))
}

// Lift turns fn into a whole-to-whole function.
func (p Prism[S, A]) Lift(fn func(A) A) func(S) S {
	return func(s S) S { return p.Modify(s, fn) }
}

// Exists reports whether the case matches and its payload satisfies predicate.
func (p Prism[S, A]) Exists(source S, predicate func(A) bool) bool {
	return p.GetOption(source).Filter(predicate).IsSome()
}

// AsPrism returns p unchanged.
func (p Prism[S, A]) AsPrism() Prism[S, A] { return p }

// AsOptional forgets the constructor. Set on another case is a no-op.
func (p Prism[S, A]) AsOptional() Optional[S, A] {
	return Optional[S, A]{getOrModify: p.getOrModify, set: p.Set}
}

// AsFold widens to a fold with zero or one focus.
func (p Prism[S, A]) AsFold() Fold[S, A] {
	return Fold[S, A]{
		each: func(s S) iter.Seq[A] {
			if a, ok := p.getOrModify(s).GetRight(); ok {
				return singleSeq(a)
			}
			return emptySeq[A]()
		},
	}
}

// AsSetter widens to a setter.
func (p Prism[S, A]) AsSetter() Setter[S, A] {
	return Setter[S, A]{modify: p.Modify}
}

// AsTraversal widens to a traversal with zero or one focus.
func (p Prism[S, A]) AsTraversal() Traversal[S, A] {
	return Traversal[S, A]{Fold: p.AsFold(), Setter: p.AsSetter()}
}

// ComposePrism creates a prism focusing deeper.
func ComposePrism[S, A, B any](outer Prism[S, A], inner Prism[A, B]) Prism[S, B] {
	return Prism[S, B]{
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
		reverseGet: func(b B) S {
			return outer.reverseGet(inner.reverseGet(b))
		},
	}
}

// IdentityPrism always matches the whole.
func IdentityPrism[S any]() Prism[S, S] {
	return Prism[S, S]{
		getOrModify: functional.Right[S, S],
		reverseGet:  functional.IdentityFunc[S],
	}
}

// Only matches exactly one value, as judged by eq, and carries no payload.
func Only[S any](value S, eq func(a, b S) bool) Prism[S, struct{}] {
	return Prism[S, struct{}]{
		getOrModify: func(s S) functional.Either[S, struct{}] {
			if eq(value, s) {
				return functional.Right[S](struct{}{})
			}
			return functional.Left[S, struct{}](s)
		},
		reverseGet: func(struct{}) S { return value },
	}
}

// OnlyComparable is Only with ==.
func OnlyComparable[S comparable](value S) Prism[S, struct{}] {
	return Only(value, func(a, b S) bool { return a == b })
}

// SomePrism creates a prism for Option[T] that focuses on the Some case.
func SomePrism[T any]() Prism[functional.Option[T], T] {
	return PrismFromOption(functional.IdentityFunc[functional.Option[T]], functional.Some[T])
}

// LeftPrism focuses the Left case of an Either.
func LeftPrism[L, R any]() Prism[functional.Either[L, R], L] {
	return Prism[functional.Either[L, R], L]{
		getOrModify: func(e functional.Either[L, R]) functional.Either[functional.Either[L, R], L] {
			if l, ok := e.GetLeft(); ok {
				return functional.Right[functional.Either[L, R]](l)
			}
			return functional.Left[functional.Either[L, R], L](e)
		},
		reverseGet: functional.Left[L, R],
	}
}

// RightPrism focuses the Right case of an Either.
func RightPrism[L, R any]() Prism[functional.Either[L, R], R] {
	return Prism[functional.Either[L, R], R]{
		getOrModify: func(e functional.Either[L, R]) functional.Either[functional.Either[L, R], R] {
			if r, ok := e.GetRight(); ok {
				return functional.Right[functional.Either[L, R]](r)
			}
			return functional.Left[functional.Either[L, R], R](e)
		},
		reverseGet: functional.Right[L, R],
	}
}

// FirstPrism lifts p over the first half of a pair, carrying the second.
func FirstPrism[S, A, C any](p Prism[S, A]) Prism[functional.Pair[S, C], functional.Pair[A, C]] {
	return Prism[functional.Pair[S, C], functional.Pair[A, C]]{
		getOrModify: func(sc functional.Pair[S, C]) functional.Either[functional.Pair[S, C], functional.Pair[A, C]] {
			if a, ok := p.getOrModify(sc.First).GetRight(); ok {
				return functional.Right[functional.Pair[S, C]](functional.NewPair(a, sc.Second))
			}
			return functional.Left[functional.Pair[S, C], functional.Pair[A, C]](sc)
		},
		reverseGet: func(ac functional.Pair[A, C]) functional.Pair[S, C] {
			return functional.MapPairFirst(ac, p.reverseGet)
		},
	}
}

// SecondPrism lifts p over the second half of a pair, carrying the first.
func SecondPrism[S, A, C any](p Prism[S, A]) Prism[functional.Pair[C, S], functional.Pair[C, A]] {
	return Prism[functional.Pair[C, S], functional.Pair[C, A]]{
		getOrModify: func(cs functional.Pair[C, S]) functional.Either[functional.Pair[C, S], functional.Pair[C, A]] {
			if a, ok := p.getOrModify(cs.Second).GetRight(); ok {
				return functional.Right[functional.Pair[C, S]](functional.NewPair(cs.First, a))
			}
			return functional.Left[functional.Pair[C, S], functional.Pair[C, A]](cs)
		},
		reverseGet: func(ca functional.Pair[C, A]) functional.Pair[C, S] {
			return functional.MapPairSecond(ca, p.reverseGet)
		},
	}
}

// LeftCase lifts p into the Left side of an Either; Right values always match.
func LeftCase[S, A, C any](p Prism[S, A]) Prism[functional.Either[S, C], functional.Either[A, C]] {
	return Prism[functional.Either[S, C], functional.Either[A, C]]{
		getOrModify: func(e functional.Either[S, C]) functional.Either[functional.Either[S, C], functional.Either[A, C]] {
			s, ok := e.GetLeft()
			if !ok {
				return functional.Right[functional.Either[S, C]](functional.Right[A](e.RightValue()))
			}
			if a, ok := p.getOrModify(s).GetRight(); ok {
				return functional.Right[functional.Either[S, C]](functional.Left[A, C](a))
			}
			return functional.Left[functional.Either[S, C], functional.Either[A, C]](e)
		},
		reverseGet: func(e functional.Either[A, C]) functional.Either[S, C] {
			return functional.MapEitherLeft(e, p.reverseGet)
		},
	}
}

// RightCase lifts p into the Right side of an Either; Left values always match.
func RightCase[S, A, C any](p Prism[S, A]) Prism[functional.Either[C, S], functional.Either[C, A]] {
	return Prism[functional.Either[C, S], functional.Either[C, A]]{
		getOrModify: func(e functional.Either[C, S]) functional.Either[functional.Either[C, S], functional.Either[C, A]] {
			s, ok := e.GetRight()
			if !ok {
				return functional.Right[functional.Either[C, S]](functional.Left[C, A](e.LeftValue()))
			}
			if a, ok := p.getOrModify(s).GetRight(); ok {
				return functional.Right[functional.Either[C, S]](functional.Right[C](a))
			}
			return functional.Left[functional.Either[C, S], functional.Either[C, A]](e)
		},
		reverseGet: func(e functional.Either[C, A]) functional.Either[C, S] {
			return functional.MapEitherRight(e, p.reverseGet)
		},
	}
}

// StringToInt matches decimal strings in canonical form, so "42" and "-7"
// match while "007" and "+1" do not.
func StringToInt() Prism[string, int] {
	return Prism[string, int]{
		getOrModify: func(s string) functional.Either[string, int] {
			n, err := strconv.Atoi(s)
			if err != nil || strconv.Itoa(n) != s {
				return functional.Left[string, int](s)
			}
			return functional.Right[string](n)
		},
		reverseGet: strconv.Itoa,
	}
}

// Narrow matches integers of type From that fit in To without loss.
// ReverseGet widens back, so To's range must be contained in From's.
func Narrow[From, To safecast.Integer]() Prism[From, To] {
	return Prism[From, To]{
		getOrModify: func(from From) functional.Either[From, To] {
			to, err := safecast.Conv[To](from)
			if err != nil {
				return functional.Left[From, To](from)
			}
			return functional.Right[From](to)
		},
		reverseGet: func(to To) From { return From(to) },
	}
}
