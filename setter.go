package optics

import "github.com/authcorp/libs/go/optics/functional"

// Setter rewrites zero or more foci without reading them individually.
// It is total: a setter with nothing to rewrite returns the whole unchanged.
type Setter[S, A any] struct {
	modify func(S, func(A) A) S
}

// NewSetter creates a setter from a modify function. modify must satisfy
// modify(s, id) == s and modify(modify(s, f), g) == modify(s, g∘f).
func NewSetter[S, A any](modify func(S, func(A) A) S) Setter[S, A] {
	return Setter[S, A]{modify: modify}
}

// Kind reports KindSetter.
func (st Setter[S, A]) Kind() Kind { return KindSetter }

func (Setter[S, A]) optic(S, A) {}

// Modify applies fn to every focus.
func (st Setter[S, A]) Modify(source S, fn func(A) A) S {
	return st.modify(source, fn)
}

// Set replaces every focus with value.
func (st Setter[S, A]) Set(source S, value A) S {
	return st.modify(source, functional.Const[A](value))
}

// Lift turns fn into a whole-to-whole function.
func (st Setter[S, A]) Lift(fn func(A) A) func(S) S {
	return func(s S) S { return st.modify(s, fn) }
}

// AsSetter returns st unchanged.
func (st Setter[S, A]) AsSetter() Setter[S, A] { return st }

// ComposeSetter rewrites the inner foci of every outer focus.
func ComposeSetter[S, A, B any](outer Setter[S, A], inner Setter[A, B]) Setter[S, B] {
	return Setter[S, B]{
		modify: func(s S, fn func(B) B) S {
			return outer.modify(s, func(a A) A { return inner.modify(a, fn) })
		},
	}
}

// IdentitySetter rewrites the whole.
func IdentitySetter[S any]() Setter[S, S] {
	return Setter[S, S]{modify: func(s S, fn func(S) S) S { return fn(s) }}
}

// ChoiceSetter rewrites through left or right depending on the side of the whole.
func ChoiceSetter[S, C, A any](left Setter[S, A], right Setter[C, A]) Setter[functional.Either[S, C], A] {
	return Setter[functional.Either[S, C], A]{
		modify: func(e functional.Either[S, C], fn func(A) A) functional.Either[S, C] {
			return functional.BimapEither(e,
				func(s S) S { return left.modify(s, fn) },
				func(c C) C { return right.modify(c, fn) },
			)
		},
	}
}

// SliceSetter rewrites every element of a slice into a fresh slice.
func SliceSetter[A any]() Setter[[]A, A] {
	return Setter[[]A, A]{modify: mapSlice[A]}
}

func mapSlice[A any](xs []A, fn func(A) A) []A {
	if xs == nil {
		return nil
	}
	out := make([]A, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}
