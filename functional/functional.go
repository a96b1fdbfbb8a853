// Package functional provides the small algebraic vocabulary the optics
// are written against: Either, Option, Pair and Monoid.
package functional

// IdentityFunc returns its argument unchanged.
func IdentityFunc[T any](v T) T {
	return v
}

// ComposeFunc returns g∘f, applying f first.
func ComposeFunc[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Const returns a function that ignores its argument and returns v.
func Const[A, B any](v B) func(A) B {
	return func(A) B { return v }
}
