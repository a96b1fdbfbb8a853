package laws

import (
	"strings"

	"pgregory.net/rapid"

	"github.com/authcorp/libs/go/optics/functional"
)

// EndoGen generates endofunctions for any focus type: the identity or a
// constant drawn from values.
func EndoGen[A any](values *rapid.Generator[A]) *rapid.Generator[func(A) A] {
	return rapid.Custom(func(t *rapid.T) func(A) A {
		if rapid.Bool().Draw(t, "identity") {
			return functional.IdentityFunc[A]
		}
		return functional.Const[A](values.Draw(t, "constant"))
	})
}

// IntEndoGen generates integer endofunctions from a small algebra of
// shifts, scalings, negation and constants.
func IntEndoGen() *rapid.Generator[func(int) int] {
	return rapid.Custom(func(t *rapid.T) func(int) int {
		k := rapid.IntRange(-100, 100).Draw(t, "k")
		switch rapid.IntRange(0, 4).Draw(t, "op") {
		case 0:
			return func(x int) int { return x + k }
		case 1:
			return func(x int) int { return x * k }
		case 2:
			return func(x int) int { return -x }
		case 3:
			return func(int) int { return k }
		default:
			return functional.IdentityFunc[int]
		}
	})
}

// StringEndoGen generates string endofunctions.
func StringEndoGen() *rapid.Generator[func(string) string] {
	return rapid.Custom(func(t *rapid.T) func(string) string {
		s := rapid.StringN(0, 8, -1).Draw(t, "s")
		switch rapid.IntRange(0, 4).Draw(t, "op") {
		case 0:
			return func(x string) string { return x + s }
		case 1:
			return func(x string) string { return s + x }
		case 2:
			return strings.ToUpper
		case 3:
			return func(string) string { return s }
		default:
			return functional.IdentityFunc[string]
		}
	})
}

// OptionGen generates Option[T] values.
func OptionGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[functional.Option[T]] {
	return rapid.Custom(func(t *rapid.T) functional.Option[T] {
		if rapid.Bool().Draw(t, "isSome") {
			return functional.Some(valueGen.Draw(t, "value"))
		}
		return functional.None[T]()
	})
}

// EitherGen generates Either[L, R] values.
func EitherGen[L, R any](leftGen *rapid.Generator[L], rightGen *rapid.Generator[R]) *rapid.Generator[functional.Either[L, R]] {
	return rapid.Custom(func(t *rapid.T) functional.Either[L, R] {
		if rapid.Bool().Draw(t, "isRight") {
			return functional.Right[L](rightGen.Draw(t, "right"))
		}
		return functional.Left[L, R](leftGen.Draw(t, "left"))
	})
}

// PairGen generates Pair[A, B] values.
func PairGen[A, B any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B]) *rapid.Generator[functional.Pair[A, B]] {
	return rapid.Custom(func(t *rapid.T) functional.Pair[A, B] {
		return functional.NewPair(firstGen.Draw(t, "first"), secondGen.Draw(t, "second"))
	})
}

type input2[X, Y any] struct {
	x X
	y Y
}

type input3[X, Y, Z any] struct {
	x X
	y Y
	z Z
}

func gen2[X, Y any](gx *rapid.Generator[X], gy *rapid.Generator[Y]) *rapid.Generator[input2[X, Y]] {
	return rapid.Custom(func(t *rapid.T) input2[X, Y] {
		return input2[X, Y]{x: gx.Draw(t, "x"), y: gy.Draw(t, "y")}
	})
}

func gen3[X, Y, Z any](gx *rapid.Generator[X], gy *rapid.Generator[Y], gz *rapid.Generator[Z]) *rapid.Generator[input3[X, Y, Z]] {
	return rapid.Custom(func(t *rapid.T) input3[X, Y, Z] {
		return input3[X, Y, Z]{x: gx.Draw(t, "x"), y: gy.Draw(t, "y"), z: gz.Draw(t, "z")}
	})
}
