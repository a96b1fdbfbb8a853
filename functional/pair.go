package functional

// Pair is the product the optic combinators split and zip over: FirstLens,
// SplitIso and PairBoth all focus into its fields.
type Pair[A, B any] struct {
	First  A
	Second B
}

func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Swap exchanges the fields; SwapIso is built on it.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return NewPair(p.Second, p.First)
}

// MapPairFirst rewrites First and carries Second through.
func MapPairFirst[A, B, C any](p Pair[A, B], fn func(A) C) Pair[C, B] {
	return NewPair(fn(p.First), p.Second)
}

// MapPairSecond rewrites Second and carries First through.
func MapPairSecond[A, B, C any](p Pair[A, B], fn func(B) C) Pair[A, C] {
	return NewPair(p.First, fn(p.Second))
}

// MapPairBoth rewrites both fields independently.
func MapPairBoth[A, B, C, D any](p Pair[A, B], fnA func(A) C, fnB func(B) D) Pair[C, D] {
	return NewPair(fnA(p.First), fnB(p.Second))
}
