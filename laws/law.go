// Package laws checks that optics obey the equations of their kind.
//
// A Law pairs a generator of inputs with a predicate. Check runs laws as
// rapid property tests; Verifier runs the same laws outside of go test,
// drawing deterministic samples and reporting *Violation errors.
package laws

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

// Eq decides equality of two values. A nil Eq means reflect.DeepEqual.
type Eq[T any] func(a, b T) bool

func (eq Eq[T]) equal(a, b T) bool {
	if eq == nil {
		return reflect.DeepEqual(a, b)
	}
	return eq(a, b)
}

// Equal is Eq for comparable types.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// Law is one named equation over generated inputs.
type Law struct {
	Name string
	Code Code

	draw   func(t *rapid.T) *Violation
	sample func(seed int) *Violation
}

// NewLaw builds a law from an input generator and a predicate that returns
// nil when the equation holds.
func NewLaw[C any](code Code, name string, gen *rapid.Generator[C], predicate func(C) *Violation) Law {
	return Law{
		Name: name,
		Code: code,
		draw: func(t *rapid.T) *Violation {
			return predicate(gen.Draw(t, "input"))
		},
		sample: func(seed int) *Violation {
			return predicate(gen.Example(seed))
		},
	}
}

// Property returns the law as a rapid property.
func (l Law) Property() func(*rapid.T) {
	return func(t *rapid.T) {
		if v := l.draw(t); v != nil {
			t.Fatal(v.Error())
		}
	}
}

// Sample evaluates the law once on the input generated from seed.
func (l Law) Sample(seed int) *Violation {
	v := l.sample(seed)
	if v != nil {
		v.Seed = seed
	}
	return v
}

// Check runs every law as a rapid-driven subtest of t.
func Check(t *testing.T, laws ...Law) {
	t.Helper()
	for _, law := range laws {
		t.Run(law.Name, rapid.MakeCheck(law.Property()))
	}
}
