package optics_test

import (
	"slices"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/authcorp/libs/go/optics"
	"github.com/authcorp/libs/go/optics/functional"
	"github.com/authcorp/libs/go/optics/laws"
)

func TestGetter(t *testing.T) {
	length := optics.NewGetter(func(s string) int { return len(s) })

	if got := length.Get("abc"); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if !length.Exists("abc", func(n int) bool { return n == 3 }) {
		t.Error("Exists: expected true")
	}
	if length.Find("ab", func(n int) bool { return n > 2 }).IsSome() {
		t.Error("Find: expected None")
	}

	nameLength := optics.ComposeGetter(PersonNameLens().AsGetter(), length)
	if got := nameLength.Get(Person{Name: "Alice"}); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
	if got := nameLength.AsFold().GetAll(Person{Name: "Bo"}); !slices.Equal(got, []int{2}) {
		t.Errorf("AsFold: got %v", got)
	}
	if got := optics.IdentityGetter[int]().Get(7); got != 7 {
		t.Errorf("IdentityGetter: got %d", got)
	}
}

func TestGetterPairs(t *testing.T) {
	name := PersonNameLens().AsGetter()
	age := PersonAgeLens().AsGetter()
	p := Person{Name: "Ann", Age: 40}

	if got := optics.ZipGetter(name, age).Get(p); got != functional.NewPair("Ann", 40) {
		t.Errorf("ZipGetter: got %s", describe(got))
	}

	split := optics.SplitGetter(name, TokenValueLens().AsGetter())
	if got := split.Get(functional.NewPair(p, Token{Value: "t"})); got != functional.NewPair("Ann", "t") {
		t.Errorf("SplitGetter: got %s", describe(got))
	}

	first := optics.FirstGetter[Person, int, bool](age)
	if got := first.Get(functional.NewPair(p, true)); got != functional.NewPair(40, true) {
		t.Errorf("FirstGetter: got %s", describe(got))
	}

	second := optics.SecondGetter[Person, int, bool](age)
	if got := second.Get(functional.NewPair(false, p)); got != functional.NewPair(false, 40) {
		t.Errorf("SecondGetter: got %s", describe(got))
	}

	choice := optics.ChoiceGetter(name, TokenValueLens().AsGetter())
	if got := choice.Get(functional.Right[Person](Token{Value: "tok"})); got != "tok" {
		t.Errorf("ChoiceGetter: got %q", got)
	}
}

func TestSetter(t *testing.T) {
	upper := optics.SliceSetter[string]()
	words := []string{"a", "b"}

	if got := upper.Modify(words, strings.ToUpper); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("Modify: got %v", got)
	}
	if got := upper.Set(words, "x"); !slices.Equal(got, []string{"x", "x"}) {
		t.Errorf("Set: got %v", got)
	}
	if got := upper.Modify(nil, strings.ToUpper); got != nil {
		t.Errorf("nil should stay nil, got %#v", got)
	}

	nested := optics.ComposeSetter(optics.SliceSetter[Person](), PersonNameLens().AsSetter())
	shout := nested.Lift(strings.ToUpper)
	people := shout([]Person{{Name: "ann"}, {Name: "bob"}})
	if people[0].Name != "ANN" || people[1].Name != "BOB" {
		t.Errorf("unexpected %s", describe(people))
	}

	choice := optics.ChoiceSetter(PersonAgeLens().AsSetter(), optics.SliceSetter[int]())
	if got := choice.Set(functional.Right[Person]([]int{1, 2}), 0); !slices.Equal(got.RightValue(), []int{0, 0}) {
		t.Errorf("ChoiceSetter: got %s", describe(got))
	}

	if got := optics.IdentitySetter[int]().Modify(2, func(n int) int { return n * 5 }); got != 10 {
		t.Errorf("IdentitySetter: got %d", got)
	}
}

func TestSetterLaws(t *testing.T) {
	laws.Check(t, laws.SetterLaws("slice", optics.SliceSetter[string](), laws.Fixture[[]string, string]{
		Whole: rapid.SliceOfN(rapid.String(), 0, 6),
		Focus: rapid.String(),
		Endo:  laws.StringEndoGen(),
	})...)

	incrementEvens := optics.NewSetter(func(xs []int, fn func(int) int) []int {
		out := make([]int, len(xs))
		for i, x := range xs {
			if i%2 == 0 {
				x = fn(x)
			}
			out[i] = x
		}
		return out
	})
	laws.Check(t, laws.SetterLaws("even.positions", incrementEvens, laws.Fixture[[]int, int]{
		Whole: rapid.SliceOfN(rapid.Int(), 0, 8),
		Focus: rapid.Int(),
		Endo:  laws.IntEndoGen(),
	})...)
}
