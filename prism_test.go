package optics_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"pgregory.net/rapid"

	"github.com/authcorp/libs/go/optics"
	"github.com/authcorp/libs/go/optics/functional"
	"github.com/authcorp/libs/go/optics/laws"
)

func TestPrismSumType(t *testing.T) {
	p := SumAPrism()

	t.Run("matching case yields the payload", func(t *testing.T) {
		e := p.GetOrModify(A{S: "hi"})
		if v, ok := e.GetRight(); !ok || v != "hi" {
			t.Errorf("expected Right(hi), got %s", describe(e))
		}
	})

	t.Run("other case is returned unchanged", func(t *testing.T) {
		e := p.GetOrModify(B{N: 5})
		if l, ok := e.GetLeft(); !ok || l != (B{N: 5}) {
			t.Errorf("expected Left(B{5}), got %s", describe(e))
		}
	})

	t.Run("ReverseGet builds the case", func(t *testing.T) {
		if got := p.ReverseGet("hi"); got != (A{S: "hi"}) {
			t.Errorf("expected A{hi}, got %s", describe(got))
		}
	})

	t.Run("Modify and Set on another case are no-ops", func(t *testing.T) {
		if got := p.Modify(B{N: 1}, func(s string) string { return s + "!" }); got != (B{N: 1}) {
			t.Errorf("unexpected %s", describe(got))
		}
		if got := p.SetOption(B{N: 1}, "x"); got.IsSome() {
			t.Error("expected None from SetOption on mismatch")
		}
		if got := p.ModifyOption(A{S: "a"}, func(s string) string { return s + "!" }); got.IsNone() || got.Unwrap() != (A{S: "a!"}) {
			t.Errorf("unexpected %s", describe(got))
		}
	})
}

func TestPrismLaws(t *testing.T) {
	laws.Check(t, laws.PrismLaws("sum.a", SumAPrism(), laws.Fixture[SumType, string]{
		Whole: sumGen(),
		Focus: rapid.String(),
		Endo:  laws.StringEndoGen(),
	})...)

	laws.Check(t, laws.PrismLaws("string-to-int", optics.StringToInt(), laws.Fixture[string, int]{
		Whole: rapid.OneOf(rapid.String(), rapid.Map(rapid.Int(), itoa)),
		Focus: rapid.Int(),
		Endo:  laws.IntEndoGen(),
	})...)

	laws.Check(t, laws.PrismLaws("narrow.int8", optics.Narrow[int, int8](), laws.Fixture[int, int8]{
		Whole: rapid.IntRange(-1000, 1000),
		Focus: rapid.Int8(),
	})...)

	laws.Check(t, laws.PrismLaws("right", optics.RightPrism[string, int](), laws.Fixture[functional.Either[string, int], int]{
		Whole: laws.EitherGen(rapid.String(), rapid.Int()),
		Focus: rapid.Int(),
		Endo:  laws.IntEndoGen(),
	})...)

	laws.Check(t, laws.PrismLaws("sum.a.int", optics.ComposePrism(SumAPrism(), optics.StringToInt()), laws.Fixture[SumType, int]{
		Whole: sumGen(),
		Focus: rapid.Int(),
		Endo:  laws.IntEndoGen(),
	})...)
}

func TestPrismRoundTripProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("GetOption(ReverseGet(n)) == Some(n)", prop.ForAll(
		func(n int) bool {
			p := optics.StringToInt()
			got := p.GetOption(p.ReverseGet(n))
			return got.IsSome() && got.Unwrap() == n
		},
		gen.Int(),
	))

	properties.Property("matched strings rebuild exactly", prop.ForAll(
		func(s string) bool {
			p := optics.StringToInt()
			n, ok := p.GetOption(s).Get()
			return !ok || p.ReverseGet(n) == s
		},
		gen.NumString(),
	))

	properties.TestingRun(t)
}

func TestStringToInt(t *testing.T) {
	p := optics.StringToInt()

	for _, tc := range []struct {
		in    string
		want  int
		match bool
	}{
		{"123", 123, true},
		{"-7", -7, true},
		{"0", 0, true},
		{"abc", 0, false},
		{"", 0, false},
		{"007", 0, false},
		{"+1", 0, false},
	} {
		got, ok := p.GetOption(tc.in).Get()
		if ok != tc.match || got != tc.want {
			t.Errorf("GetOption(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.match)
		}
	}

	if got := p.Modify("10", func(n int) int { return n * 2 }); got != "20" {
		t.Errorf("expected 20, got %s", got)
	}
	if got := p.Set("abc", 99); got != "abc" {
		t.Errorf("expected abc, got %s", got)
	}
}

func TestOnlyPrism(t *testing.T) {
	type Color int
	const (
		Red Color = iota
		Green
	)
	p := optics.OnlyComparable(Red)

	if !p.GetOption(Red).IsSome() {
		t.Error("expected Red to match")
	}
	if p.GetOption(Green).IsSome() {
		t.Error("expected Green not to match")
	}
	if p.ReverseGet(struct{}{}) != Red {
		t.Error("expected ReverseGet to build Red")
	}

	folded := optics.Only("abc", func(a, b string) bool { return len(a) == len(b) })
	if !folded.GetOption("xyz").IsSome() {
		t.Error("custom eq should decide the match")
	}
}

func TestOptionAndEitherPrisms(t *testing.T) {
	some := optics.SomePrism[int]()
	if got := some.GetOption(functional.Some(42)); got.IsNone() || got.Unwrap() != 42 {
		t.Error("expected 42")
	}
	if some.GetOption(functional.None[int]()).IsSome() {
		t.Error("expected None")
	}
	if got := some.ReverseGet(1); got.IsNone() || got.Unwrap() != 1 {
		t.Error("expected Some(1)")
	}

	left := optics.LeftPrism[string, int]()
	if got := left.Modify(functional.Left[string, int]("a"), func(s string) string { return s + "b" }); got.LeftValue() != "ab" {
		t.Errorf("expected ab, got %s", describe(got))
	}
	if got := left.Modify(functional.Right[string](1), func(s string) string { return s + "b" }); got.RightValue() != 1 {
		t.Errorf("expected untouched Right(1), got %s", describe(got))
	}
}

func TestPrismCaseCombinators(t *testing.T) {
	t.Run("FirstPrism carries the second half", func(t *testing.T) {
		p := optics.FirstPrism[SumType, string, int](SumAPrism())
		got := p.GetOption(functional.NewPair[SumType](A{S: "x"}, 3))
		if got.IsNone() || got.Unwrap() != functional.NewPair("x", 3) {
			t.Errorf("unexpected %s", describe(got))
		}
		if p.GetOption(functional.NewPair[SumType](B{N: 1}, 3)).IsSome() {
			t.Error("expected mismatch")
		}
	})

	t.Run("LeftCase passes Right through", func(t *testing.T) {
		p := optics.LeftCase[SumType, string, int](SumAPrism())
		right := functional.Right[SumType](9)
		got := p.GetOption(right)
		if got.IsNone() || got.Unwrap().RightValue() != 9 {
			t.Errorf("unexpected %s", describe(got))
		}
		if p.GetOption(functional.Left[SumType, int](B{N: 2})).IsSome() {
			t.Error("expected mismatch on Left(B)")
		}
		if rebuilt := p.ReverseGet(functional.Left[string, int]("z")); rebuilt.LeftValue() != (A{S: "z"}) {
			t.Errorf("unexpected %s", describe(rebuilt))
		}
	})

	t.Run("RightCase passes Left through", func(t *testing.T) {
		p := optics.RightCase[SumType, int, string](SumBPrism())
		got := p.GetOption(functional.Right[string, SumType](B{N: 4}))
		if got.IsNone() || got.Unwrap().RightValue() != 4 {
			t.Errorf("unexpected %s", describe(got))
		}
	})
}

func TestNarrowPrism(t *testing.T) {
	p := optics.Narrow[int64, uint8]()

	if got, ok := p.GetOption(200).Get(); !ok || got != 200 {
		t.Errorf("expected 200, got (%d, %v)", got, ok)
	}
	if p.GetOption(256).IsSome() {
		t.Error("256 should not fit in uint8")
	}
	if p.GetOption(-1).IsSome() {
		t.Error("-1 should not fit in uint8")
	}
	if p.GetOption(math.MaxInt64).IsSome() {
		t.Error("MaxInt64 should not fit in uint8")
	}
	if got := p.Modify(250, func(b uint8) uint8 { return b + 10 }); got != 4 {
		t.Errorf("uint8 arithmetic wraps, expected 4, got %d", got)
	}
}

func itoa(n int) string {
	return optics.StringToInt().ReverseGet(n)
}
