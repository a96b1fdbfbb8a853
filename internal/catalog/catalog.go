// Package catalog holds the law suites of the optics this module ships.
package catalog

import (
	"slices"
	"strings"

	"pgregory.net/rapid"

	"github.com/authcorp/libs/go/optics"
	"github.com/authcorp/libs/go/optics/codec"
	"github.com/authcorp/libs/go/optics/functional"
	"github.com/authcorp/libs/go/optics/laws"
)

// Suite is a named group of laws for one stock optic.
type Suite struct {
	Name string
	Kind optics.Kind
	Laws []laws.Law
}

// Endpoint is the record the codec suites encode.
type Endpoint struct {
	Host string `json:"host" yaml:"host" toml:"host" msgpack:"host"`
	Port int    `json:"port" yaml:"port" toml:"port" msgpack:"port"`
	TLS  bool   `json:"tls" yaml:"tls" toml:"tls" msgpack:"tls"`
}

func endpointGen() *rapid.Generator[Endpoint] {
	return rapid.Custom(func(t *rapid.T) Endpoint {
		return Endpoint{
			Host: rapid.StringMatching(`[a-z][a-z0-9-]{0,11}`).Draw(t, "host"),
			Port: rapid.IntRange(0, 65535).Draw(t, "port"),
			TLS:  rapid.Bool().Draw(t, "tls"),
		}
	})
}

func intSlices() *rapid.Generator[[]int] {
	return rapid.SliceOfN(rapid.IntRange(-100, 100), 0, 8)
}

func intFixture[S any](whole *rapid.Generator[S]) laws.Fixture[S, int] {
	return laws.Fixture[S, int]{Whole: whole, Focus: rapid.Int(), Endo: laws.IntEndoGen()}
}

// Suites returns every suite, sorted by name.
func Suites() []Suite {
	suites := []Suite{
		{Name: "list.head", Kind: optics.KindOptional, Laws: laws.OptionalLaws("list.head", optics.ListHead[int](), intFixture(intSlices()))},
		{Name: "list.last", Kind: optics.KindOptional, Laws: laws.OptionalLaws("list.last", optics.ListLast[int](), intFixture(intSlices()))},
		{Name: "list.index", Kind: optics.KindOptional, Laws: laws.OptionalLaws("list.index", optics.Index[int](1), intFixture(intSlices()))},
		{Name: "map.index", Kind: optics.KindOptional, Laws: laws.OptionalLaws("map.index", optics.MapIndex[string, int]("k"),
			intFixture(rapid.MapOfN(rapid.SampledFrom([]string{"k", "x", "y"}), rapid.Int(), 0, 3)))},
		{Name: "map.at", Kind: optics.KindLens, Laws: laws.LensLaws("map.at", optics.At[string, int]("k"), laws.Fixture[map[string]int, functional.Option[int]]{
			Whole: rapid.MapOfN(rapid.SampledFrom([]string{"k", "x"}), rapid.Int(), 0, 2),
			Focus: laws.OptionGen(rapid.Int()),
		})},
		{Name: "pair.first", Kind: optics.KindLens, Laws: laws.LensLaws("pair.first", optics.PairFirst[int, string](), laws.Fixture[functional.Pair[int, string], int]{
			Whole: laws.PairGen(rapid.Int(), rapid.String()),
			Focus: rapid.Int(),
			Endo:  laws.IntEndoGen(),
		})},
		{Name: "string.int", Kind: optics.KindPrism, Laws: laws.PrismLaws("string.int", optics.StringToInt(), intFixture(
			rapid.OneOf(rapid.String(), rapid.Map(rapid.Int(), optics.StringToInt().ReverseGet))))},
		{Name: "narrow.int8", Kind: optics.KindPrism, Laws: laws.PrismLaws("narrow.int8", optics.Narrow[int, int8](), laws.Fixture[int, int8]{
			Whole: rapid.IntRange(-1000, 1000),
			Focus: rapid.Int8(),
		})},
		{Name: "option.some", Kind: optics.KindPrism, Laws: laws.PrismLaws("option.some", optics.SomePrism[int](), intFixture(laws.OptionGen(rapid.Int())))},
		{Name: "either.left", Kind: optics.KindPrism, Laws: laws.PrismLaws("either.left", optics.LeftPrism[int, string](),
			intFixture(laws.EitherGen(rapid.Int(), rapid.String())))},
		{Name: "pair.swap", Kind: optics.KindIso, Laws: laws.IsoLaws("pair.swap", optics.SwapIso[int, string](), laws.Fixture[functional.Pair[int, string], functional.Pair[string, int]]{
			Whole: laws.PairGen(rapid.Int(), rapid.String()),
			Focus: laws.PairGen(rapid.String(), rapid.Int()),
		})},
		{Name: "either.swap", Kind: optics.KindIso, Laws: laws.IsoLaws("either.swap", optics.EitherSwapIso[int, string](), laws.Fixture[functional.Either[int, string], functional.Either[string, int]]{
			Whole: laws.EitherGen(rapid.Int(), rapid.String()),
			Focus: laws.EitherGen(rapid.String(), rapid.Int()),
		})},
		{Name: "slice.each", Kind: optics.KindTraversal, Laws: laws.TraversalLaws("slice.each", optics.SliceTraversal[int](), intFixture(intSlices()))},
		{Name: "map.values", Kind: optics.KindTraversal, Laws: laws.TraversalLaws("map.values", optics.MapValues[string, int](),
			intFixture(rapid.MapOfN(rapid.StringN(1, 3, 3), rapid.IntRange(-100, 100), 0, 6)))},
		{Name: "pair.both", Kind: optics.KindTraversal, Laws: laws.TraversalLaws("pair.both", optics.PairBoth[int](), intFixture(laws.PairGen(rapid.Int(), rapid.Int())))},
		{Name: "slice.fold", Kind: optics.KindFold, Laws: laws.FoldLaws("slice.fold", optics.SliceFold[int](), intSlices(), laws.Equal[int])},
		{Name: "slice.setter", Kind: optics.KindSetter, Laws: laws.SetterLaws("slice.setter", optics.SliceSetter[int](), intFixture(intSlices()))},
		codecSuite(codec.FormatJSON, "{", "[1,2]", `"text"`),
		codecSuite(codec.FormatYAML, "{", "[1, 2]", "- x"),
		codecSuite(codec.FormatTOML, "= 1", "[[", "host = "),
		codecSuite(codec.FormatMsgpack, "\xc1", "\x01"),
		composeSuite(),
	}
	slices.SortFunc(suites, func(a, b Suite) int { return strings.Compare(a.Name, b.Name) })
	return suites
}

// codecSuite checks the prism of format on canonical documents mixed with
// inputs the codec rejects.
func codecSuite(format codec.Format, invalid ...string) Suite {
	p, err := codec.For[Endpoint](format)
	if err != nil {
		panic(err)
	}
	bad := make([][]byte, len(invalid))
	for i, s := range invalid {
		bad[i] = []byte(s)
	}
	name := "codec." + string(format)
	return Suite{
		Name: name,
		Kind: optics.KindPrism,
		Laws: laws.PrismLaws(name, p, laws.Fixture[[]byte, Endpoint]{
			Whole: rapid.OneOf(rapid.Map(endpointGen(), p.ReverseGet), rapid.SampledFrom(bad)),
			Focus: endpointGen(),
		}),
	}
}

// composeSuite checks that head∘each∘port groups either way.
func composeSuite() Suite {
	port := optics.NewLens(
		func(e Endpoint) int { return e.Port },
		func(e Endpoint, p int) Endpoint { e.Port = p; return e },
	)
	law, err := laws.ComposeAssociative[[][]Endpoint, []Endpoint, Endpoint, int]("compose.head-each-port",
		optics.ListHead[[]Endpoint](), optics.SliceTraversal[Endpoint](), port,
		intFixture(rapid.SliceOfN(rapid.SliceOfN(endpointGen(), 0, 3), 0, 3)))
	if err != nil {
		panic(err)
	}
	return Suite{Name: "compose.head-each-port", Kind: optics.KindTraversal, Laws: []laws.Law{law}}
}

// Lookup returns the suite called name.
func Lookup(name string) (Suite, bool) {
	for _, s := range Suites() {
		if s.Name == name {
			return s, true
		}
	}
	return Suite{}, false
}

// Laws flattens the laws of suites.
func Laws(suites []Suite) []laws.Law {
	var out []laws.Law
	for _, s := range suites {
		out = append(out, s.Laws...)
	}
	return out
}
