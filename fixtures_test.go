package optics_test

import (
	"fmt"

	"pgregory.net/rapid"

	"github.com/authcorp/libs/go/optics"
	"github.com/authcorp/libs/go/optics/functional"
)

type Token struct {
	Value string
}

type User struct {
	Token Token
}

type Person struct {
	Name    string
	Age     int
	Address Address
}

type Address struct {
	Street string
	City   string
}

// SumType is either A (a string) or B (an int).
type SumType interface {
	isSumType()
}

type A struct{ S string }
type B struct{ N int }

func (A) isSumType() {}
func (B) isSumType() {}

func TokenValueLens() optics.Lens[Token, string] {
	return optics.NewLens(
		func(t Token) string { return t.Value },
		func(t Token, v string) Token { t.Value = v; return t },
	)
}

func UserTokenLens() optics.Lens[User, Token] {
	return optics.NewLens(
		func(u User) Token { return u.Token },
		func(u User, t Token) User { u.Token = t; return u },
	)
}

func PersonNameLens() optics.Lens[Person, string] {
	return optics.NewLens(
		func(p Person) string { return p.Name },
		func(p Person, name string) Person { p.Name = name; return p },
	)
}

func PersonAgeLens() optics.Lens[Person, int] {
	return optics.NewLens(
		func(p Person) int { return p.Age },
		func(p Person, age int) Person { p.Age = age; return p },
	)
}

func PersonAddressLens() optics.Lens[Person, Address] {
	return optics.NewLens(
		func(p Person) Address { return p.Address },
		func(p Person, addr Address) Person { p.Address = addr; return p },
	)
}

func AddressCityLens() optics.Lens[Address, string] {
	return optics.NewLens(
		func(a Address) string { return a.City },
		func(a Address, city string) Address { a.City = city; return a },
	)
}

func AddressStreetLens() optics.Lens[Address, string] {
	return optics.NewLens(
		func(a Address) string { return a.Street },
		func(a Address, street string) Address { a.Street = street; return a },
	)
}

func SumAPrism() optics.Prism[SumType, string] {
	return optics.NewPrism(
		func(s SumType) functional.Either[SumType, string] {
			if a, ok := s.(A); ok {
				return functional.Right[SumType](a.S)
			}
			return functional.Left[SumType, string](s)
		},
		func(v string) SumType { return A{S: v} },
	)
}

func SumBPrism() optics.Prism[SumType, int] {
	return optics.NewPrism(
		func(s SumType) functional.Either[SumType, int] {
			if b, ok := s.(B); ok {
				return functional.Right[SumType](b.N)
			}
			return functional.Left[SumType, int](s)
		},
		func(n int) SumType { return B{N: n} },
	)
}

// Celsius and Kelvin in hundredths of a degree, so the iso is exact.
type Celsius int
type Kelvin int

func CelsiusKelvinIso() optics.Iso[Celsius, Kelvin] {
	return optics.NewIso(
		func(c Celsius) Kelvin { return Kelvin(c + 27315) },
		func(k Kelvin) Celsius { return Celsius(k - 27315) },
	)
}

func tokenGen() *rapid.Generator[Token] {
	return rapid.Custom(func(t *rapid.T) Token {
		return Token{Value: rapid.String().Draw(t, "value")}
	})
}

func userGen() *rapid.Generator[User] {
	return rapid.Custom(func(t *rapid.T) User {
		return User{Token: tokenGen().Draw(t, "token")}
	})
}

func personGen() *rapid.Generator[Person] {
	return rapid.Custom(func(t *rapid.T) Person {
		return Person{
			Name: rapid.String().Draw(t, "name"),
			Age:  rapid.IntRange(0, 120).Draw(t, "age"),
			Address: Address{
				Street: rapid.String().Draw(t, "street"),
				City:   rapid.String().Draw(t, "city"),
			},
		}
	})
}

func sumGen() *rapid.Generator[SumType] {
	return rapid.OneOf(
		rapid.Map(rapid.String(), func(s string) SumType { return A{S: s} }),
		rapid.Map(rapid.Int(), func(n int) SumType { return B{N: n} }),
	)
}

func intSliceGen() *rapid.Generator[[]int] {
	return rapid.SliceOfN(rapid.IntRange(-1000, 1000), 0, 8)
}

func describe(v any) string {
	return fmt.Sprintf("%#v", v)
}
