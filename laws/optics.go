package laws

import (
	"pgregory.net/rapid"

	"github.com/authcorp/libs/go/optics"
	"github.com/authcorp/libs/go/optics/functional"
)

// Fixture supplies the inputs of the laws of an optic from S to A.
type Fixture[S, A any] struct {
	Whole *rapid.Generator[S]
	Focus *rapid.Generator[A]
	// Endo generates functions passed to Modify. Nil means EndoGen(Focus).
	Endo *rapid.Generator[func(A) A]
	// EqWhole and EqFocus default to reflect.DeepEqual.
	EqWhole Eq[S]
	EqFocus Eq[A]
}

func (fx Fixture[S, A]) endo() *rapid.Generator[func(A) A] {
	if fx.Endo != nil {
		return fx.Endo
	}
	return EndoGen(fx.Focus)
}

// LensGetSet checks Get(Set(s, a)) == a.
func LensGetSet[S, A any](l optics.Lens[S, A], s S, a A, eq Eq[A]) *Violation {
	if got := l.Get(l.Set(s, a)); !eq.equal(got, a) {
		return NewViolation(CodeLens, "get-set", "reading after a write returned a different value").
			WithDetail("whole", s).WithDetail("set", a).WithDetail("got", got)
	}
	return nil
}

// LensSetGet checks Set(s, Get(s)) == s.
func LensSetGet[S, A any](l optics.Lens[S, A], s S, eq Eq[S]) *Violation {
	if got := l.Set(s, l.Get(s)); !eq.equal(got, s) {
		return NewViolation(CodeLens, "set-get", "writing back the read value changed the whole").
			WithDetail("whole", s).WithDetail("got", got)
	}
	return nil
}

// LensSetSet checks Set(Set(s, a), b) == Set(s, b).
func LensSetSet[S, A any](l optics.Lens[S, A], s S, a, b A, eq Eq[S]) *Violation {
	if got, want := l.Set(l.Set(s, a), b), l.Set(s, b); !eq.equal(got, want) {
		return NewViolation(CodeLens, "set-set", "the second write did not override the first").
			WithDetail("whole", s).WithDetail("got", got).WithDetail("want", want)
	}
	return nil
}

// SetterIdentity checks Modify(s, id) == s.
func SetterIdentity[S, A any](st optics.Setter[S, A], s S, eq Eq[S]) *Violation {
	if got := st.Modify(s, functional.IdentityFunc[A]); !eq.equal(got, s) {
		return NewViolation(CodeSetter, "modify-identity", "modifying with the identity changed the whole").
			WithDetail("whole", s).WithDetail("got", got)
	}
	return nil
}

// SetterComposition checks Modify(Modify(s, f), g) == Modify(s, g∘f).
func SetterComposition[S, A any](st optics.Setter[S, A], s S, f, g func(A) A, eq Eq[S]) *Violation {
	got := st.Modify(st.Modify(s, f), g)
	want := st.Modify(s, functional.ComposeFunc(f, g))
	if !eq.equal(got, want) {
		return NewViolation(CodeSetter, "modify-composition", "two modifications differ from one composed modification").
			WithDetail("whole", s).WithDetail("got", got).WithDetail("want", want)
	}
	return nil
}

// PrismRoundTrip checks GetOrModify(ReverseGet(a)) == Right(a).
func PrismRoundTrip[S, A any](p optics.Prism[S, A], a A, eq Eq[A]) *Violation {
	got, ok := p.GetOrModify(p.ReverseGet(a)).GetRight()
	if !ok || !eq.equal(got, a) {
		return NewViolation(CodePrism, "round-trip", "a constructed case did not match back to its payload").
			WithDetail("payload", a).WithDetail("matched", ok).WithDetail("got", got)
	}
	return nil
}

// PrismPartialRoundTrip checks ReverseGet(a) == s whenever GetOrModify(s) == Right(a),
// and that a mismatch returns s untouched.
func PrismPartialRoundTrip[S, A any](p optics.Prism[S, A], s S, eq Eq[S]) *Violation {
	e := p.GetOrModify(s)
	if a, ok := e.GetRight(); ok {
		if got := p.ReverseGet(a); !eq.equal(got, s) {
			return NewViolation(CodePrism, "partial-round-trip", "rebuilding a matched payload changed the whole").
				WithDetail("whole", s).WithDetail("got", got)
		}
		return nil
	}
	if left := e.LeftValue(); !eq.equal(left, s) {
		return NewViolation(CodePrism, "partial-round-trip", "a mismatch did not return the original whole").
			WithDetail("whole", s).WithDetail("left", left)
	}
	return nil
}

// IsoRoundTrip checks ReverseGet(Get(s)) == s.
func IsoRoundTrip[S, A any](i optics.Iso[S, A], s S, eq Eq[S]) *Violation {
	if got := i.ReverseGet(i.Get(s)); !eq.equal(got, s) {
		return NewViolation(CodeIso, "round-trip", "reverseGet after get changed the whole").
			WithDetail("whole", s).WithDetail("got", got)
	}
	return nil
}

// IsoReverseRoundTrip checks Get(ReverseGet(a)) == a.
func IsoReverseRoundTrip[S, A any](i optics.Iso[S, A], a A, eq Eq[A]) *Violation {
	if got := i.Get(i.ReverseGet(a)); !eq.equal(got, a) {
		return NewViolation(CodeIso, "reverse-round-trip", "get after reverseGet changed the focus").
			WithDetail("focus", a).WithDetail("got", got)
	}
	return nil
}

// OptionalGetSet checks Set(s, a) == s whenever GetOption(s) == Some(a).
func OptionalGetSet[S, A any](o optics.Optional[S, A], s S, eq Eq[S]) *Violation {
	e := o.GetOrModify(s)
	if a, ok := e.GetRight(); ok {
		if got := o.Set(s, a); !eq.equal(got, s) {
			return NewViolation(CodeOptional, "get-set", "writing back the present focus changed the whole").
				WithDetail("whole", s).WithDetail("got", got)
		}
		return nil
	}
	if left := e.LeftValue(); !eq.equal(left, s) {
		return NewViolation(CodeOptional, "get-set", "an absent focus did not return the original whole").
			WithDetail("whole", s).WithDetail("left", left)
	}
	return nil
}

// OptionalSetGet checks GetOption(Set(s, a)) == Some(a) when s has a focus.
func OptionalSetGet[S, A any](o optics.Optional[S, A], s S, a A, eq Eq[A]) *Violation {
	if o.GetOption(s).IsNone() {
		return nil
	}
	got, ok := o.GetOption(o.Set(s, a)).Get()
	if !ok || !eq.equal(got, a) {
		return NewViolation(CodeOptional, "set-get", "reading after a write returned a different value").
			WithDetail("whole", s).WithDetail("set", a).WithDetail("present", ok).WithDetail("got", got)
	}
	return nil
}

// OptionalModifyConsistency checks that ModifyOption reports absence exactly
// when GetOption does.
func OptionalModifyConsistency[S, A any](o optics.Optional[S, A], s S, f func(A) A) *Violation {
	if o.ModifyOption(s, f).IsSome() != o.GetOption(s).IsSome() {
		return NewViolation(CodeOptional, "modify-option", "ModifyOption and GetOption disagree on presence").
			WithDetail("whole", s)
	}
	return nil
}

// TraversalConsistency checks that Modify visits exactly the foci of
// GetAll, in order, and that GetAll afterwards reports the rewritten foci.
func TraversalConsistency[S, A any](t optics.Traversal[S, A], s S, f func(A) A, eq Eq[A]) *Violation {
	before := t.GetAll(s)
	var visited []A
	after := t.GetAll(t.Modify(s, func(a A) A {
		visited = append(visited, a)
		return f(a)
	}))
	if !sliceEqual(visited, before, eq) {
		return NewViolation(CodeTraversal, "visit-order", "Modify visited different foci than GetAll reports").
			WithDetail("whole", s).WithDetail("visited", visited).WithDetail("getAll", before)
	}
	want := make([]A, len(before))
	for i, a := range before {
		want[i] = f(a)
	}
	if !sliceEqual(after, want, eq) {
		return NewViolation(CodeTraversal, "get-after-modify", "GetAll after Modify is not f applied to GetAll").
			WithDetail("whole", s).WithDetail("got", after).WithDetail("want", want)
	}
	if n := t.Size(s); n != len(before) {
		return NewViolation(CodeTraversal, "size", "Size disagrees with GetAll").
			WithDetail("size", n).WithDetail("getAll", len(before))
	}
	return nil
}

// FoldHomomorphism checks that FoldMap into the list monoid equals GetAll
// and that counting through FoldMap equals Size.
func FoldHomomorphism[S, A any](f optics.Fold[S, A], s S, eq Eq[A]) *Violation {
	all := f.GetAll(s)
	listed := optics.FoldMap(f, functional.SliceMonoid[A](), s, func(a A) []A { return []A{a} })
	if !sliceEqual(listed, all, eq) {
		return NewViolation(CodeFold, "fold-map-list", "FoldMap into the list monoid differs from GetAll").
			WithDetail("whole", s).WithDetail("got", listed).WithDetail("want", all)
	}
	if n := optics.FoldMap(f, functional.SumMonoid[int](), s, functional.Const[A](1)); n != len(all) {
		return NewViolation(CodeFold, "fold-map-count", "counting with FoldMap differs from len(GetAll)").
			WithDetail("whole", s).WithDetail("got", n).WithDetail("want", len(all))
	}
	return nil
}

// LensLaws returns the lens equations plus the setter and fold laws of the
// lens seen as a traversal.
func LensLaws[S, A any](name string, l optics.Lens[S, A], fx Fixture[S, A]) []Law {
	laws := []Law{
		NewLaw(CodeLens, name+"/get-set", gen2(fx.Whole, fx.Focus), func(in input2[S, A]) *Violation {
			return LensGetSet(l, in.x, in.y, fx.EqFocus)
		}),
		NewLaw(CodeLens, name+"/set-get", fx.Whole, func(s S) *Violation {
			return LensSetGet(l, s, fx.EqWhole)
		}),
		NewLaw(CodeLens, name+"/set-set", gen3(fx.Whole, fx.Focus, fx.Focus), func(in input3[S, A, A]) *Violation {
			return LensSetSet(l, in.x, in.y, in.z, fx.EqWhole)
		}),
	}
	return append(laws, TraversalLaws(name, l.AsTraversal(), fx)...)
}

// PrismLaws returns the prism equations plus the traversal laws of the prism.
func PrismLaws[S, A any](name string, p optics.Prism[S, A], fx Fixture[S, A]) []Law {
	laws := []Law{
		NewLaw(CodePrism, name+"/round-trip", fx.Focus, func(a A) *Violation {
			return PrismRoundTrip(p, a, fx.EqFocus)
		}),
		NewLaw(CodePrism, name+"/partial-round-trip", fx.Whole, func(s S) *Violation {
			return PrismPartialRoundTrip(p, s, fx.EqWhole)
		}),
	}
	return append(laws, TraversalLaws(name, p.AsTraversal(), fx)...)
}

// IsoLaws returns both round trips plus the lens laws of the iso.
func IsoLaws[S, A any](name string, i optics.Iso[S, A], fx Fixture[S, A]) []Law {
	laws := []Law{
		NewLaw(CodeIso, name+"/round-trip", fx.Whole, func(s S) *Violation {
			return IsoRoundTrip(i, s, fx.EqWhole)
		}),
		NewLaw(CodeIso, name+"/reverse-round-trip", fx.Focus, func(a A) *Violation {
			return IsoReverseRoundTrip(i, a, fx.EqFocus)
		}),
	}
	return append(laws, LensLaws(name, i.AsLens(), fx)...)
}

// OptionalLaws returns the optional equations plus its traversal laws.
func OptionalLaws[S, A any](name string, o optics.Optional[S, A], fx Fixture[S, A]) []Law {
	laws := []Law{
		NewLaw(CodeOptional, name+"/get-set", fx.Whole, func(s S) *Violation {
			return OptionalGetSet(o, s, fx.EqWhole)
		}),
		NewLaw(CodeOptional, name+"/set-get", gen2(fx.Whole, fx.Focus), func(in input2[S, A]) *Violation {
			return OptionalSetGet(o, in.x, in.y, fx.EqFocus)
		}),
		NewLaw(CodeOptional, name+"/modify-option", gen2(fx.Whole, fx.endo()), func(in input2[S, func(A) A]) *Violation {
			return OptionalModifyConsistency(o, in.x, in.y)
		}),
	}
	return append(laws, TraversalLaws(name, o.AsTraversal(), fx)...)
}

// TraversalLaws returns the setter laws of t plus visit consistency and
// the fold homomorphism.
func TraversalLaws[S, A any](name string, t optics.Traversal[S, A], fx Fixture[S, A]) []Law {
	laws := SetterLaws(name, t.Setter, fx)
	return append(laws,
		NewLaw(CodeTraversal, name+"/consistency", gen2(fx.Whole, fx.endo()), func(in input2[S, func(A) A]) *Violation {
			return TraversalConsistency(t, in.x, in.y, fx.EqFocus)
		}),
		NewLaw(CodeFold, name+"/fold-homomorphism", fx.Whole, func(s S) *Violation {
			return FoldHomomorphism(t.Fold, s, fx.EqFocus)
		}),
	)
}

// SetterLaws returns the identity and composition laws of st.
func SetterLaws[S, A any](name string, st optics.Setter[S, A], fx Fixture[S, A]) []Law {
	return []Law{
		NewLaw(CodeSetter, name+"/modify-identity", fx.Whole, func(s S) *Violation {
			return SetterIdentity(st, s, fx.EqWhole)
		}),
		NewLaw(CodeSetter, name+"/modify-composition", gen3(fx.Whole, fx.endo(), fx.endo()), func(in input3[S, func(A) A, func(A) A]) *Violation {
			return SetterComposition(st, in.x, in.y, in.z, fx.EqWhole)
		}),
	}
}

// FoldLaws returns the homomorphism law of f.
func FoldLaws[S, A any](name string, f optics.Fold[S, A], whole *rapid.Generator[S], eq Eq[A]) []Law {
	return []Law{
		NewLaw(CodeFold, name+"/fold-homomorphism", whole, func(s S) *Violation {
			return FoldHomomorphism(f, s, eq)
		}),
	}
}

// ComposeAssociative checks that (o1∘o2)∘o3 and o1∘(o2∘o3) agree on
// GetAll and Modify. The optics are composed with optics.Compose, so any
// mix of writable kinds is accepted.
func ComposeAssociative[S, A, B, C any](name string, o1 optics.Optic[S, A], o2 optics.Optic[A, B], o3 optics.Optic[B, C], fx Fixture[S, C]) (Law, error) {
	o12, err := optics.Compose(o1, o2)
	if err != nil {
		return Law{}, err
	}
	left, err := optics.Compose(o12, o3)
	if err != nil {
		return Law{}, err
	}
	o23, err := optics.Compose(o2, o3)
	if err != nil {
		return Law{}, err
	}
	right, err := optics.Compose(o1, o23)
	if err != nil {
		return Law{}, err
	}
	lt, lok := optics.WidenTraversal(left)
	rt, rok := optics.WidenTraversal(right)
	if !lok || !rok {
		return Law{}, optics.ErrKindMismatch
	}
	return NewLaw(CodeCompose, name+"/associativity", gen2(fx.Whole, fx.endo()), func(in input2[S, func(C) C]) *Violation {
		if l, r := lt.GetAll(in.x), rt.GetAll(in.x); !sliceEqual(l, r, fx.EqFocus) {
			return NewViolation(CodeCompose, "associativity", "groupings read different foci").
				WithDetail("whole", in.x).WithDetail("left", l).WithDetail("right", r)
		}
		if l, r := lt.Modify(in.x, in.y), rt.Modify(in.x, in.y); !fx.EqWhole.equal(l, r) {
			return NewViolation(CodeCompose, "associativity", "groupings wrote different wholes").
				WithDetail("whole", in.x).WithDetail("left", l).WithDetail("right", r)
		}
		return nil
	}), nil
}

func sliceEqual[A any](a, b []A, eq Eq[A]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq.equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
