package optics

import (
	"errors"
	"fmt"
)

// Kind identifies one of the eight optic kinds.
type Kind uint8

// Optic kinds, strongest first.
const (
	KindIso Kind = iota
	KindLens
	KindPrism
	KindOptional
	KindTraversal
	KindGetter
	KindSetter
	KindFold
)

var kindNames = [...]string{
	KindIso:       "Iso",
	KindLens:      "Lens",
	KindPrism:     "Prism",
	KindOptional:  "Optional",
	KindTraversal: "Traversal",
	KindGetter:    "Getter",
	KindSetter:    "Setter",
	KindFold:      "Fold",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

type kindSet uint8

func setOf(kinds ...Kind) kindSet {
	var s kindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

// widensTo lists, per kind, every kind it converts into without loss,
// itself included.
var widensTo = [...]kindSet{
	KindIso:       setOf(KindIso, KindLens, KindPrism, KindOptional, KindTraversal, KindGetter, KindSetter, KindFold),
	KindLens:      setOf(KindLens, KindOptional, KindTraversal, KindGetter, KindSetter, KindFold),
	KindPrism:     setOf(KindPrism, KindOptional, KindTraversal, KindSetter, KindFold),
	KindOptional:  setOf(KindOptional, KindTraversal, KindSetter, KindFold),
	KindTraversal: setOf(KindTraversal, KindSetter, KindFold),
	KindGetter:    setOf(KindGetter, KindFold),
	KindSetter:    setOf(KindSetter),
	KindFold:      setOf(KindFold),
}

// WidensTo reports whether an optic of kind k can be used as kind target.
func (k Kind) WidensTo(target Kind) bool {
	return int(k) < len(widensTo) && widensTo[k]&(1<<target) != 0
}

// CanRead reports whether k reads its foci.
func (k Kind) CanRead() bool { return k.WidensTo(KindFold) }

// CanWrite reports whether k rewrites its foci.
func (k Kind) CanWrite() bool { return k.WidensTo(KindSetter) }

// Meet returns the strongest kind both k1 and k2 widen to. It reports
// false only when one side is read-only and the other write-only.
func Meet(k1, k2 Kind) (Kind, bool) {
	if int(k1) >= len(widensTo) || int(k2) >= len(widensTo) {
		return 0, false
	}
	common := widensTo[k1] & widensTo[k2]
	for k := KindIso; k <= KindFold; k++ {
		if common&(1<<k) != 0 {
			return k, true
		}
	}
	return 0, false
}

// Optic is implemented by the eight optic structs of this package and by
// nothing else. The unexported method ties S and A to the value, so an
// optic of the wrong types does not compile where an Optic[S, A] is expected.
type Optic[S, A any] interface {
	Kind() Kind
	optic(S, A)
}

var (
	// ErrNoCommonKind is returned when composing a read-only optic with a
	// write-only one.
	ErrNoCommonKind = errors.New("optics: no common optic kind")
	// ErrKindMismatch is returned when a composed optic cannot be used as the
	// kind an operation requires, e.g. a Fold where a Traversal is needed.
	ErrKindMismatch = errors.New("optics: optic kind cannot serve the required kind")
)

// WidenFold converts o to a Fold when its kind allows it.
func WidenFold[S, A any](o Optic[S, A]) (Fold[S, A], bool) {
	w, ok := o.(interface{ AsFold() Fold[S, A] })
	if !ok {
		return Fold[S, A]{}, false
	}
	return w.AsFold(), true
}

// WidenSetter converts o to a Setter when its kind allows it.
func WidenSetter[S, A any](o Optic[S, A]) (Setter[S, A], bool) {
	w, ok := o.(interface{ AsSetter() Setter[S, A] })
	if !ok {
		return Setter[S, A]{}, false
	}
	return w.AsSetter(), true
}

// WidenGetter converts o to a Getter when its kind allows it.
func WidenGetter[S, A any](o Optic[S, A]) (Getter[S, A], bool) {
	w, ok := o.(interface{ AsGetter() Getter[S, A] })
	if !ok {
		return Getter[S, A]{}, false
	}
	return w.AsGetter(), true
}

// WidenTraversal converts o to a Traversal when its kind allows it.
func WidenTraversal[S, A any](o Optic[S, A]) (Traversal[S, A], bool) {
	w, ok := o.(interface{ AsTraversal() Traversal[S, A] })
	if !ok {
		return Traversal[S, A]{}, false
	}
	return w.AsTraversal(), true
}

// WidenOptional converts o to an Optional when its kind allows it.
func WidenOptional[S, A any](o Optic[S, A]) (Optional[S, A], bool) {
	w, ok := o.(interface{ AsOptional() Optional[S, A] })
	if !ok {
		return Optional[S, A]{}, false
	}
	return w.AsOptional(), true
}

// WidenLens converts o to a Lens when its kind allows it.
func WidenLens[S, A any](o Optic[S, A]) (Lens[S, A], bool) {
	w, ok := o.(interface{ AsLens() Lens[S, A] })
	if !ok {
		return Lens[S, A]{}, false
	}
	return w.AsLens(), true
}

// WidenPrism converts o to a Prism when its kind allows it.
func WidenPrism[S, A any](o Optic[S, A]) (Prism[S, A], bool) {
	w, ok := o.(interface{ AsPrism() Prism[S, A] })
	if !ok {
		return Prism[S, A]{}, false
	}
	return w.AsPrism(), true
}

// WidenIso returns o as an Iso when it is one.
func WidenIso[S, A any](o Optic[S, A]) (Iso[S, A], bool) {
	w, ok := o.(interface{ AsIso() Iso[S, A] })
	if !ok {
		return Iso[S, A]{}, false
	}
	return w.AsIso(), true
}

// Compose focuses inner through outer. Both optics are widened to the
// strongest kind they share (see Meet) and composed with that kind's rule:
//
//	Iso∘X = X            Lens∘Lens = Lens      Prism∘Prism = Prism
//	Lens∘Prism = Optional                      Prism∘Lens = Optional
//	X∘Traversal = Traversal (X writable)       Getter∘Lens = Getter
//	read-only∘read = Fold                      write∘write = Setter
//
// The concrete type of the result is one of the optic structs of this
// package; use a type switch or the Widen functions to recover it.
func Compose[S, A, B any](outer Optic[S, A], inner Optic[A, B]) (Optic[S, B], error) {
	kind, ok := Meet(outer.Kind(), inner.Kind())
	if !ok {
		return nil, fmt.Errorf("%w: %s with %s", ErrNoCommonKind, outer.Kind(), inner.Kind())
	}
	mismatch := fmt.Errorf("%w: composing %s with %s as %s", ErrKindMismatch, outer.Kind(), inner.Kind(), kind)

	switch kind {
	case KindIso:
		o, ok1 := WidenIso(outer)
		i, ok2 := WidenIso(inner)
		if ok1 && ok2 {
			return ComposeIso(o, i), nil
		}
	case KindLens:
		o, ok1 := WidenLens(outer)
		i, ok2 := WidenLens(inner)
		if ok1 && ok2 {
			return ComposeLens(o, i), nil
		}
	case KindPrism:
		o, ok1 := WidenPrism(outer)
		i, ok2 := WidenPrism(inner)
		if ok1 && ok2 {
			return ComposePrism(o, i), nil
		}
	case KindOptional:
		o, ok1 := WidenOptional(outer)
		i, ok2 := WidenOptional(inner)
		if ok1 && ok2 {
			return ComposeOptional(o, i), nil
		}
	case KindTraversal:
		o, ok1 := WidenTraversal(outer)
		i, ok2 := WidenTraversal(inner)
		if ok1 && ok2 {
			return ComposeTraversal(o, i), nil
		}
	case KindGetter:
		o, ok1 := WidenGetter(outer)
		i, ok2 := WidenGetter(inner)
		if ok1 && ok2 {
			return ComposeGetter(o, i), nil
		}
	case KindSetter:
		o, ok1 := WidenSetter(outer)
		i, ok2 := WidenSetter(inner)
		if ok1 && ok2 {
			return ComposeSetter(o, i), nil
		}
	case KindFold:
		o, ok1 := WidenFold(outer)
		i, ok2 := WidenFold(inner)
		if ok1 && ok2 {
			return ComposeFold(o, i), nil
		}
	}
	return nil, mismatch
}

// MustCompose is Compose for pairs known to share a kind. It panics otherwise.
func MustCompose[S, A, B any](outer Optic[S, A], inner Optic[A, B]) Optic[S, B] {
	o, err := Compose(outer, inner)
	if err != nil {
		panic(err)
	}
	return o
}
