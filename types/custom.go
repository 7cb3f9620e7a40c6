package types

import (
	"github.com/cottand/streamtype/ilerr"
)

// CustomType supplies the behaviour of a type which is not one of the core
// shapes. The callbacks receive the core operations they need to recurse
// into the terms the custom type holds.
//
// Subtype and Sup return an ilerr.Unimplemented error when they have no rule
// for other, so the caller can apply its default policy.
type CustomType interface {
	Name() string
	// CopyWith returns a copy where every held term t is replaced by copy(t)
	CopyWith(copy func(*Type) *Type) CustomType
	// OccurCheck calls check on every held term and stops at the first error
	OccurCheck(check func(*Type) error) error
	// FilterVars collects the free variables of the held terms
	FilterVars(vars func(*Type) []*Var) []*Var
	// Repr renders the type structurally, using render for held terms
	Repr(render func(*Type) string) string
	Subtype(subtype func(a, b *Type) error, other CustomType) error
	Sup(sup func(a, b *Type) (*Type, error), other CustomType) (CustomType, error)
	String() string
}

// Unimplemented can be embedded in a CustomType which holds no terms and has
// no subtyping rules of its own
type Unimplemented struct{}

func (Unimplemented) OccurCheck(func(*Type) error) error    { return nil }
func (Unimplemented) FilterVars(func(*Type) []*Var) []*Var { return nil }

func (Unimplemented) Subtype(_ func(a, b *Type) error, other CustomType) error {
	return ilerr.New(ilerr.NewUnimplemented{Op: "subtype", Type: other.Name()})
}

func (Unimplemented) Sup(_ func(a, b *Type) (*Type, error), other CustomType) (CustomType, error) {
	return nil, ilerr.New(ilerr.NewUnimplemented{Op: "sup", Type: other.Name()})
}

const (
	GroundInt    = "int"
	GroundFloat  = "float"
	GroundString = "string"
	GroundBool   = "bool"
)

var groundNames = []string{GroundInt, GroundFloat, GroundString, GroundBool}

// Ground is a custom type without parameters, identified by its name
type Ground struct {
	Unimplemented
	name string
}

var _ CustomType = Ground{}

func NewGround(name string) Ground { return Ground{name: name} }

func MakeGround(name string) *Type { return MakeCustom(NewGround(name)) }

func (g Ground) Name() string                          { return g.name }
func (g Ground) String() string                        { return g.name }
func (g Ground) CopyWith(func(*Type) *Type) CustomType { return g }
func (g Ground) Repr(func(*Type) string) string        { return g.name }

func (g Ground) Subtype(subtype func(a, b *Type) error, other CustomType) error {
	if o, ok := other.(Ground); ok && o.name == g.name {
		return nil
	}
	return g.Unimplemented.Subtype(subtype, other)
}

func (g Ground) Sup(sup func(a, b *Type) (*Type, error), other CustomType) (CustomType, error) {
	if o, ok := other.(Ground); ok && o.name == g.name {
		return g, nil
	}
	return g.Unimplemented.Sup(sup, other)
}

// IsGround is true when t dereferences to one of the named ground types.
// With no names, any ground type matches.
func IsGround(t *Type, names ...string) bool {
	custom, ok := Deref(t).Descr.(*Custom)
	if !ok {
		return false
	}
	g, ok := custom.Handler.(Ground)
	if !ok {
		return false
	}
	if len(names) == 0 {
		return true
	}
	for _, name := range names {
		if g.name == name {
			return true
		}
	}
	return false
}
