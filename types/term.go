package types

import (
	"github.com/cottand/streamtype/pos"
)

// Type is a node of a type term.
//
// Pos is only used for diagnostics and may be nil. Callers must Deref a Type
// before inspecting its Descr, since the node may be a linked variable cell.
type Type struct {
	Pos   *pos.Range
	Descr Descr
}

// Descr is the shape of a Type. The set of shapes is fixed: new kinds of types
// are added through Custom rather than through new Descr implementations.
type Descr interface {
	isDescr()
}

var (
	_ Descr = (*Cell)(nil)
	_ Descr = (*Constr)(nil)
	_ Descr = (*Getter)(nil)
	_ Descr = (*List)(nil)
	_ Descr = (*Tuple)(nil)
	_ Descr = (*Nullable)(nil)
	_ Descr = (*Arrow)(nil)
	_ Descr = (*Meth)(nil)
	_ Descr = (*Custom)(nil)
)

func (*Cell) isDescr()     {}
func (*Constr) isDescr()   {}
func (*Getter) isDescr()   {}
func (*List) isDescr()     {}
func (*Tuple) isDescr()    {}
func (*Nullable) isDescr() {}
func (*Arrow) isDescr()    {}
func (*Meth) isDescr()     {}
func (*Custom) isDescr()   {}

// Variance of a constructor parameter or of a link
type Variance int

const (
	Covariant Variance = iota
	Invariant
)

func (v Variance) String() string {
	if v == Invariant {
		return "invariant"
	}
	return "covariant"
}

// Param is an argument of a constructor application
type Param struct {
	Variance Variance
	Type     *Type
}

// Constr is a nominal constructor application, like `source(audio=pcm)`
type Constr struct {
	Name   string
	Params []Param
}

// Getter is either a value of type Type or a function with no arguments
// producing one
type Getter struct {
	Type *Type
}

// ListRepr tells how a list is represented when exported as JSON
type ListRepr int

const (
	ListAsArray ListRepr = iota
	// ListAsObject is used for association lists with string keys
	ListAsObject
)

// List is a homogeneous list
type List struct {
	Elem *Type
	Repr ListRepr
}

// Tuple with a known number of components. The empty tuple is the unit type.
type Tuple struct {
	Elems []*Type
}

type Nullable struct {
	Type *Type
}

// Arg is an argument of an Arrow. Label is "" for positional arguments.
type Arg struct {
	Optional bool
	Label    string
	Type     *Type
}

type Arrow struct {
	Args []Arg
	Ret  *Type
}

// Method is a named field layered on top of a type
type Method struct {
	Name     string
	Optional bool
	Scheme   Scheme
	Doc      string
	// JSONName is the name used when exporting the field, "" to use Name
	JSONName string
}

// Meth adds Meth to Inner. Layers with the same name shadow inner ones.
type Meth struct {
	Meth  Method
	Inner *Type
}

// Custom holds a type whose behaviour is supplied by a CustomType
type Custom struct {
	Handler CustomType
}

// Make builds a node from a description and an optional position
func Make(p *pos.Range, d Descr) *Type {
	return &Type{Pos: p, Descr: d}
}

func MakeConstr(name string, params ...Param) *Type {
	return Make(nil, &Constr{Name: name, Params: params})
}

func MakeGetter(t *Type) *Type {
	return Make(nil, &Getter{Type: t})
}

func MakeList(elem *Type) *Type {
	return Make(nil, &List{Elem: elem})
}

func MakeTuple(elems ...*Type) *Type {
	return Make(nil, &Tuple{Elems: elems})
}

// MakeUnit returns the empty tuple
func MakeUnit() *Type {
	return Make(nil, &Tuple{})
}

func MakeNullable(t *Type) *Type {
	return Make(nil, &Nullable{Type: t})
}

func MakeArrow(args []Arg, ret *Type) *Type {
	return Make(nil, &Arrow{Args: args, Ret: ret})
}

func MakeCustom(handler CustomType) *Type {
	return Make(nil, &Custom{Handler: handler})
}

// Deref follows linked variable cells until it reaches a node which is not a
// link. The chain can be arbitrarily long.
func Deref(t *Type) *Type {
	for {
		cell, ok := t.Descr.(*Cell)
		if !ok || cell.link == nil {
			return t
		}
		t = cell.link.Type
	}
}

// IsUnit is true when t dereferences to the empty tuple
func IsUnit(t *Type) bool {
	tuple, ok := Deref(t).Descr.(*Tuple)
	return ok && len(tuple.Elems) == 0
}

// String renders t with the installed Print hook
func (t *Type) String() string {
	return CurrentHooks().Print(t)
}
