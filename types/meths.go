package types

import (
	"strings"

	"github.com/cottand/streamtype/ilerr"
	"github.com/cottand/streamtype/pos"
	"github.com/cottand/streamtype/util"
	"github.com/hashicorp/go-set/v3"
)

// AddMeth wraps t in a new outer method layer
func AddMeth(t *Type, m Method) *Type {
	return Make(nil, &Meth{Meth: m, Inner: t})
}

// AddMethPath adds leaf at the end of path, threading through the existing
// fields named by path: for path [a, b], field a of t must expose field b,
// and leaf is added to the type of b. Every intermediate field is re-added
// on top of its parent with the updated type.
func AddMethPath(t *Type, path []string, leaf Method) (*Type, error) {
	if len(path) == 0 {
		return AddMeth(t, leaf), nil
	}
	field, ok := findMeth(t, path[0])
	if !ok {
		return nil, notFound(t, path[0])
	}
	inner, err := AddMethPath(field.Scheme.Type, path[1:], leaf)
	if err != nil {
		return nil, err
	}
	field.Scheme = Scheme{Vars: field.Scheme.Vars, Type: inner}
	return AddMeth(t, field), nil
}

// Demeth removes the outer chain of method layers, dereferencing each layer
func Demeth(t *Type) *Type {
	for {
		t = Deref(t)
		meth, ok := t.Descr.(*Meth)
		if !ok {
			return t
		}
		t = meth.Inner
	}
}

// DeepDemeth removes the outer method layers at every position reachable
// through the structure of t. The scheme of a method is never entered.
// The result keeps the position of t.
func DeepDemeth(t *Type) *Type {
	var descr Descr
	switch d := Demeth(t).Descr.(type) {
	case *Constr:
		params := make([]Param, len(d.Params))
		for i, p := range d.Params {
			params[i] = Param{Variance: p.Variance, Type: DeepDemeth(p.Type)}
		}
		descr = &Constr{Name: d.Name, Params: params}
	case *Getter:
		descr = &Getter{Type: DeepDemeth(d.Type)}
	case *List:
		descr = &List{Elem: DeepDemeth(d.Elem), Repr: d.Repr}
	case *Tuple:
		elems := make([]*Type, len(d.Elems))
		for i, elem := range d.Elems {
			elems[i] = DeepDemeth(elem)
		}
		descr = &Tuple{Elems: elems}
	case *Nullable:
		descr = &Nullable{Type: DeepDemeth(d.Type)}
	case *Arrow:
		args := make([]Arg, len(d.Args))
		for i, arg := range d.Args {
			args[i] = Arg{Optional: arg.Optional, Label: arg.Label, Type: DeepDemeth(arg.Type)}
		}
		descr = &Arrow{Args: args, Ret: DeepDemeth(d.Ret)}
	default:
		// free variables and custom types are shared
		descr = d
	}
	return Make(t.Pos, descr)
}

// FilterMeths removes the outer method layers whose name is excluded,
// keeping the order of the remaining ones
func FilterMeths(t *Type, exclude func(name string) bool) *Type {
	d := Deref(t)
	meth, ok := d.Descr.(*Meth)
	if !ok {
		return t
	}
	inner := FilterMeths(meth.Inner, exclude)
	if exclude(meth.Meth.Name) {
		return inner
	}
	return Make(d.Pos, &Meth{Meth: meth.Meth, Inner: inner})
}

// Remeth puts the outer method layers of from around base
func Remeth(from, base *Type) *Type {
	d := Deref(from)
	meth, ok := d.Descr.(*Meth)
	if !ok {
		return base
	}
	return Make(d.Pos, &Meth{Meth: meth.Meth, Inner: Remeth(meth.Inner, base)})
}

// SplitMeths returns the visible outer methods of t, outermost first, and
// the type they are layered on. A method shadowed by an outer one of the same
// name is dropped.
func SplitMeths(t *Type) ([]Method, *Type) {
	var meths []Method
	seen := set.New[string](0)
	for {
		t = Deref(t)
		meth, ok := t.Descr.(*Meth)
		if !ok {
			return meths, t
		}
		if seen.Insert(meth.Meth.Name) {
			meths = append(meths, meth.Meth)
		}
		t = meth.Inner
	}
}

// FoldMeths layers meths on base so that meths[0] ends up outermost.
// It is the inverse of SplitMeths.
func FoldMeths(meths []Method, base *Type) *Type {
	for m := range util.Reverse(meths) {
		base = AddMeth(base, m)
	}
	return base
}

func findMeth(t *Type, name string) (Method, bool) {
	for {
		t = Deref(t)
		meth, ok := t.Descr.(*Meth)
		if !ok {
			return Method{}, false
		}
		if meth.Meth.Name == name {
			return meth.Meth, true
		}
		t = meth.Inner
	}
}

func notFound(t *Type, name string) ilerr.IleError {
	return ilerr.New(ilerr.NewNotFound{Range: pos.RangeOf(t.Pos), Name: name, Where: "method"})
}

// InvokeMeth returns the scheme of the outermost method called name
func InvokeMeth(t *Type, name string) (Scheme, error) {
	m, ok := findMeth(t, name)
	if !ok {
		return Scheme{}, notFound(t, name)
	}
	return m.Scheme, nil
}

// InvokePath looks up each element of path in the type of the previous one
func InvokePath(t *Type, path []string) (Scheme, error) {
	s := Mono(t)
	for _, name := range path {
		var err error
		if s, err = InvokeMeth(s.Type, name); err != nil {
			return Scheme{}, err
		}
	}
	return s, nil
}

// SplitPath splits a dotted path like "a.b.c"
func SplitPath(path string) []string {
	return strings.Split(path, ".")
}

func HasMeth(t *Type, name string) bool {
	_, ok := findMeth(t, name)
	return ok
}
