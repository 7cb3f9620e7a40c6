package types

import (
	"fmt"
)

// FreshOpts configures a call to Fresh
type FreshOpts struct {
	// Selector picks the free variables to refresh. When nil, every
	// variable is refreshed. Free variables which are not selected are
	// shared with the original term. Variables quantified by a method's
	// scheme follow the selector too.
	Selector func(*Var) bool
	// Level, when set, is given to every variable created by the copy
	// instead of the level of the variable it replaces
	Level *Level
}

// fresher keeps track of the copies made during one call to Fresh, so that
// every occurrence of a variable or of a cell is mapped to the same copy.
// It is mutable and not suitable for concurrent use.
type fresher struct {
	FreshOpts
	vars  map[VarID]*Var
	cells map[*Cell]*Cell
}

// Fresh copies t, giving new identities to the selected free variables.
//
// Sharing is preserved: occurrences of the same variable, or of the same
// cell, in t map to the same variable or cell in the copy. Linked cells are
// always copied. The copy carries no positions.
func Fresh(t *Type, opts FreshOpts) *Type {
	f := &fresher{
		FreshOpts: opts,
		vars:      make(map[VarID]*Var),
		cells:     make(map[*Cell]*Cell),
	}
	return f.freshen(t)
}

func (f *fresher) selected(v *Var) bool {
	return f.Selector == nil || f.Selector(v)
}

func (f *fresher) freshVar(v *Var) *Var {
	if !f.selected(v) {
		return v
	}
	if found, ok := f.vars[v.ID]; ok {
		return found
	}
	level := v.Level
	if f.Level != nil {
		level = *f.Level
	}
	freshV := &Var{ID: nextVarID(), Level: level, Constraints: v.Constraints.Copy()}
	f.vars[v.ID] = freshV
	return freshV
}

func (f *fresher) freshCell(cell *Cell) *Cell {
	if found, ok := f.cells[cell]; ok {
		return found
	}
	if cell.link == nil {
		if !f.selected(cell.free) {
			return cell
		}
		freshC := NewCell(f.freshVar(cell.free))
		f.cells[cell] = freshC
		return freshC
	}
	// cached before recursing so that a cell reachable from its own target
	// maps to the same copy
	freshC := &Cell{}
	f.cells[cell] = freshC
	freshC.link = &Link{Variance: cell.link.Variance, Type: f.freshen(cell.link.Type)}
	return freshC
}

func (f *fresher) freshMethod(m Method) Method {
	vars := make([]*Var, len(m.Scheme.Vars))
	for i, v := range m.Scheme.Vars {
		vars[i] = f.freshVar(v)
	}
	return Method{
		Name:     m.Name,
		Optional: m.Optional,
		Scheme:   Scheme{Vars: vars, Type: f.freshen(m.Scheme.Type)},
		Doc:      m.Doc,
		JSONName: m.JSONName,
	}
}

func (f *fresher) freshen(t *Type) *Type {
	var descr Descr
	switch d := t.Descr.(type) {
	case *Cell:
		descr = f.freshCell(d)
	case *Constr:
		params := make([]Param, len(d.Params))
		for i, p := range d.Params {
			params[i] = Param{Variance: p.Variance, Type: f.freshen(p.Type)}
		}
		descr = &Constr{Name: d.Name, Params: params}
	case *Getter:
		descr = &Getter{Type: f.freshen(d.Type)}
	case *List:
		descr = &List{Elem: f.freshen(d.Elem), Repr: d.Repr}
	case *Tuple:
		elems := make([]*Type, len(d.Elems))
		for i, elem := range d.Elems {
			elems[i] = f.freshen(elem)
		}
		descr = &Tuple{Elems: elems}
	case *Nullable:
		descr = &Nullable{Type: f.freshen(d.Type)}
	case *Meth:
		descr = &Meth{Meth: f.freshMethod(d.Meth), Inner: f.freshen(d.Inner)}
	case *Arrow:
		args := make([]Arg, len(d.Args))
		for i, arg := range d.Args {
			args[i] = Arg{Optional: arg.Optional, Label: arg.Label, Type: f.freshen(arg.Type)}
		}
		descr = &Arrow{Args: args, Ret: f.freshen(d.Ret)}
	case *Custom:
		descr = &Custom{Handler: d.Handler.CopyWith(f.freshen)}
	default:
		panic(fmt.Sprintf("unhandled type description for fresh: %T", t.Descr))
	}
	return Make(nil, descr)
}
