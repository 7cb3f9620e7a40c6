// Package repr renders type terms for diagnostics.
//
// Free variables are named 'a, 'b, ... in order of first appearance, and
// their constraints are listed in a trailing where clause:
//
//	('a, 'a) -> bool where 'a is an orderable type
package repr

import (
	"strconv"
	"strings"

	"github.com/cottand/streamtype/types"
	"github.com/cottand/streamtype/util"
)

// Install makes String the Print hook of the types package
func Install() {
	types.InstallHooks(types.Hooks{Print: String})
}

// String renders t, with a where clause for constrained variables
func String(t *types.Type) string {
	p := newPrinter()
	return p.withConstraints(p.render(t))
}

// Scheme renders s, naming its quantified variables first
func Scheme(s types.Scheme) string {
	p := newPrinter()
	for _, v := range s.Vars {
		p.name(v)
	}
	return p.withConstraints(p.render(s.Type))
}

type printer struct {
	names map[types.VarID]string
	order []*types.Var
}

func newPrinter() *printer {
	return &printer{names: make(map[types.VarID]string)}
}

func varName(i int) string {
	letter := string(rune('a' + i%26))
	if i < 26 {
		return "'" + letter
	}
	return "'" + letter + strconv.Itoa(i/26)
}

func (p *printer) name(v *types.Var) string {
	if name, ok := p.names[v.ID]; ok {
		return name
	}
	name := varName(len(p.order))
	p.names[v.ID] = name
	p.order = append(p.order, v)
	return name
}

func (p *printer) withConstraints(rendered string) string {
	var clauses []string
	for _, v := range p.order {
		cs := v.Constraints.Slice()
		if len(cs) == 0 {
			continue
		}
		descriptions := util.JoinString(cs, " and ", func(c *types.Constraint) string { return c.Description })
		clauses = append(clauses, p.names[v.ID]+" is "+descriptions)
	}
	if len(clauses) == 0 {
		return rendered
	}
	return rendered + " where " + strings.Join(clauses, ", ")
}

func (p *printer) render(t *types.Type) string {
	switch d := types.Deref(t).Descr.(type) {
	case *types.Cell:
		v, _ := d.Free()
		return p.name(v)
	case *types.Constr:
		if len(d.Params) == 0 {
			return d.Name
		}
		return d.Name + "(" + util.JoinString(d.Params, ", ", func(param types.Param) string {
			return p.render(param.Type)
		}) + ")"
	case *types.Getter:
		return "{" + p.render(d.Type) + "}"
	case *types.List:
		if d.Repr == types.ListAsObject {
			return "[" + p.render(d.Elem) + "] as json object"
		}
		return "[" + p.render(d.Elem) + "]"
	case *types.Tuple:
		if len(d.Elems) == 0 {
			return "unit"
		}
		return "(" + util.JoinString(d.Elems, " * ", p.render) + ")"
	case *types.Nullable:
		return p.render(d.Type) + "?"
	case *types.Arrow:
		return "(" + util.JoinString(d.Args, ", ", p.arg) + ") -> " + p.render(d.Ret)
	case *types.Meth:
		return p.meths(t)
	case *types.Custom:
		return d.Handler.Repr(p.render)
	}
	return "?"
}

func (p *printer) arg(arg types.Arg) string {
	rendered := p.render(arg.Type)
	if arg.Label != "" {
		rendered = arg.Label + " : " + rendered
	}
	if arg.Optional {
		rendered = "?" + rendered
	}
	return rendered
}

// meths renders a record as {a : t, b? : u} and methods over another base
// as base.{a : t}
func (p *printer) meths(t *types.Type) string {
	meths, base := types.SplitMeths(t)
	fields := "{" + util.JoinString(meths, ", ", p.field) + "}"
	if types.IsUnit(base) {
		return fields
	}
	return p.render(base) + "." + fields
}

func (p *printer) field(m types.Method) string {
	name := m.Name
	if m.Optional {
		name += "?"
	}
	for _, v := range m.Scheme.Vars {
		p.name(v)
	}
	return name + " : " + p.render(m.Scheme.Type)
}
