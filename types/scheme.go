package types

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cottand/streamtype/util"
	"github.com/hashicorp/go-set/v3"
)

// Scheme is a type together with the variables which are universally
// quantified in it
type Scheme struct {
	Vars []*Var
	Type *Type
}

// Mono is a scheme without quantified variables
func Mono(t *Type) Scheme {
	return Scheme{Type: t}
}

// Instantiate returns a copy of the body where the quantified variables are
// replaced by fresh variables at level. Everything else is shared.
func (s Scheme) Instantiate(level Level) *Type {
	if len(s.Vars) == 0 {
		return s.Type
	}
	bound := util.SetFromSeq(util.MapIter(slices.Values(s.Vars), func(v *Var) VarID { return v.ID }), len(s.Vars))
	return Fresh(s.Type, FreshOpts{
		Selector: func(v *Var) bool { return bound.Contains(v.ID) },
		Level:    &level,
	})
}

func (s Scheme) String() string {
	if len(s.Vars) == 0 {
		return s.Type.String()
	}
	return fmt.Sprintf("forall %v. %v", s.Vars, s.Type)
}

// Generalize quantifies the free variables of t which were introduced deeper
// than level, see "Efficient Generalization with Levels" (Oleg Kiselyov)
func Generalize(level Level, t *Type) Scheme {
	var vars []*Var
	for _, v := range FreeVars(t) {
		if v.Level.Above(level) {
			vars = append(vars, v)
		}
	}
	return Scheme{Vars: vars, Type: t}
}

// FreeVars returns the free variables of t in order of first occurrence.
// Variables quantified by a method's scheme are not free in it.
func FreeVars(t *Type) []*Var {
	c := &varCollector{seen: set.New[VarID](0)}
	c.collect(t, nil)
	return c.vars
}

type varCollector struct {
	seen *set.Set[VarID]
	vars []*Var
}

func (c *varCollector) add(v *Var) {
	if c.seen.Insert(v.ID) {
		c.vars = append(c.vars, v)
	}
}

func (c *varCollector) collect(t *Type, bound *set.Set[VarID]) {
	switch d := Deref(t).Descr.(type) {
	case *Cell:
		if v, ok := d.Free(); ok && (bound == nil || !bound.Contains(v.ID)) {
			c.add(v)
		}
	case *Constr:
		for _, p := range d.Params {
			c.collect(p.Type, bound)
		}
	case *Getter:
		c.collect(d.Type, bound)
	case *List:
		c.collect(d.Elem, bound)
	case *Tuple:
		for _, elem := range d.Elems {
			c.collect(elem, bound)
		}
	case *Nullable:
		c.collect(d.Type, bound)
	case *Arrow:
		for _, arg := range d.Args {
			c.collect(arg.Type, bound)
		}
		c.collect(d.Ret, bound)
	case *Meth:
		inScheme := set.New[VarID](len(d.Meth.Scheme.Vars))
		if bound != nil {
			inScheme.InsertSet(bound)
		}
		for _, v := range d.Meth.Scheme.Vars {
			inScheme.Insert(v.ID)
		}
		c.collect(d.Meth.Scheme.Type, inScheme)
		c.collect(d.Inner, bound)
	case *Custom:
		held := d.Handler.FilterVars(func(t *Type) []*Var {
			sub := &varCollector{seen: set.New[VarID](0)}
			sub.collect(t, bound)
			return sub.vars
		})
		for _, v := range held {
			c.add(v)
		}
	}
}

var errOccurs = errors.New("variable occurs in type")

// Occurs is true when the free variable v appears in t
func Occurs(v *Var, t *Type) bool {
	switch d := Deref(t).Descr.(type) {
	case *Cell:
		free, ok := d.Free()
		return ok && free.Equal(v)
	case *Constr:
		for _, p := range d.Params {
			if Occurs(v, p.Type) {
				return true
			}
		}
	case *Getter:
		return Occurs(v, d.Type)
	case *List:
		return Occurs(v, d.Elem)
	case *Tuple:
		for _, elem := range d.Elems {
			if Occurs(v, elem) {
				return true
			}
		}
	case *Nullable:
		return Occurs(v, d.Type)
	case *Arrow:
		for _, arg := range d.Args {
			if Occurs(v, arg.Type) {
				return true
			}
		}
		return Occurs(v, d.Ret)
	case *Meth:
		return Occurs(v, d.Meth.Scheme.Type) || Occurs(v, d.Inner)
	case *Custom:
		err := d.Handler.OccurCheck(func(t *Type) error {
			if Occurs(v, t) {
				return errOccurs
			}
			return nil
		})
		return errors.Is(err, errOccurs)
	}
	return false
}
