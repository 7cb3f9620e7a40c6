package types

import (
	"strconv"
	"sync/atomic"

	"github.com/cottand/streamtype/pos"
)

type VarID = uint64

// lastVarID is the only source of variable identities in the process
var lastVarID atomic.Uint64

func nextVarID() VarID {
	return lastVarID.Add(1)
}

// Level is the lexical nesting depth at which a variable was introduced.
// The zero value is Unbounded: the variable has not been fixed to a scope yet.
type Level struct {
	n       int
	bounded bool
}

var Unbounded = Level{}

func AtLevel(n int) Level {
	return Level{n: n, bounded: true}
}

// Value returns the depth, and false for Unbounded
func (l Level) Value() (int, bool) {
	return l.n, l.bounded
}

// Above is l > other, where Unbounded is above every bounded level
func (l Level) Above(other Level) bool {
	switch {
	case !l.bounded:
		return other.bounded
	case !other.bounded:
		return false
	default:
		return l.n > other.n
	}
}

func (l Level) Min(other Level) Level {
	if l.Above(other) {
		return other
	}
	return l
}

func (l Level) String() string {
	if !l.bounded {
		return "∞"
	}
	return strconv.Itoa(l.n)
}

// Var is a free type variable.
// Invariant: ID is unique in the process; two Var are the same variable iff
// their IDs are equal.
//
// Construct with NewVar
type Var struct {
	ID          VarID
	Level       Level
	Constraints *Constraints
}

func NewVar(level Level, constraints ...*Constraint) *Var {
	return &Var{
		ID:          nextVarID(),
		Level:       level,
		Constraints: NewConstraints(constraints...),
	}
}

func (v *Var) Equal(other *Var) bool {
	return v.ID == other.ID
}

// LowerLevel makes v visible at level l if it currently sits deeper
func (v *Var) LowerLevel(l Level) {
	v.Level = v.Level.Min(l)
}

func (v *Var) String() string {
	return "_" + strconv.FormatUint(v.ID, 10)
}

// Link is the content of a resolved cell
type Link struct {
	Variance Variance
	Type     *Type
}

// Cell is a mutable variable occurrence. It is free (holds a Var) until the
// unifier links it to another type; a linked cell is never unlinked.
type Cell struct {
	free *Var
	link *Link
}

func NewCell(v *Var) *Cell {
	return &Cell{free: v}
}

// Free returns the variable of a free cell
func (c *Cell) Free() (*Var, bool) {
	return c.free, c.link == nil
}

// Link returns the target of a linked cell
func (c *Cell) Link() (Link, bool) {
	if c.link == nil {
		return Link{}, false
	}
	return *c.link, true
}

func (c *Cell) IsLinked() bool { return c.link != nil }

// SetLink destructively resolves c to t
func (c *Cell) SetLink(variance Variance, t *Type) {
	if c.link != nil {
		panic("cannot link an already linked type variable cell")
	}
	c.link = &Link{Variance: variance, Type: t}
	c.free = nil
}

// MakeVar allocates a new variable in a new cell
func MakeVar(p *pos.Range, level Level, constraints ...*Constraint) *Type {
	return Make(p, NewCell(NewVar(level, constraints...)))
}

// FreeVarOf returns the variable of t when it dereferences to a free cell
func FreeVarOf(t *Type) (*Var, bool) {
	cell, ok := Deref(t).Descr.(*Cell)
	if !ok {
		return nil, false
	}
	return cell.Free()
}
