package types

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/cottand/streamtype/ilerr"
	"github.com/cottand/streamtype/pos"
	"github.com/hashicorp/go-set/v3"
)

// ConstraintKind identifies a constraint. New kinds can be declared freely.
type ConstraintKind string

const (
	KindNum    ConstraintKind = "num"
	KindOrd    ConstraintKind = "ord"
	KindRecord ConstraintKind = "record"
)

// Satisfier gives constraints access to the unifier without depending on it.
//
// Subtype asserts a <: b and may link variables as a side effect.
// Satisfies requires t to meet the constraint being checked, recursively.
type Satisfier struct {
	Subtype   func(a, b *Type) error
	Satisfies func(t *Type) error
}

// Constraint is a requirement attached to a type variable
type Constraint struct {
	Kind        ConstraintKind
	Description string
	// Universal is an optional alternative description used when the
	// constraint is shown on a universally quantified variable
	Universal string
	Satisfied func(sat Satisfier, t *Type) error
}

func (c *Constraint) Hash() ConstraintKind { return c.Kind }

func (c *Constraint) String() string { return string(c.Kind) }

// Check runs the constraint against a concrete candidate. Any failure is
// reported as an ilerr.UnsatisfiedConstraint.
func (c *Constraint) Check(sat Satisfier, t *Type) error {
	err := c.Satisfied(sat, t)
	if err == nil || ilerr.Is(err, ilerr.UnsatisfiedConstraint) {
		return err
	}
	return fmt.Errorf("%w: %w", c.unsatisfied(t), err)
}

func (c *Constraint) unsatisfied(t *Type) ilerr.IleError {
	return unsatisfied(c.Kind, c.Description, t)
}

func unsatisfied(kind ConstraintKind, description string, t *Type) ilerr.IleError {
	return ilerr.New(ilerr.NewUnsatisfiedConstraint{
		Range:       pos.RangeOf(t.Pos),
		Kind:        string(kind),
		Description: description,
	})
}

// Constraints is the set of constraints of a variable, deduplicated by kind
type Constraints struct {
	set *set.HashSet[*Constraint, ConstraintKind]
}

func NewConstraints(cs ...*Constraint) *Constraints {
	s := &Constraints{set: set.NewHashSet[*Constraint, ConstraintKind](len(cs))}
	for _, c := range cs {
		s.Add(c)
	}
	return s
}

// Add inserts c unless a constraint of the same kind is present.
// It returns whether c was inserted.
func (s *Constraints) Add(c *Constraint) bool {
	if s.set.Contains(c) {
		return false
	}
	return s.set.Insert(c)
}

func (s *Constraints) Has(kind ConstraintKind) bool {
	return s.set.Contains(&Constraint{Kind: kind})
}

func (s *Constraints) Len() int { return s.set.Size() }

// Slice returns the constraints sorted by kind
func (s *Constraints) Slice() []*Constraint {
	cs := s.set.Slice()
	slices.SortFunc(cs, func(a, b *Constraint) int { return cmp.Compare(a.Kind, b.Kind) })
	return cs
}

func (s *Constraints) Copy() *Constraints {
	return NewConstraints(s.set.Slice()...)
}

const (
	numDescription    = "a number type"
	ordDescription    = "an orderable type"
	recordDescription = "a record type"
)

// Num is satisfied by the int and float ground types. A free variable
// takes the constraint on.
var Num = &Constraint{
	Kind:        KindNum,
	Description: numDescription,
	Universal:   "any number",
}

// Ord is satisfied by ground types and by tuples, lists, nullables and
// records whose components are themselves orderable. A free variable, or the
// free base of an open record, takes the constraint on.
var Ord = &Constraint{
	Kind:        KindOrd,
	Description: ordDescription,
}

// the predicates refer back to their own constraint
func init() {
	Num.Satisfied = satisfiesNum
	Ord.Satisfied = satisfiesOrd
}

func satisfiesNum(_ Satisfier, t *Type) error {
	base := Demeth(t)
	if v, ok := FreeVarOf(base); ok {
		v.Constraints.Add(Num)
		return nil
	}
	if IsGround(base, GroundInt, GroundFloat) {
		return nil
	}
	return unsatisfied(KindNum, numDescription, t)
}

func satisfiesOrd(sat Satisfier, t *Type) error {
	meths, base := SplitMeths(t)
	fields := func() error {
		for _, m := range meths {
			if err := sat.Satisfies(m.Scheme.Type); err != nil {
				return err
			}
		}
		return nil
	}
	switch d := Deref(base).Descr.(type) {
	case *Cell:
		if v, ok := d.Free(); ok {
			v.Constraints.Add(Ord)
			return fields()
		}
	case *Custom:
		if _, ok := d.Handler.(Ground); ok {
			return nil
		}
	case *Tuple:
		if len(d.Elems) == 0 {
			return fields()
		}
		for _, elem := range d.Elems {
			if err := sat.Satisfies(elem); err != nil {
				return err
			}
		}
		return nil
	case *List:
		return sat.Satisfies(d.Elem)
	case *Nullable:
		return sat.Satisfies(d.Type)
	}
	return unsatisfied(KindOrd, ordDescription, t)
}

// Record is satisfied by method chains over unit. An open row (a free
// variable as the base) is forced to unit.
var Record = &Constraint{
	Kind:        KindRecord,
	Description: recordDescription,
	Satisfied: func(sat Satisfier, t *Type) error {
		base := Deref(Demeth(t))
		if IsUnit(base) {
			return nil
		}
		if _, isVar := FreeVarOf(base); isVar {
			return sat.Subtype(base, MakeUnit())
		}
		return unsatisfied(KindRecord, recordDescription, t)
	},
}
