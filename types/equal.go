package types

// Isomorphic is true when a and b have the same structure up to a renaming
// of their free variables. Renamed variables must carry the same constraint
// kinds. Positions are ignored.
func Isomorphic(a, b *Type) bool {
	iso := &isomorphism{
		forward:  make(map[VarID]VarID),
		backward: make(map[VarID]VarID),
	}
	return iso.types(a, b)
}

type isomorphism struct {
	forward, backward map[VarID]VarID
}

func (iso *isomorphism) vars(a, b *Var) bool {
	fa, okA := iso.forward[a.ID]
	fb, okB := iso.backward[b.ID]
	switch {
	case okA && okB:
		return fa == b.ID && fb == a.ID
	case okA || okB:
		return false
	}
	if a.Constraints.Len() != b.Constraints.Len() {
		return false
	}
	for _, c := range a.Constraints.Slice() {
		if !b.Constraints.Has(c.Kind) {
			return false
		}
	}
	iso.forward[a.ID] = b.ID
	iso.backward[b.ID] = a.ID
	return true
}

func (iso *isomorphism) all(as, bs []*Type) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !iso.types(as[i], bs[i]) {
			return false
		}
	}
	return true
}

func (iso *isomorphism) types(a, b *Type) bool {
	a, b = Deref(a), Deref(b)
	switch da := a.Descr.(type) {
	case *Cell:
		db, ok := b.Descr.(*Cell)
		if !ok {
			return false
		}
		va, _ := da.Free()
		vb, _ := db.Free()
		return iso.vars(va, vb)
	case *Constr:
		db, ok := b.Descr.(*Constr)
		if !ok || da.Name != db.Name || len(da.Params) != len(db.Params) {
			return false
		}
		for i := range da.Params {
			if da.Params[i].Variance != db.Params[i].Variance || !iso.types(da.Params[i].Type, db.Params[i].Type) {
				return false
			}
		}
		return true
	case *Getter:
		db, ok := b.Descr.(*Getter)
		return ok && iso.types(da.Type, db.Type)
	case *List:
		db, ok := b.Descr.(*List)
		return ok && da.Repr == db.Repr && iso.types(da.Elem, db.Elem)
	case *Tuple:
		db, ok := b.Descr.(*Tuple)
		return ok && iso.all(da.Elems, db.Elems)
	case *Nullable:
		db, ok := b.Descr.(*Nullable)
		return ok && iso.types(da.Type, db.Type)
	case *Arrow:
		db, ok := b.Descr.(*Arrow)
		if !ok || len(da.Args) != len(db.Args) {
			return false
		}
		for i := range da.Args {
			argA, argB := da.Args[i], db.Args[i]
			if argA.Optional != argB.Optional || argA.Label != argB.Label || !iso.types(argA.Type, argB.Type) {
				return false
			}
		}
		return iso.types(da.Ret, db.Ret)
	case *Meth:
		db, ok := b.Descr.(*Meth)
		if !ok {
			return false
		}
		ma, mb := da.Meth, db.Meth
		if ma.Name != mb.Name || ma.Optional != mb.Optional || len(ma.Scheme.Vars) != len(mb.Scheme.Vars) {
			return false
		}
		for i := range ma.Scheme.Vars {
			if !iso.vars(ma.Scheme.Vars[i], mb.Scheme.Vars[i]) {
				return false
			}
		}
		return iso.types(ma.Scheme.Type, mb.Scheme.Type) && iso.types(da.Inner, db.Inner)
	case *Custom:
		db, ok := b.Descr.(*Custom)
		if !ok || da.Handler.Name() != db.Handler.Name() {
			return false
		}
		return iso.all(heldTerms(da.Handler), heldTerms(db.Handler))
	}
	return false
}

// heldTerms lists the terms a custom type holds, in the order its
// OccurCheck visits them
func heldTerms(c CustomType) []*Type {
	var held []*Type
	_ = c.OccurCheck(func(t *Type) error {
		held = append(held, t)
		return nil
	})
	return held
}
