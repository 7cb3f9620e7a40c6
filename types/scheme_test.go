package types_test

import (
	"testing"

	"github.com/cottand/streamtype/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstantiateTwice(t *testing.T) {
	v := types.NewVar(types.AtLevel(5), types.Ord)
	node := types.Make(nil, types.NewCell(v))
	s := types.Scheme{Vars: []*types.Var{v}, Type: types.MakeArrow([]types.Arg{{Type: node}}, node)}

	firstType := s.Instantiate(types.AtLevel(1))
	secondType := s.Instantiate(types.AtLevel(1))
	assert.True(t, types.Isomorphic(firstType, secondType))
	first := firstType.Descr.(*types.Arrow)
	second := secondType.Descr.(*types.Arrow)

	firstVar := freeOf(t, first.Args[0].Type)
	secondVar := freeOf(t, second.Args[0].Type)
	assert.Same(t, firstVar, freeOf(t, first.Ret))
	assert.Same(t, secondVar, freeOf(t, second.Ret))
	assert.NotEqual(t, firstVar.ID, secondVar.ID)
	assert.NotEqual(t, v.ID, firstVar.ID)
	assert.NotEqual(t, v.ID, secondVar.ID)

	for _, instance := range []*types.Var{firstVar, secondVar} {
		assert.Equal(t, types.AtLevel(1), instance.Level)
		assert.True(t, instance.Constraints.Has(types.KindOrd))
	}

	// the scheme itself is untouched
	assert.Same(t, v, freeOf(t, node))
	assert.Equal(t, types.AtLevel(5), v.Level)
}

func TestInstantiateMonoAllocatesNothing(t *testing.T) {
	typ := types.MakeList(types.MakeVar(nil, types.AtLevel(0)))

	before := types.NewVar(types.AtLevel(0))
	assert.Same(t, typ, types.Mono(typ).Instantiate(types.AtLevel(3)))
	after := types.NewVar(types.AtLevel(0))

	assert.Equal(t, before.ID+1, after.ID)
}

func TestInstantiateOnlyRefreshesQuantified(t *testing.T) {
	bound := types.NewVar(types.AtLevel(2))
	outer := types.MakeVar(nil, types.AtLevel(0))
	s := types.Scheme{
		Vars: []*types.Var{bound},
		Type: types.MakeTuple(types.Make(nil, types.NewCell(bound)), outer),
	}

	got := s.Instantiate(types.AtLevel(1)).Descr.(*types.Tuple)

	assert.NotEqual(t, bound.ID, freeOf(t, got.Elems[0]).ID)
	assert.Same(t, cellOf(t, outer), cellOf(t, got.Elems[1]))
	assert.Equal(t, types.AtLevel(0), freeOf(t, got.Elems[1]).Level)
}

func TestFreeVars(t *testing.T) {
	a := types.MakeVar(nil, types.AtLevel(1))
	b := types.MakeVar(nil, types.AtLevel(1))
	local := types.NewVar(types.AtLevel(2))
	method := types.Method{
		Name:   "id",
		Scheme: types.Scheme{Vars: []*types.Var{local}, Type: types.MakeArrow([]types.Arg{{Type: types.Make(nil, types.NewCell(local))}}, b)},
	}
	typ := types.AddMeth(types.MakeTuple(b, makePair(a, b), a), method)

	vars := varIDs(types.FreeVars(typ))
	assert.Equal(t, []types.VarID{freeOf(t, b).ID, freeOf(t, a).ID}, vars)
}

func varIDs(vars []*types.Var) []types.VarID {
	ids := make([]types.VarID, len(vars))
	for i, v := range vars {
		ids[i] = v.ID
	}
	return ids
}

func TestGeneralize(t *testing.T) {
	inner := types.MakeVar(nil, types.AtLevel(2))
	outer := types.MakeVar(nil, types.AtLevel(1))
	unbounded := types.MakeVar(nil, types.Unbounded)
	typ := types.MakeArrow([]types.Arg{{Type: inner}, {Type: outer}}, unbounded)

	s := types.Generalize(types.AtLevel(1), typ)
	assert.Same(t, typ, s.Type)
	assert.Equal(t, []types.VarID{freeOf(t, inner).ID, freeOf(t, unbounded).ID}, varIDs(s.Vars))

	instance := s.Instantiate(types.AtLevel(1)).Descr.(*types.Arrow)
	assert.Same(t, cellOf(t, outer), cellOf(t, instance.Args[1].Type))
	assert.NotEqual(t, freeOf(t, inner).ID, freeOf(t, instance.Args[0].Type).ID)
}

func TestOccurs(t *testing.T) {
	a := types.MakeVar(nil, types.AtLevel(0))
	b := types.MakeVar(nil, types.AtLevel(0))
	va := freeOf(t, a)

	assert.True(t, types.Occurs(va, a))
	assert.True(t, types.Occurs(va, types.MakeList(types.MakeNullable(a))))
	assert.True(t, types.Occurs(va, makePair(b, a)))
	assert.True(t, types.Occurs(va, types.AddMeth(types.MakeUnit(), field("x", a))))
	assert.True(t, types.Occurs(va, types.MakeArrow(nil, linkedTo(a))))
	assert.False(t, types.Occurs(va, types.MakeTuple(b, types.MakeGround(types.GroundInt))))
	assert.False(t, types.Occurs(va, makePair(b, b)))
}

func TestSchemeVarsAreIndependentPerInstance(t *testing.T) {
	v := types.NewVar(types.AtLevel(1))
	s := types.Scheme{Vars: []*types.Var{v}, Type: types.Make(nil, types.NewCell(v))}

	first := s.Instantiate(types.AtLevel(0))
	cellOf(t, first).SetLink(types.Covariant, types.MakeGround(types.GroundInt))
	second := s.Instantiate(types.AtLevel(0))

	_, free := types.FreeVarOf(second)
	require.True(t, free)
	assert.True(t, types.IsGround(first, types.GroundInt))
}
