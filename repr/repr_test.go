package repr_test

import (
	"testing"

	"github.com/cottand/streamtype/repr"
	"github.com/cottand/streamtype/types"
	"github.com/stretchr/testify/assert"
)

func TestStringStructural(t *testing.T) {
	tests := []struct {
		name     string
		typ      *types.Type
		expected string
	}{
		{"unit", types.MakeUnit(), "unit"},
		{"ground", types.MakeGround(types.GroundInt), "int"},
		{"constructor", types.MakeConstr("source", types.Param{Type: types.MakeGround(types.GroundFloat)}), "source(float)"},
		{"nullary constructor", types.MakeConstr("format"), "format"},
		{"getter", types.MakeGetter(types.MakeGround(types.GroundFloat)), "{float}"},
		{"list", types.MakeList(types.MakeGround(types.GroundString)), "[string]"},
		{"tuple", types.MakeTuple(types.MakeGround(types.GroundInt), types.MakeGround(types.GroundBool)), "(int * bool)"},
		{"nullable", types.MakeNullable(types.MakeGround(types.GroundInt)), "int?"},
		{
			"arrow",
			types.MakeArrow([]types.Arg{
				{Optional: true, Label: "id", Type: types.MakeNullable(types.MakeGround(types.GroundString))},
				{Type: types.MakeGround(types.GroundInt)},
			}, types.MakeUnit()),
			"(?id : string?, int) -> unit",
		},
		{
			"record",
			types.AddMeth(
				types.AddMeth(types.MakeUnit(), types.Method{Name: "b", Optional: true, Scheme: types.Mono(types.MakeGround(types.GroundInt))}),
				types.Method{Name: "a", Scheme: types.Mono(types.MakeGround(types.GroundString))},
			),
			"{a : string, b? : int}",
		},
		{
			"methods over a ground",
			types.AddMeth(types.MakeGround(types.GroundInt), types.Method{Name: "a", Scheme: types.Mono(types.MakeUnit())}),
			"int.{a : unit}",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, repr.String(test.typ))
		})
	}
}

func TestStringNamesVariables(t *testing.T) {
	a := types.MakeVar(nil, types.AtLevel(1))
	b := types.MakeVar(nil, types.AtLevel(1), types.Ord, types.Num)
	arrow := types.MakeArrow([]types.Arg{{Type: a}, {Type: b}, {Type: a}}, b)

	assert.Equal(t, "('a, 'b, 'a) -> 'b where 'b is a number type and an orderable type", repr.String(arrow))
}

func TestStringFollowsLinks(t *testing.T) {
	v := types.MakeVar(nil, types.AtLevel(0))
	cell := v.Descr.(*types.Cell)
	cell.SetLink(types.Covariant, types.MakeGround(types.GroundBool))

	assert.Equal(t, "[bool]", repr.String(types.MakeList(v)))
}

func TestScheme(t *testing.T) {
	v := types.NewVar(types.AtLevel(2), types.Ord)
	body := types.Make(nil, types.NewCell(v))
	s := types.Scheme{Vars: []*types.Var{v}, Type: types.MakeArrow([]types.Arg{{Type: body}, {Type: body}}, types.MakeGround(types.GroundBool))}

	assert.Equal(t, "('a, 'a) -> bool where 'a is an orderable type", repr.Scheme(s))
}

func TestInstall(t *testing.T) {
	repr.Install()
	t.Cleanup(types.ResetHooks)

	assert.Equal(t, "[int]", types.MakeList(types.MakeGround(types.GroundInt)).String())
}
