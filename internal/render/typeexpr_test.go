// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/api2lua/api2lua/pkg/types"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		input    types.TypeExpr
		expected string
	}{
		{"nil", nil, "any"},
		{"name", types.Name("string"), "string"},
		{"reference", types.Name("LuaEntity"), "LuaEntity"},
		{"array", types.Array(types.Name("uint")), "uint[]"},
		{"nested array", types.Array(types.Array(types.Name("double"))), "double[][]"},
		{"dictionary", types.Dictionary(types.Name("string"), types.Name("LuaEntity")), "table<string, LuaEntity>"},
		{"tuple", types.Tuple(types.Name("double"), types.Name("double")), "tuple<double, double>"},
		{"union", types.Union(types.Name("string"), types.Name("LuaItemStack")), "string | LuaItemStack"},
		{
			"union nested in union is flattened textually",
			types.Union(types.Name("a"), types.Union(types.Name("b"), types.Name("c"))),
			"a | b | c",
		},
		{
			"union inside array is not parenthesized",
			types.Array(types.Union(types.Name("int"), types.Name("string"))),
			"int | string[]",
		},
		{
			"dictionary of union",
			types.Dictionary(types.Name("string"), types.Union(types.Name("int"), types.Name("boolean"))),
			"table<string, int | boolean>",
		},
		{"alias is transparent", types.Alias(types.Name("MapPosition")), "MapPosition"},
		{
			"alias of array",
			&types.AliasType{Inner: types.Array(types.Name("Color")), Description: "ignored"},
			"Color[]",
		},
		{"string literal", types.Literal("foo"), `string """foo"`},
		{
			"string literal with description",
			&types.LiteralType{Value: "foo", Description: "the foo mode"},
			`string """the foo mode"`,
		},
		{"number literal", types.Literal(5.0), "number"},
		{"integer literal", types.Literal(5), "number"},
		{
			"number literal with description",
			&types.LiteralType{Value: 5.0, Description: "tick count"},
			"number tick count",
		},
		{"boolean literal", types.Literal(true), "boolean"},
		{
			"boolean literal with description",
			&types.LiteralType{Value: false, Description: "disabled"},
			"boolean disabled",
		},
		{"null literal", types.Literal(nil), "any"},
		{"null literal ignores description", &types.LiteralType{Description: "nothing"}, "any"},
		{
			"union of literals",
			types.Union(types.Literal("left"), types.Literal("right")),
			`string """left" | string """right"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.input))
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	build := func() types.TypeExpr {
		return types.Dictionary(
			types.Name("string"),
			types.Tuple(types.Array(types.Name("uint")), types.Union(types.Literal("a"), types.Name("nil"))),
		)
	}

	first := Render(build())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Render(build()))
	}
	assert.Equal(t, `table<string, tuple<uint[], string """a" | nil>>`, first)
}

func TestRender_Composition(t *testing.T) {
	leaves := []types.TypeExpr{
		types.Name("string"),
		types.Literal(3.0),
		types.Union(types.Name("a"), types.Name("b")),
		types.Dictionary(types.Name("k"), types.Name("v")),
	}

	for _, x := range leaves {
		assert.Equal(t, Render(x)+"[]", Render(types.Array(x)))
		assert.Equal(t, "table<"+Render(x)+", "+Render(x)+">", Render(types.Dictionary(x, x)))
		assert.Equal(t, Render(x)+" | "+Render(x), Render(types.Union(x, x)))
		assert.Equal(t, Render(x), Render(types.Alias(x)))
	}
}
