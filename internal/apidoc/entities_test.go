// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package apidoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api2lua/api2lua/pkg/types"
)

func TestParseMemberBase_Defaults(t *testing.T) {
	c, err := ParseConcept(decodeObject(t, `{"name": "Color"}`))
	require.NoError(t, err)

	assert.Equal(t, "Color", c.Name)
	assert.Equal(t, 0, c.Order)
	assert.Equal(t, "", c.Description)
	assert.Nil(t, c.Lists)
	assert.Nil(t, c.Examples)
	assert.Nil(t, c.Images)
	assert.Nil(t, c.Properties)
	assert.Nil(t, c.Type)
	assert.Empty(t, c.Parent)
}

func TestParseMemberBase_Full(t *testing.T) {
	c, err := ParseConcept(decodeObject(t, `{
		"name": "Color",
		"order": 12,
		"description": "A color.",
		"lists": ["- red", "- green"],
		"examples": ["{r=1, g=0, b=0}"],
		"images": [{"filename": "color.png", "caption": "Colors"}, {"filename": "bare.png"}, "junk"]
	}`))
	require.NoError(t, err)

	assert.Equal(t, 12, c.Order)
	assert.Equal(t, "A color.", c.Description)
	assert.Equal(t, []string{"- red", "- green"}, c.Lists)
	assert.Equal(t, []string{"{r=1, g=0, b=0}"}, c.Examples)
	assert.Equal(t, []types.Image{
		{Filename: "color.png", Caption: "Colors"},
		{Filename: "bare.png"},
	}, c.Images)
}

func TestParseMemberBase_WrongShapeFallsBack(t *testing.T) {
	c, err := ParseConcept(decodeObject(t, `{
		"name": "Color",
		"order": "first",
		"description": 4,
		"lists": "not a list",
		"images": {"filename": "x.png"},
		"properties": "nope"
	}`))
	require.NoError(t, err)

	assert.Equal(t, 0, c.Order)
	assert.Equal(t, "", c.Description)
	assert.Nil(t, c.Lists)
	assert.Nil(t, c.Images)
	assert.Nil(t, c.Properties)
}

func TestParseConcept_MissingName(t *testing.T) {
	_, err := ParseConcept(decodeObject(t, `{"description": "no name"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), `"name"`)
}

func TestParseConcept_Builtin(t *testing.T) {
	c, err := ParseConcept(decodeObject(t, `{"name": "uint", "type": "builtin"}`))
	require.NoError(t, err)

	assert.True(t, c.Builtin)
	assert.Nil(t, c.Type)
}

func TestParseConcept_WrongShapeTypeFallsBack(t *testing.T) {
	for _, src := range []string{
		`{"name": "c", "type": ["x"]}`,
		`{"name": "c", "type": 7}`,
		`{"name": "c", "type": false}`,
	} {
		c, err := ParseConcept(decodeObject(t, src))
		require.NoError(t, err, src)
		assert.Nil(t, c.Type, src)
		assert.False(t, c.Builtin, src)
	}
}

func TestParseConcept_WithTypeAndProperties(t *testing.T) {
	c, err := ParseConcept(decodeObject(t, `{
		"name": "BoundingBox",
		"parent": "Area",
		"abstract": true,
		"inline": true,
		"type": {"complex_type": "tuple", "values": ["MapPosition", "MapPosition"]},
		"properties": [
			{"name": "left_top", "order": 0, "description": "", "type": "MapPosition"},
			{"name": "orientation", "order": 1, "description": "", "type": "RealOrientation", "optional": true, "default": "0"}
		]
	}`))
	require.NoError(t, err)

	assert.False(t, c.Builtin)
	assert.Equal(t, "Area", c.Parent)
	assert.True(t, c.Abstract)
	assert.True(t, c.Inline)
	assert.Equal(t, types.Tuple(types.Name("MapPosition"), types.Name("MapPosition")), c.Type)
	require.Len(t, c.Properties, 2)
	assert.Equal(t, "left_top", c.Properties[0].Name)
	assert.False(t, c.Properties[0].Optional)
	assert.Nil(t, c.Properties[0].Default)
	assert.True(t, c.Properties[1].Optional)
	assert.Equal(t, "0", c.Properties[1].Default)
}

func TestParseConcept_PropertyErrorPath(t *testing.T) {
	_, err := ParseConcept(decodeObject(t, `{
		"name": "BoundingBox",
		"properties": [{"name": "left_top"}]
	}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "concept[BoundingBox].properties[left_top]")
	assert.Contains(t, err.Error(), `"type"`)
}

func TestParseProperty(t *testing.T) {
	p, err := ParseProperty(decodeObject(t, `{
		"name": "icon_size",
		"order": 3,
		"description": "Size.",
		"visibility": ["space_age"],
		"alt_name": "size",
		"override": true,
		"type": "SpriteSizeType",
		"optional": true,
		"default": {"complex_type": "literal", "value": 64}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"space_age"}, p.Visibility)
	assert.Equal(t, "size", p.AltName)
	assert.True(t, p.Override)
	assert.Equal(t, types.Name("SpriteSizeType"), p.Type)
	assert.Equal(t, types.Literal(64.0), p.Default)
}

func TestParseDefine_Nested(t *testing.T) {
	d, err := ParseDefine(decodeObject(t, `{
		"name": "inventory",
		"order": 1,
		"description": "",
		"values": [{"name": "fuel", "order": 0, "description": "Fuel slots."}],
		"subkeys": [
			{"name": "nested", "order": 0, "description": "", "values": [{"name": "a", "order": 0, "description": ""}]}
		]
	}`))
	require.NoError(t, err)

	require.Len(t, d.Values, 1)
	assert.Equal(t, types.DefineValue{Name: "fuel", Order: 0, Description: "Fuel slots."}, d.Values[0])
	require.Len(t, d.Subkeys, 1)
	assert.Equal(t, "nested", d.Subkeys[0].Name)
	assert.Len(t, d.Subkeys[0].Values, 1)
	assert.Nil(t, d.Subkeys[0].Subkeys)
}

func TestParseDefine_ValueWithoutName(t *testing.T) {
	_, err := ParseDefine(decodeObject(t, `{"name": "direction", "values": [{"order": 0}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "define[direction].values[0]")
}

func TestParsePrototype(t *testing.T) {
	p, err := ParsePrototype(decodeObject(t, `{
		"name": "AccumulatorPrototype",
		"order": 0,
		"description": "",
		"parent": "EntityWithOwnerPrototype",
		"typename": "accumulator",
		"instance_limit": 1,
		"deprecated": true,
		"custom_properties": {"description": "custom", "key_type": "string", "value_type": "int"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "EntityWithOwnerPrototype", p.Parent)
	assert.Equal(t, "accumulator", p.Typename)
	require.NotNil(t, p.InstanceLimit)
	assert.Equal(t, 1, *p.InstanceLimit)
	assert.True(t, p.Deprecated)
	assert.NotNil(t, p.Properties)
	assert.Empty(t, p.Properties)
	assert.NotNil(t, p.CustomProperties)
}

func TestParsePrototype_Defaults(t *testing.T) {
	p, err := ParsePrototype(decodeObject(t, `{"name": "Base"}`))
	require.NoError(t, err)

	assert.Nil(t, p.InstanceLimit)
	assert.Nil(t, p.CustomProperties)
	assert.False(t, p.Abstract)
	assert.Equal(t, []types.Property{}, p.Properties)
}
