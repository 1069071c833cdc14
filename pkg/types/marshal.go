// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import "encoding/json"

// Model dumps carry a "kind" key on every TypeExpr node so variants with
// similar payloads stay distinguishable. The *Fields types have the
// variants' fields without their methods.

type (
	nameFields       NameType
	arrayFields      ArrayType
	dictionaryFields DictionaryType
	tupleFields      TupleType
	unionFields      UnionType
	literalFields    LiteralType
	aliasFields      AliasType
)

func (t *NameType) tagged() any {
	return struct {
		Kind       TypeKind `json:"kind" yaml:"kind"`
		nameFields `yaml:",inline"`
	}{t.Kind(), nameFields(*t)}
}

func (t *ArrayType) tagged() any {
	return struct {
		Kind        TypeKind `json:"kind" yaml:"kind"`
		arrayFields `yaml:",inline"`
	}{t.Kind(), arrayFields(*t)}
}

func (t *DictionaryType) tagged() any {
	return struct {
		Kind             TypeKind `json:"kind" yaml:"kind"`
		dictionaryFields `yaml:",inline"`
	}{t.Kind(), dictionaryFields(*t)}
}

func (t *TupleType) tagged() any {
	return struct {
		Kind        TypeKind `json:"kind" yaml:"kind"`
		tupleFields `yaml:",inline"`
	}{t.Kind(), tupleFields(*t)}
}

func (t *UnionType) tagged() any {
	return struct {
		Kind        TypeKind `json:"kind" yaml:"kind"`
		unionFields `yaml:",inline"`
	}{t.Kind(), unionFields(*t)}
}

func (t *LiteralType) tagged() any {
	return struct {
		Kind          TypeKind `json:"kind" yaml:"kind"`
		literalFields `yaml:",inline"`
	}{t.Kind(), literalFields(*t)}
}

func (t *AliasType) tagged() any {
	return struct {
		Kind        TypeKind `json:"kind" yaml:"kind"`
		aliasFields `yaml:",inline"`
	}{t.Kind(), aliasFields(*t)}
}

// MarshalJSON encodes the node with its kind.
func (t *NameType) MarshalJSON() ([]byte, error) { return json.Marshal(t.tagged()) }

// MarshalJSON encodes the node with its kind.
func (t *ArrayType) MarshalJSON() ([]byte, error) { return json.Marshal(t.tagged()) }

// MarshalJSON encodes the node with its kind.
func (t *DictionaryType) MarshalJSON() ([]byte, error) { return json.Marshal(t.tagged()) }

// MarshalJSON encodes the node with its kind.
func (t *TupleType) MarshalJSON() ([]byte, error) { return json.Marshal(t.tagged()) }

// MarshalJSON encodes the node with its kind.
func (t *UnionType) MarshalJSON() ([]byte, error) { return json.Marshal(t.tagged()) }

// MarshalJSON encodes the node with its kind.
func (t *LiteralType) MarshalJSON() ([]byte, error) { return json.Marshal(t.tagged()) }

// MarshalJSON encodes the node with its kind.
func (t *AliasType) MarshalJSON() ([]byte, error) { return json.Marshal(t.tagged()) }

// MarshalYAML encodes the node with its kind.
func (t *NameType) MarshalYAML() (any, error) { return t.tagged(), nil }

// MarshalYAML encodes the node with its kind.
func (t *ArrayType) MarshalYAML() (any, error) { return t.tagged(), nil }

// MarshalYAML encodes the node with its kind.
func (t *DictionaryType) MarshalYAML() (any, error) { return t.tagged(), nil }

// MarshalYAML encodes the node with its kind.
func (t *TupleType) MarshalYAML() (any, error) { return t.tagged(), nil }

// MarshalYAML encodes the node with its kind.
func (t *UnionType) MarshalYAML() (any, error) { return t.tagged(), nil }

// MarshalYAML encodes the node with its kind.
func (t *LiteralType) MarshalYAML() (any, error) { return t.tagged(), nil }

// MarshalYAML encodes the node with its kind.
func (t *AliasType) MarshalYAML() (any, error) { return t.tagged(), nil }
