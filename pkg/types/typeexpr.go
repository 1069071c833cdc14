// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

// Package types defines the in-memory model of a scripting API reference:
// the recursive type expression algebra and the documentation entities
// that own those expressions.
package types

// TypeKind discriminates the TypeExpr variants.
type TypeKind string

const (
	// KindName is a named primitive or a reference to another declared entity.
	KindName TypeKind = "name"

	// KindArray is a homogeneous sequence.
	KindArray TypeKind = "array"

	// KindDictionary is an associative mapping.
	KindDictionary TypeKind = "dictionary"

	// KindTuple is a fixed-arity heterogeneous sequence.
	KindTuple TypeKind = "tuple"

	// KindUnion is one of several alternatives.
	KindUnion TypeKind = "union"

	// KindLiteral is a fixed value.
	KindLiteral TypeKind = "literal"

	// KindAlias is a named wrapper around another type expression.
	// Its wire discriminator is "type".
	KindAlias TypeKind = "type"
)

// TypeExpr is a node of the type expression tree. The set of
// implementations is closed: NameType, ArrayType, DictionaryType,
// TupleType, UnionType, LiteralType and AliasType.
//
// A TypeExpr exclusively owns its children and is never mutated after
// construction.
type TypeExpr interface {
	Kind() TypeKind
	typeExpr()
}

// NameType is a leaf naming a builtin type or another entity.
type NameType struct {
	Name string `json:"name" yaml:"name"`
}

// ArrayType is Element[].
type ArrayType struct {
	Element TypeExpr `json:"element" yaml:"element"`
}

// DictionaryType maps Key to Value. Both are always set.
type DictionaryType struct {
	Key   TypeExpr `json:"key" yaml:"key"`
	Value TypeExpr `json:"value" yaml:"value"`
}

// TupleType holds a non-empty ordered list of elements.
type TupleType struct {
	Elements []TypeExpr `json:"elements" yaml:"elements"`
}

// UnionType holds a non-empty ordered list of alternatives.
type UnionType struct {
	Options []TypeExpr `json:"options" yaml:"options"`

	// HasDescriptions is set when the options carry their own descriptions
	// (the "full_format" flag of the source document).
	HasDescriptions bool `json:"has_descriptions" yaml:"has_descriptions"`
}

// LiteralType is a fixed value. Value is one of string, a numeric kind,
// bool or nil. An empty Description means none was given.
type LiteralType struct {
	Value       any    `json:"value" yaml:"value"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// AliasType wraps Inner under a documented name; aliasing is transparent
// when rendered.
type AliasType struct {
	Inner       TypeExpr `json:"inner" yaml:"inner"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Kind returns KindName.
func (*NameType) Kind() TypeKind { return KindName }

// Kind returns KindArray.
func (*ArrayType) Kind() TypeKind { return KindArray }

// Kind returns KindDictionary.
func (*DictionaryType) Kind() TypeKind { return KindDictionary }

// Kind returns KindTuple.
func (*TupleType) Kind() TypeKind { return KindTuple }

// Kind returns KindUnion.
func (*UnionType) Kind() TypeKind { return KindUnion }

// Kind returns KindLiteral.
func (*LiteralType) Kind() TypeKind { return KindLiteral }

// Kind returns KindAlias.
func (*AliasType) Kind() TypeKind { return KindAlias }

func (*NameType) typeExpr()       {}
func (*ArrayType) typeExpr()      {}
func (*DictionaryType) typeExpr() {}
func (*TupleType) typeExpr()      {}
func (*UnionType) typeExpr()      {}
func (*LiteralType) typeExpr()    {}
func (*AliasType) typeExpr()      {}

// Name returns a NameType leaf.
func Name(name string) *NameType {
	return &NameType{Name: name}
}

// Array returns an ArrayType of element.
func Array(element TypeExpr) *ArrayType {
	return &ArrayType{Element: element}
}

// Dictionary returns a DictionaryType from key to value.
func Dictionary(key, value TypeExpr) *DictionaryType {
	return &DictionaryType{Key: key, Value: value}
}

// Tuple returns a TupleType of the given elements.
func Tuple(elements ...TypeExpr) *TupleType {
	return &TupleType{Elements: elements}
}

// Union returns a UnionType of the given options.
func Union(options ...TypeExpr) *UnionType {
	return &UnionType{Options: options}
}

// Literal returns a LiteralType with no description.
func Literal(value any) *LiteralType {
	return &LiteralType{Value: value}
}

// Alias returns an AliasType wrapping inner.
func Alias(inner TypeExpr) *AliasType {
	return &AliasType{Inner: inner}
}
