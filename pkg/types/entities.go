// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package types

// Concept is a named data shape used throughout the API.
type Concept struct {
	MemberBase `yaml:",inline"`

	// Parent names the concept this one extends; empty when absent.
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`

	Abstract bool `json:"abstract" yaml:"abstract"`
	Inline   bool `json:"inline" yaml:"inline"`

	// Builtin marks concepts whose type is the "builtin" sentinel. Type is
	// nil in that case.
	Builtin bool `json:"builtin" yaml:"builtin"`

	// Type is the concept's type expression, nil when absent or builtin.
	Type TypeExpr `json:"type,omitempty" yaml:"type,omitempty"`

	// Properties is nil when absent.
	Properties []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// DefineValue is a single named constant of a Define.
type DefineValue struct {
	Name        string `json:"name" yaml:"name"`
	Order       int    `json:"order" yaml:"order"`
	Description string `json:"description" yaml:"description"`
}

// Define is a global enumeration, possibly nesting further defines.
type Define struct {
	MemberBase `yaml:",inline"`

	Values  []DefineValue `json:"values,omitempty" yaml:"values,omitempty"`
	Subkeys []Define      `json:"subkeys,omitempty" yaml:"subkeys,omitempty"`
}

// Property is a typed member of a Concept or Prototype.
type Property struct {
	MemberBase `yaml:",inline"`

	Visibility []string `json:"visibility,omitempty" yaml:"visibility,omitempty"`

	// AltName is an alternate key accepted for this property; empty when absent.
	AltName string `json:"alt_name,omitempty" yaml:"alt_name,omitempty"`

	Override bool     `json:"override" yaml:"override"`
	Type     TypeExpr `json:"type" yaml:"type"`
	Optional bool     `json:"optional" yaml:"optional"`

	// Default is nil when absent, a primitive, or a TypeExpr when the source
	// described the default as a type.
	Default any `json:"default,omitempty" yaml:"default,omitempty"`
}

// Prototype is a data-stage definition kind.
type Prototype struct {
	MemberBase `yaml:",inline"`

	Visibility []string `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	Parent     string   `json:"parent,omitempty" yaml:"parent,omitempty"`
	Abstract   bool     `json:"abstract" yaml:"abstract"`

	// Typename is the prototype's type string; empty when absent.
	Typename string `json:"typename,omitempty" yaml:"typename,omitempty"`

	// InstanceLimit is nil when unlimited.
	InstanceLimit *int `json:"instance_limit,omitempty" yaml:"instance_limit,omitempty"`

	Deprecated bool       `json:"deprecated" yaml:"deprecated"`
	Properties []Property `json:"properties" yaml:"properties"`

	// CustomProperties is kept as decoded; nil when absent.
	CustomProperties any `json:"custom_properties,omitempty" yaml:"custom_properties,omitempty"`
}
