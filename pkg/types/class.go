// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package types

// Timeframe says when a raised event fires relative to the call.
type Timeframe string

const (
	TimeframeInstantly   Timeframe = "instantly"
	TimeframeCurrentTick Timeframe = "current_tick"
	TimeframeFutureTick  Timeframe = "future_tick"
)

// Parameter is a method argument or return value. Return values have an
// empty Name.
type Parameter struct {
	Name        string   `json:"name" yaml:"name"`
	Order       int      `json:"order" yaml:"order"`
	Description string   `json:"description" yaml:"description"`
	Type        TypeExpr `json:"type" yaml:"type"`
	Optional    bool     `json:"optional" yaml:"optional"`
}

// ParameterGroup is a named set of parameters accepted together.
type ParameterGroup struct {
	Name        string      `json:"name" yaml:"name"`
	Order       int         `json:"order" yaml:"order"`
	Description string      `json:"description" yaml:"description"`
	Parameters  []Parameter `json:"parameters" yaml:"parameters"`
}

// VariadicParameter describes trailing variadic arguments.
type VariadicParameter struct {
	Type        TypeExpr `json:"type" yaml:"type"`
	Description string   `json:"description" yaml:"description"`
}

// MethodFormat describes how arguments are passed.
type MethodFormat struct {
	TakesTable bool `json:"takes_table" yaml:"takes_table"`

	// TableOptional is nil when the source left it out.
	TableOptional *bool `json:"table_optional,omitempty" yaml:"table_optional,omitempty"`
}

// EventRaised names an event a member may raise.
type EventRaised struct {
	Name        string    `json:"name" yaml:"name"`
	Order       int       `json:"order" yaml:"order"`
	Description string    `json:"description" yaml:"description"`
	Timeframe   Timeframe `json:"timeframe" yaml:"timeframe"`
	Optional    bool      `json:"optional" yaml:"optional"`
}

// Attribute is a readable and/or writable member of a Class.
type Attribute struct {
	MemberBase `yaml:",inline"`

	Visibility []string      `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	Raises     []EventRaised `json:"raises,omitempty" yaml:"raises,omitempty"`
	Subclasses []string      `json:"subclasses,omitempty" yaml:"subclasses,omitempty"`

	// ReadType and WriteType are nil when the attribute cannot be read or
	// written respectively.
	ReadType  TypeExpr `json:"read_type,omitempty" yaml:"read_type,omitempty"`
	WriteType TypeExpr `json:"write_type,omitempty" yaml:"write_type,omitempty"`

	Optional bool `json:"optional" yaml:"optional"`
}

// Method is a callable member of a Class, or a global function.
type Method struct {
	MemberBase `yaml:",inline"`

	Visibility      []string         `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	Raises          []EventRaised    `json:"raises,omitempty" yaml:"raises,omitempty"`
	Subclasses      []string         `json:"subclasses,omitempty" yaml:"subclasses,omitempty"`
	Parameters      []Parameter      `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	ParameterGroups []ParameterGroup `json:"parameter_groups,omitempty" yaml:"parameter_groups,omitempty"`

	// GroupDescription documents the parameter groups; empty when absent.
	GroupDescription string `json:"variant_parameter_description,omitempty" yaml:"variant_parameter_description,omitempty"`

	Variadic     *VariadicParameter `json:"variadic_parameter,omitempty" yaml:"variadic_parameter,omitempty"`
	Format       MethodFormat       `json:"format" yaml:"format"`
	ReturnValues []Parameter        `json:"return_values,omitempty" yaml:"return_values,omitempty"`
}

// OperatorName is the set of operator entries a Class may define.
type OperatorName string

const (
	OperatorCall   OperatorName = "call"
	OperatorIndex  OperatorName = "index"
	OperatorLength OperatorName = "length"
)

// Operator is a Class operator entry. Exactly one of Method and Attribute
// is set, chosen when the entry is parsed.
type Operator struct {
	Name      OperatorName `json:"name" yaml:"name"`
	Method    *Method      `json:"method,omitempty" yaml:"method,omitempty"`
	Attribute *Attribute   `json:"attribute,omitempty" yaml:"attribute,omitempty"`
}

// IsMethod reports whether the operator is shaped like a Method.
func (o Operator) IsMethod() bool {
	return o.Method != nil
}

// Class is a runtime API object type.
type Class struct {
	MemberBase `yaml:",inline"`

	Visibility []string    `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	Parent     string      `json:"parent,omitempty" yaml:"parent,omitempty"`
	Abstract   bool        `json:"abstract" yaml:"abstract"`
	Methods    []Method    `json:"methods" yaml:"methods"`
	Attributes []Attribute `json:"attributes" yaml:"attributes"`
	Operators  []Operator  `json:"operators" yaml:"operators"`
}
