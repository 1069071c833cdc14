// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package render

import (
	"strings"

	"github.com/api2lua/api2lua/pkg/types"
)

const (
	classPrefix = "---@class "
	fieldPrefix = "---@field "
	aliasPrefix = "---@alias "

	definesPrefix     = "defines."
	definesBoundaries = "| <,"
)

// FirstLine returns description up to its first line break.
func FirstLine(description string) string {
	line, _, _ := strings.Cut(description, "\n")
	return strings.TrimSuffix(line, "\r")
}

// ClassLine returns the class declaration for name.
func ClassLine(name string) string {
	return classPrefix + name
}

// ClassDeclaration returns the class declaration of a Concept, Define,
// Prototype or Class through their shared base fields.
func ClassDeclaration(b types.MemberBase) string {
	return ClassLine(b.Name)
}

// FieldLine returns a field declaration. Only the first line of
// description is kept.
func FieldLine(name, segment, description string) string {
	return fieldPrefix + name + " " + segment + " " + FirstLine(description)
}

// AliasLine returns an alias declaration for name.
func AliasLine(name string, t types.TypeExpr) string {
	return aliasPrefix + name + " " + Render(t)
}

// PropertyField declares a Property with its rendered type.
func PropertyField(p types.Property) string {
	return FieldLine(p.Name, Render(p.Type), p.Description)
}

// DefineValueField declares a define value as a string literal of its name.
func DefineValueField(v types.DefineValue) string {
	return FieldLine(v.Name, `"`+v.Name+`"`, v.Description)
}

// AttributeField declares an Attribute by its read and write types.
func AttributeField(a types.Attribute) string {
	return FieldLine(a.Name, AttributeType(a), a.Description)
}

// AttributeType returns "read | write" when both types are present, the
// single present one otherwise, and "any" when neither is.
func AttributeType(a types.Attribute) string {
	switch {
	case a.ReadType != nil && a.WriteType != nil:
		return Render(a.ReadType) + " | " + Render(a.WriteType)
	case a.ReadType != nil:
		return Render(a.ReadType)
	case a.WriteType != nil:
		return Render(a.WriteType)
	default:
		return "any"
	}
}

// MethodField declares a Method as a function-typed field.
func MethodField(m types.Method) string {
	return FieldLine(m.Name, FunctionSignature(m), m.Description)
}

// ParameterField declares a named Parameter, as used for event payloads.
func ParameterField(p types.Parameter) string {
	return FieldLine(p.Name, Render(p.Type), p.Description)
}

// FunctionSignature returns "fun(a:T, b:U)" from the method's parameters
// in order. Parameter types drop the "defines." qualifier.
func FunctionSignature(m types.Method) string {
	params := make([]string, 0, len(m.Parameters))
	for _, p := range m.Parameters {
		params = append(params, p.Name+":"+parameterType(p.Type))
	}
	return "fun(" + strings.Join(params, ", ") + ")"
}

// CallableSignature extends FunctionSignature for standalone functions:
// optional parameters are marked "b?:U" and a variadic parameter is
// appended as "...:V".
func CallableSignature(m types.Method) string {
	params := make([]string, 0, len(m.Parameters)+1)
	for _, p := range m.Parameters {
		name := p.Name
		if p.Optional {
			name += "?"
		}
		params = append(params, name+":"+parameterType(p.Type))
	}
	if m.Variadic != nil {
		params = append(params, "...:"+parameterType(m.Variadic.Type))
	}
	return "fun(" + strings.Join(params, ", ") + ")"
}

func parameterType(t types.TypeExpr) string {
	return stripDefines(Render(t))
}

// stripDefines removes the "defines." qualifier where it starts a type name,
// that is at the start of text or after one of definesBoundaries.
func stripDefines(text string) string {
	var sb strings.Builder
	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], definesPrefix) && (i == 0 || strings.IndexByte(definesBoundaries, text[i-1]) >= 0) {
			i += len(definesPrefix)
			continue
		}
		sb.WriteByte(text[i])
		i++
	}
	return sb.String()
}
