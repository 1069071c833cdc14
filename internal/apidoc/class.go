// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package apidoc

import (
	"github.com/api2lua/api2lua/pkg/types"
)

// ParseParameter builds a named Parameter.
func ParseParameter(obj map[string]any) (types.Parameter, error) {
	return parseParameter(obj, rootPath("parameter", obj))
}

func parseParameter(obj map[string]any, path string) (types.Parameter, error) {
	if _, err := requireString(obj, "name", path); err != nil {
		return types.Parameter{}, err
	}
	return parseParameterShape(obj, path)
}

// parseReturnValue accepts parameters without a name.
func parseReturnValue(obj map[string]any, path string) (types.Parameter, error) {
	return parseParameterShape(obj, path)
}

func parseParameterShape(obj map[string]any, path string) (types.Parameter, error) {
	typ, err := parseTypeField(obj, "type", path)
	if err != nil {
		return types.Parameter{}, err
	}
	return types.Parameter{
		Name:        stringField(obj, "name"),
		Order:       intField(obj, "order"),
		Description: stringField(obj, "description"),
		Type:        typ,
		Optional:    boolField(obj, "optional"),
	}, nil
}

// ParseParameterGroup builds a ParameterGroup.
func ParseParameterGroup(obj map[string]any) (types.ParameterGroup, error) {
	return parseParameterGroup(obj, rootPath("parameter_group", obj))
}

func parseParameterGroup(obj map[string]any, path string) (types.ParameterGroup, error) {
	name, err := requireString(obj, "name", path)
	if err != nil {
		return types.ParameterGroup{}, err
	}
	params, err := parseList(obj, "parameters", path, parseParameter)
	if err != nil {
		return types.ParameterGroup{}, err
	}
	return types.ParameterGroup{
		Name:        name,
		Order:       intField(obj, "order"),
		Description: stringField(obj, "description"),
		Parameters:  nonNil(params),
	}, nil
}

// ParseVariadicParameter builds a VariadicParameter. The type is required.
func ParseVariadicParameter(obj map[string]any) (types.VariadicParameter, error) {
	return parseVariadicParameter(obj, "variadic_parameter")
}

func parseVariadicParameter(obj map[string]any, path string) (types.VariadicParameter, error) {
	typ, err := parseTypeField(obj, "type", path)
	if err != nil {
		return types.VariadicParameter{}, err
	}
	return types.VariadicParameter{
		Type:        typ,
		Description: stringField(obj, "description"),
	}, nil
}

// ParseMethodFormat builds a MethodFormat.
func ParseMethodFormat(obj map[string]any) types.MethodFormat {
	f := types.MethodFormat{TakesTable: boolField(obj, "takes_table")}
	if b, ok := obj["table_optional"].(bool); ok {
		f.TableOptional = &b
	}
	return f
}

// ParseEventRaised builds an EventRaised.
func ParseEventRaised(obj map[string]any) (types.EventRaised, error) {
	return parseEventRaised(obj, rootPath("raises", obj))
}

func parseEventRaised(obj map[string]any, path string) (types.EventRaised, error) {
	name, err := requireString(obj, "name", path)
	if err != nil {
		return types.EventRaised{}, err
	}
	return types.EventRaised{
		Name:        name,
		Order:       intField(obj, "order"),
		Description: stringField(obj, "description"),
		Timeframe:   types.Timeframe(stringField(obj, "timeframe")),
		Optional:    boolField(obj, "optional"),
	}, nil
}

// ParseAttribute builds an Attribute. Either type may be absent.
func ParseAttribute(obj map[string]any) (types.Attribute, error) {
	return parseAttribute(obj, rootPath("attribute", obj))
}

func parseAttribute(obj map[string]any, path string) (types.Attribute, error) {
	base, err := parseMemberBase(obj, path)
	if err != nil {
		return types.Attribute{}, err
	}

	a := types.Attribute{
		MemberBase: base,
		Visibility: stringList(obj, "visibility"),
		Subclasses: stringList(obj, "subclasses"),
		Optional:   boolField(obj, "optional"),
	}
	if a.Raises, err = parseList(obj, "raises", path, parseEventRaised); err != nil {
		return types.Attribute{}, err
	}
	if a.ReadType, err = parseOptionalTypeField(obj, "read_type", path); err != nil {
		return types.Attribute{}, err
	}
	if a.WriteType, err = parseOptionalTypeField(obj, "write_type", path); err != nil {
		return types.Attribute{}, err
	}
	return a, nil
}

// ParseMethod builds a Method.
func ParseMethod(obj map[string]any) (types.Method, error) {
	return parseMethod(obj, rootPath("method", obj))
}

func parseMethod(obj map[string]any, path string) (types.Method, error) {
	base, err := parseMemberBase(obj, path)
	if err != nil {
		return types.Method{}, err
	}

	m := types.Method{
		MemberBase:       base,
		Visibility:       stringList(obj, "visibility"),
		Subclasses:       stringList(obj, "subclasses"),
		GroupDescription: stringField(obj, "variant_parameter_description"),
	}
	if m.Raises, err = parseList(obj, "raises", path, parseEventRaised); err != nil {
		return types.Method{}, err
	}
	if m.Parameters, err = parseList(obj, "parameters", path, parseParameter); err != nil {
		return types.Method{}, err
	}
	if m.ParameterGroups, err = parseList(obj, "parameter_groups", path, parseParameterGroup); err != nil {
		return types.Method{}, err
	}
	if m.ReturnValues, err = parseList(obj, "return_values", path, parseReturnValue); err != nil {
		return types.Method{}, err
	}
	if v, ok := obj["variadic_parameter"].(map[string]any); ok {
		variadic, err := parseVariadicParameter(v, fieldPath(path, "variadic_parameter"))
		if err != nil {
			return types.Method{}, err
		}
		m.Variadic = &variadic
	}
	if f, ok := obj["format"].(map[string]any); ok {
		m.Format = ParseMethodFormat(f)
	}
	return m, nil
}

// ParseClass builds a Class. Methods, Attributes and Operators are never nil.
func ParseClass(obj map[string]any) (types.Class, error) {
	return parseClass(obj, rootPath("class", obj))
}

func parseClass(obj map[string]any, path string) (types.Class, error) {
	base, err := parseMemberBase(obj, path)
	if err != nil {
		return types.Class{}, err
	}

	c := types.Class{
		MemberBase: base,
		Visibility: stringList(obj, "visibility"),
		Parent:     stringField(obj, "parent"),
		Abstract:   boolField(obj, "abstract"),
	}

	methods, err := parseList(obj, "methods", path, parseMethod)
	if err != nil {
		return types.Class{}, err
	}
	attributes, err := parseList(obj, "attributes", path, parseAttribute)
	if err != nil {
		return types.Class{}, err
	}
	operators, err := parseOperators(obj, path)
	if err != nil {
		return types.Class{}, err
	}

	c.Methods = nonNil(methods)
	c.Attributes = nonNil(attributes)
	c.Operators = operators
	return c, nil
}

// parseOperators classifies each known operator as a Method when it
// carries parameters or return values, as an Attribute otherwise. Entries
// with other names are dropped.
func parseOperators(obj map[string]any, path string) ([]types.Operator, error) {
	operators := []types.Operator{}
	arr, ok := arrayField(obj, "operators")
	if !ok {
		return operators, nil
	}

	for i, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name := types.OperatorName(stringField(m, "name"))
		switch name {
		case types.OperatorCall, types.OperatorIndex, types.OperatorLength:
		default:
			continue
		}

		opPath := itemPath(path, "operators", i, item)
		op := types.Operator{Name: name}
		_, hasParams := m["parameters"]
		_, hasReturns := m["return_values"]
		if hasParams || hasReturns {
			method, err := parseMethod(m, opPath)
			if err != nil {
				return nil, err
			}
			op.Method = &method
		} else {
			attr, err := parseAttribute(m, opPath)
			if err != nil {
				return nil, err
			}
			op.Attribute = &attr
		}
		operators = append(operators, op)
	}
	return operators, nil
}
