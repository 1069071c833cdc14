// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package apidoc

import (
	"github.com/api2lua/api2lua/pkg/types"
)

// builtinSentinel marks concepts implemented natively by the engine.
const builtinSentinel = "builtin"

// ParseConcept builds a Concept from its JSON object.
func ParseConcept(obj map[string]any) (types.Concept, error) {
	return parseConcept(obj, rootPath("concept", obj))
}

func parseConcept(obj map[string]any, path string) (types.Concept, error) {
	base, err := parseMemberBase(obj, path)
	if err != nil {
		return types.Concept{}, err
	}

	c := types.Concept{
		MemberBase: base,
		Parent:     stringField(obj, "parent"),
		Abstract:   boolField(obj, "abstract"),
		Inline:     boolField(obj, "inline"),
	}

	if s, ok := obj["type"].(string); ok && s == builtinSentinel {
		c.Builtin = true
	} else if c.Type, err = parseOptionalTypeField(obj, "type", path); err != nil {
		return types.Concept{}, err
	}

	if c.Properties, err = parseList(obj, "properties", path, parseProperty); err != nil {
		return types.Concept{}, err
	}
	return c, nil
}

// ParseDefine builds a Define, including its nested subkeys.
func ParseDefine(obj map[string]any) (types.Define, error) {
	return parseDefine(obj, rootPath("define", obj))
}

func parseDefine(obj map[string]any, path string) (types.Define, error) {
	base, err := parseMemberBase(obj, path)
	if err != nil {
		return types.Define{}, err
	}

	d := types.Define{MemberBase: base}
	if d.Values, err = parseList(obj, "values", path, parseDefineValue); err != nil {
		return types.Define{}, err
	}
	if d.Subkeys, err = parseList(obj, "subkeys", path, parseDefine); err != nil {
		return types.Define{}, err
	}
	return d, nil
}

func parseDefineValue(obj map[string]any, path string) (types.DefineValue, error) {
	name, err := requireString(obj, "name", path)
	if err != nil {
		return types.DefineValue{}, err
	}
	return types.DefineValue{
		Name:        name,
		Order:       intField(obj, "order"),
		Description: stringField(obj, "description"),
	}, nil
}

// ParseProperty builds a Property. The type field is required.
func ParseProperty(obj map[string]any) (types.Property, error) {
	return parseProperty(obj, rootPath("property", obj))
}

func parseProperty(obj map[string]any, path string) (types.Property, error) {
	base, err := parseMemberBase(obj, path)
	if err != nil {
		return types.Property{}, err
	}

	typ, err := parseTypeField(obj, "type", path)
	if err != nil {
		return types.Property{}, err
	}

	p := types.Property{
		MemberBase: base,
		Visibility: stringList(obj, "visibility"),
		AltName:    stringField(obj, "alt_name"),
		Override:   boolField(obj, "override"),
		Type:       typ,
		Optional:   boolField(obj, "optional"),
	}

	switch def := obj["default"].(type) {
	case nil:
	case map[string]any:
		if p.Default, err = parseTypeExpr(def, fieldPath(path, "default")); err != nil {
			return types.Property{}, err
		}
	default:
		p.Default = def
	}
	return p, nil
}

// ParsePrototype builds a Prototype. Properties is never nil.
func ParsePrototype(obj map[string]any) (types.Prototype, error) {
	return parsePrototype(obj, rootPath("prototype", obj))
}

func parsePrototype(obj map[string]any, path string) (types.Prototype, error) {
	base, err := parseMemberBase(obj, path)
	if err != nil {
		return types.Prototype{}, err
	}

	p := types.Prototype{
		MemberBase:       base,
		Visibility:       stringList(obj, "visibility"),
		Parent:           stringField(obj, "parent"),
		Abstract:         boolField(obj, "abstract"),
		Typename:         stringField(obj, "typename"),
		Deprecated:       boolField(obj, "deprecated"),
		CustomProperties: obj["custom_properties"],
	}
	if n, ok := toInt(obj["instance_limit"]); ok {
		p.InstanceLimit = &n
	}

	props, err := parseList(obj, "properties", path, parseProperty)
	if err != nil {
		return types.Prototype{}, err
	}
	p.Properties = nonNil(props)
	return p, nil
}
