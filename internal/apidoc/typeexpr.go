// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package apidoc

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/api2lua/api2lua/pkg/types"
)

// ParseTypeExpr builds a TypeExpr from a decoded JSON value. A string is a
// name leaf; an object is dispatched on its complex_type. Unknown
// complex_type values degrade to a name leaf carrying that value.
func ParseTypeExpr(v any) (types.TypeExpr, error) {
	return parseTypeExpr(v, "")
}

func parseTypeExpr(v any, path string) (types.TypeExpr, error) {
	switch t := v.(type) {
	case string:
		return types.Name(t), nil
	case map[string]any:
		return parseComplexType(t, path)
	default:
		return nil, &ParseError{
			Path: path,
			Err:  fmt.Errorf("%w: expected string or object, got %T", ErrInvalidType, v),
		}
	}
}

func parseComplexType(obj map[string]any, path string) (types.TypeExpr, error) {
	kind, err := requireString(obj, "complex_type", path)
	if err != nil {
		return nil, err
	}

	switch types.TypeKind(kind) {
	case types.KindArray:
		elem, err := parseValueField(obj, "value", path)
		if err != nil {
			return nil, err
		}
		return types.Array(elem), nil

	case types.KindDictionary:
		key, err := parseValueField(obj, "key", path)
		if err != nil {
			return nil, err
		}
		value, err := parseValueField(obj, "value", path)
		if err != nil {
			return nil, err
		}
		return types.Dictionary(key, value), nil

	case types.KindTuple:
		elems, err := parseTypeList(obj, "values", path)
		if err != nil {
			return nil, err
		}
		return types.Tuple(elems...), nil

	case types.KindUnion:
		opts, err := parseTypeList(obj, "options", path)
		if err != nil {
			return nil, err
		}
		return &types.UnionType{
			Options:         opts,
			HasDescriptions: boolField(obj, "full_format"),
		}, nil

	case types.KindLiteral:
		return &types.LiteralType{
			Value:       obj["value"],
			Description: stringField(obj, "description"),
		}, nil

	case types.KindAlias:
		inner, err := parseValueField(obj, "value", path)
		if err != nil {
			return nil, err
		}
		return &types.AliasType{
			Inner:       inner,
			Description: stringField(obj, "description"),
		}, nil

	default:
		return types.Name(kind), nil
	}
}

// parseTypeField parses a required type-valued field.
func parseTypeField(obj map[string]any, key, path string) (types.TypeExpr, error) {
	v, ok := obj[key]
	if !ok {
		return nil, missingField(path, key)
	}
	return parseTypeExpr(v, fieldPath(path, key))
}

// parseValueField parses the payload of an array, dictionary or alias. A
// number or boolean there is a leaf named by its text.
func parseValueField(obj map[string]any, key, path string) (types.TypeExpr, error) {
	v, ok := obj[key]
	if !ok {
		return nil, missingField(path, key)
	}
	if name, ok := primitiveName(v); ok {
		return types.Name(name), nil
	}
	return parseTypeExpr(v, fieldPath(path, key))
}

func primitiveName(v any) (string, bool) {
	switch p := v.(type) {
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64), true
	case json.Number:
		return p.String(), true
	case bool:
		return strconv.FormatBool(p), true
	default:
		return "", false
	}
}

// parseOptionalTypeField returns nil when the field is absent or is
// neither a string nor an object.
func parseOptionalTypeField(obj map[string]any, key, path string) (types.TypeExpr, error) {
	switch v := obj[key].(type) {
	case string, map[string]any:
		return parseTypeExpr(v, fieldPath(path, key))
	default:
		return nil, nil
	}
}

func parseTypeList(obj map[string]any, key, path string) ([]types.TypeExpr, error) {
	arr, ok := arrayField(obj, key)
	if !ok || len(arr) == 0 {
		return nil, &ParseError{Path: fieldPath(path, key), Err: ErrEmptyList}
	}
	out := make([]types.TypeExpr, 0, len(arr))
	for i, item := range arr {
		t, err := parseTypeExpr(item, fmt.Sprintf("%s[%d]", fieldPath(path, key), i))
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
