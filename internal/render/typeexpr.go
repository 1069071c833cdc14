// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

// Package render turns type expressions and documentation entities into
// single-line Lua language server annotations.
package render

import (
	"encoding/json"
	"strings"

	"github.com/api2lua/api2lua/pkg/types"
)

// Render returns the canonical annotation text for t. A nil expression
// renders as "any". Unions are never parenthesized, even when nested.
func Render(t types.TypeExpr) string {
	var sb strings.Builder
	writeType(&sb, t)
	return sb.String()
}

func writeType(sb *strings.Builder, t types.TypeExpr) {
	switch t := t.(type) {
	case nil:
		sb.WriteString("any")

	case *types.NameType:
		sb.WriteString(t.Name)

	case *types.ArrayType:
		writeType(sb, t.Element)
		sb.WriteString("[]")

	case *types.DictionaryType:
		sb.WriteString("table<")
		writeType(sb, t.Key)
		sb.WriteString(", ")
		writeType(sb, t.Value)
		sb.WriteString(">")

	case *types.TupleType:
		sb.WriteString("tuple<")
		writeJoined(sb, t.Elements, ", ")
		sb.WriteString(">")

	case *types.UnionType:
		writeJoined(sb, t.Options, " | ")

	case *types.LiteralType:
		sb.WriteString(renderLiteral(t))

	case *types.AliasType:
		writeType(sb, t.Inner)

	default:
		sb.WriteString("any")
	}
}

func writeJoined(sb *strings.Builder, list []types.TypeExpr, sep string) {
	for i, t := range list {
		if i > 0 {
			sb.WriteString(sep)
		}
		writeType(sb, t)
	}
}

// renderLiteral keeps the tripled opening quote of string literals; the
// language server's hover display depends on it.
func renderLiteral(l *types.LiteralType) string {
	switch v := l.Value.(type) {
	case string:
		text := v
		if l.Description != "" {
			text = l.Description
		}
		return `string """` + text + `"`
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return withDescription("number", l.Description)
	case bool:
		return withDescription("boolean", l.Description)
	default:
		return "any"
	}
}

func withDescription(kind, description string) string {
	if description == "" {
		return kind
	}
	return kind + " " + description
}
