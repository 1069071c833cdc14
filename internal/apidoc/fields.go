// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package apidoc

import (
	"encoding/json"
	"fmt"
	"math"
)

// Field accessors. Absent or wrong-shaped optional fields resolve to the
// zero state of their Go type.

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func boolField(obj map[string]any, key string) bool {
	b, _ := obj[key].(bool)
	return b
}

func intField(obj map[string]any, key string) int {
	n, _ := toInt(obj[key])
	return n
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

func arrayField(obj map[string]any, key string) ([]any, bool) {
	arr, ok := obj[key].([]any)
	return arr, ok
}

// stringList returns the string items of an array field. Non-string items
// are skipped; nil is returned when the field is absent or not an array.
func stringList(obj map[string]any, key string) []string {
	arr, ok := arrayField(obj, key)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func requireString(obj map[string]any, key, path string) (string, error) {
	s, ok := obj[key].(string)
	if !ok {
		return "", missingField(path, key)
	}
	return s, nil
}

// itemPath labels a list item by its name when it has one, by index otherwise.
func itemPath(path, key string, index int, item any) string {
	prefix := key
	if path != "" {
		prefix = path + "." + key
	}
	if m, ok := item.(map[string]any); ok {
		if name, ok := m["name"].(string); ok && name != "" {
			return fmt.Sprintf("%s[%s]", prefix, name)
		}
	}
	return fmt.Sprintf("%s[%d]", prefix, index)
}

func fieldPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// parseList builds one entity per object item of obj[key]. The result is
// nil when the field is absent or not an array; non-object items are
// skipped.
func parseList[T any](obj map[string]any, key, path string, parse func(map[string]any, string) (T, error)) ([]T, error) {
	arr, ok := arrayField(obj, key)
	if !ok {
		return nil, nil
	}
	out := make([]T, 0, len(arr))
	for i, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		v, err := parse(m, itemPath(path, key, i, item))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// nonNil turns an absent list into an empty one for fields that are
// always lists.
func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
