// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

// Package apidoc builds the entity model from decoded API documentation
// JSON. Parsing is permissive: optional fields fall back to empty values.
// Only required fields (names, type discriminators, types of typed members)
// produce a *ParseError.
package apidoc

import (
	"fmt"

	"github.com/api2lua/api2lua/pkg/types"
)

// rootPath labels a top-level entity for error reporting.
func rootPath(kind string, obj map[string]any) string {
	if name, ok := obj["name"].(string); ok && name != "" {
		return fmt.Sprintf("%s[%s]", kind, name)
	}
	return kind
}

func parseMemberBase(obj map[string]any, path string) (types.MemberBase, error) {
	name, err := requireString(obj, "name", path)
	if err != nil {
		return types.MemberBase{}, err
	}
	return types.MemberBase{
		Name:        name,
		Order:       intField(obj, "order"),
		Description: stringField(obj, "description"),
		Lists:       stringList(obj, "lists"),
		Examples:    stringList(obj, "examples"),
		Images:      parseImages(obj),
	}, nil
}

func parseImages(obj map[string]any) []types.Image {
	arr, ok := arrayField(obj, "images")
	if !ok {
		return nil
	}
	images := make([]types.Image, 0, len(arr))
	for _, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		images = append(images, types.Image{
			Filename: stringField(m, "filename"),
			Caption:  stringField(m, "caption"),
		})
	}
	return images
}
