// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package apidoc

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/api2lua/api2lua/pkg/types"
)

// Document is a decoded API document of either stage. Exactly one of
// Runtime and Prototype is set.
type Document struct {
	// Path is the file the document was read from, if any.
	Path string

	Stage     types.Stage
	Runtime   *types.RuntimeDocument
	Prototype *types.PrototypeDocument
}

// Info returns the shared document header.
func (d *Document) Info() types.DocumentInfo {
	if d.Runtime != nil {
		return d.Runtime.DocumentInfo
	}
	if d.Prototype != nil {
		return d.Prototype.DocumentInfo
	}
	return types.DocumentInfo{Stage: d.Stage}
}

// ParseEvent builds an Event.
func ParseEvent(obj map[string]any) (types.Event, error) {
	return parseEvent(obj, rootPath("event", obj))
}

func parseEvent(obj map[string]any, path string) (types.Event, error) {
	base, err := parseMemberBase(obj, path)
	if err != nil {
		return types.Event{}, err
	}
	data, err := parseList(obj, "data", path, parseParameter)
	if err != nil {
		return types.Event{}, err
	}
	return types.Event{
		MemberBase: base,
		Data:       data,
		Filter:     stringField(obj, "filter"),
	}, nil
}

// ParseGlobalObject builds a GlobalObject. The type is required.
func ParseGlobalObject(obj map[string]any) (types.GlobalObject, error) {
	return parseGlobalObject(obj, rootPath("global_object", obj))
}

func parseGlobalObject(obj map[string]any, path string) (types.GlobalObject, error) {
	name, err := requireString(obj, "name", path)
	if err != nil {
		return types.GlobalObject{}, err
	}
	typ, err := parseTypeField(obj, "type", path)
	if err != nil {
		return types.GlobalObject{}, err
	}
	return types.GlobalObject{
		Name:        name,
		Order:       intField(obj, "order"),
		Description: stringField(obj, "description"),
		Type:        typ,
	}, nil
}

func parseDocumentInfo(obj map[string]any) types.DocumentInfo {
	return types.DocumentInfo{
		Application:        stringField(obj, "application"),
		ApplicationVersion: stringField(obj, "application_version"),
		APIVersion:         intField(obj, "api_version"),
		Stage:              types.Stage(stringField(obj, "stage")),
	}
}

// ParseRuntimeDocument builds a RuntimeDocument. Every list is non-nil.
func ParseRuntimeDocument(obj map[string]any) (*types.RuntimeDocument, error) {
	doc := &types.RuntimeDocument{DocumentInfo: parseDocumentInfo(obj)}
	var err error

	if doc.Classes, err = parseList(obj, "classes", "", parseClass); err != nil {
		return nil, err
	}
	if doc.Events, err = parseList(obj, "events", "", parseEvent); err != nil {
		return nil, err
	}
	if doc.Concepts, err = parseList(obj, "concepts", "", parseConcept); err != nil {
		return nil, err
	}
	if doc.Defines, err = parseList(obj, "defines", "", parseDefine); err != nil {
		return nil, err
	}
	if doc.GlobalObjects, err = parseList(obj, "global_objects", "", parseGlobalObject); err != nil {
		return nil, err
	}
	if doc.GlobalFunctions, err = parseList(obj, "global_functions", "", parseMethod); err != nil {
		return nil, err
	}

	doc.Classes = nonNil(doc.Classes)
	doc.Events = nonNil(doc.Events)
	doc.Concepts = nonNil(doc.Concepts)
	doc.Defines = nonNil(doc.Defines)
	doc.GlobalObjects = nonNil(doc.GlobalObjects)
	doc.GlobalFunctions = nonNil(doc.GlobalFunctions)
	return doc, nil
}

// ParsePrototypeDocument builds a PrototypeDocument. Every list is non-nil.
func ParsePrototypeDocument(obj map[string]any) (*types.PrototypeDocument, error) {
	doc := &types.PrototypeDocument{DocumentInfo: parseDocumentInfo(obj)}
	var err error

	if doc.Prototypes, err = parseList(obj, "prototypes", "", parsePrototype); err != nil {
		return nil, err
	}
	if doc.Types, err = parseList(obj, "types", "", parseConcept); err != nil {
		return nil, err
	}

	doc.Prototypes = nonNil(doc.Prototypes)
	doc.Types = nonNil(doc.Types)
	return doc, nil
}

// Decode parses raw JSON and dispatches on the document's stage field.
func Decode(data []byte) (*Document, error) {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return FromObject(obj)
}

// FromObject builds a Document from an already decoded JSON object.
func FromObject(obj map[string]any) (*Document, error) {
	stage := types.Stage(stringField(obj, "stage"))
	doc := &Document{Stage: stage}

	var err error
	switch stage {
	case types.StageRuntime:
		doc.Runtime, err = ParseRuntimeDocument(obj)
	case types.StagePrototype:
		doc.Prototype, err = ParsePrototypeDocument(obj)
	default:
		return nil, fmt.Errorf("unsupported document stage %q", stage)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ReadFile reads and decodes an API document from disk.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}
