// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package types

// Stage identifies which API a document describes.
type Stage string

const (
	StageRuntime   Stage = "runtime"
	StagePrototype Stage = "prototype"
)

// Event is a runtime event and the payload it carries.
type Event struct {
	MemberBase `yaml:",inline"`

	Data []Parameter `json:"data,omitempty" yaml:"data,omitempty"`

	// Filter names the event filter concept; empty when absent.
	Filter string `json:"filter,omitempty" yaml:"filter,omitempty"`
}

// GlobalObject is a global variable exposed to scripts.
type GlobalObject struct {
	Name        string   `json:"name" yaml:"name"`
	Order       int      `json:"order" yaml:"order"`
	Description string   `json:"description" yaml:"description"`
	Type        TypeExpr `json:"type" yaml:"type"`
}

// DocumentInfo carries the header shared by every API document.
type DocumentInfo struct {
	Application        string `json:"application" yaml:"application"`
	ApplicationVersion string `json:"application_version" yaml:"application_version"`
	APIVersion         int    `json:"api_version" yaml:"api_version"`
	Stage              Stage  `json:"stage" yaml:"stage"`
}

// RuntimeDocument is a parsed runtime API reference.
type RuntimeDocument struct {
	DocumentInfo `yaml:",inline"`

	Classes         []Class        `json:"classes" yaml:"classes"`
	Events          []Event        `json:"events" yaml:"events"`
	Concepts        []Concept      `json:"concepts" yaml:"concepts"`
	Defines         []Define       `json:"defines" yaml:"defines"`
	GlobalObjects   []GlobalObject `json:"global_objects" yaml:"global_objects"`
	GlobalFunctions []Method       `json:"global_functions" yaml:"global_functions"`
}

// PrototypeDocument is a parsed prototype API reference.
type PrototypeDocument struct {
	DocumentInfo `yaml:",inline"`

	Prototypes []Prototype `json:"prototypes" yaml:"prototypes"`
	Types      []Concept   `json:"types" yaml:"types"`
}
