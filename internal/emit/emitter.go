// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

// Package emit assembles declaration lines into Lua annotation files.
package emit

import (
	"cmp"
	"slices"

	"github.com/api2lua/api2lua/internal/render"
	"github.com/api2lua/api2lua/internal/util"
	"github.com/api2lua/api2lua/pkg/types"
)

// Section names, in emission order.
const (
	SectionDefines         = "defines"
	SectionConcepts        = "concepts"
	SectionClasses         = "classes"
	SectionEvents          = "events"
	SectionGlobalObjects   = "global objects"
	SectionGlobalFunctions = "global functions"
	SectionPrototypes      = "prototypes"
	SectionTypes           = "types"
)

// AllSections lists every section name.
var AllSections = []string{
	SectionDefines,
	SectionConcepts,
	SectionClasses,
	SectionEvents,
	SectionGlobalObjects,
	SectionGlobalFunctions,
	SectionPrototypes,
	SectionTypes,
}

// Block is the declaration text of one named entity.
type Block struct {
	// Name is the declared name, qualified for nested defines.
	Name string

	// Lines are the annotation lines, without trailing newlines.
	Lines []string
}

// Section groups the blocks of one entity kind.
type Section struct {
	Name   string
	Blocks []Block
}

// Options controls which sections are produced.
type Options struct {
	// Sections restricts output to the named sections; empty means all.
	Sections []string
}

// Emitter turns parsed documents into sections of declaration blocks.
type Emitter struct {
	opts Options
}

// NewEmitter creates an Emitter.
func NewEmitter(opts Options) *Emitter {
	return &Emitter{opts: opts}
}

func (e *Emitter) enabled(section string) bool {
	return len(e.opts.Sections) == 0 || slices.Contains(e.opts.Sections, section)
}

// Runtime returns the non-empty sections of a runtime document.
func (e *Emitter) Runtime(doc *types.RuntimeDocument) []Section {
	var sections []Section
	add := func(name string, build func() []Block) {
		if !e.enabled(name) {
			return
		}
		if blocks := build(); len(blocks) > 0 {
			sections = append(sections, Section{Name: name, Blocks: blocks})
		}
	}

	add(SectionDefines, func() []Block { return DefineBlocks(doc.Defines) })
	add(SectionConcepts, func() []Block { return ConceptBlocks(doc.Concepts) })
	add(SectionClasses, func() []Block { return ClassBlocks(doc.Classes) })
	add(SectionEvents, func() []Block { return EventBlocks(doc.Events) })
	add(SectionGlobalObjects, func() []Block { return GlobalObjectBlocks(doc.GlobalObjects) })
	add(SectionGlobalFunctions, func() []Block { return GlobalFunctionBlocks(doc.GlobalFunctions) })
	return sections
}

// Prototype returns the non-empty sections of a prototype document.
func (e *Emitter) Prototype(doc *types.PrototypeDocument) []Section {
	var sections []Section
	if e.enabled(SectionPrototypes) {
		if blocks := PrototypeBlocks(doc.Prototypes); len(blocks) > 0 {
			sections = append(sections, Section{Name: SectionPrototypes, Blocks: blocks})
		}
	}
	if e.enabled(SectionTypes) {
		if blocks := ConceptBlocks(doc.Types); len(blocks) > 0 {
			sections = append(sections, Section{Name: SectionTypes, Blocks: blocks})
		}
	}
	return sections
}

// byOrder returns a copy of list stably sorted by its display order.
func byOrder[T any](list []T, order func(T) int) []T {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(order(a), order(b))
	})
	return out
}

// DefineBlocks declares the defines table and every nested define as a
// class named by its dotted path.
func DefineBlocks(defines []types.Define) []Block {
	if len(defines) == 0 {
		return nil
	}

	root := Block{Name: "defines", Lines: []string{render.ClassLine("defines")}}
	sorted := byOrder(defines, func(d types.Define) int { return d.Order })
	for _, d := range sorted {
		root.Lines = append(root.Lines, render.FieldLine(d.Name, util.Qualify("defines", d.Name), d.Description))
	}
	root.Lines = append(root.Lines, "defines = {}")

	blocks := []Block{root}
	for _, d := range sorted {
		blocks = appendDefine(blocks, d, util.Qualify("defines", d.Name))
	}
	return blocks
}

func appendDefine(blocks []Block, d types.Define, qualified string) []Block {
	b := Block{Name: qualified, Lines: []string{render.ClassLine(qualified)}}
	for _, v := range byOrder(d.Values, func(v types.DefineValue) int { return v.Order }) {
		b.Lines = append(b.Lines, render.DefineValueField(v))
	}
	subkeys := byOrder(d.Subkeys, func(d types.Define) int { return d.Order })
	for _, sub := range subkeys {
		b.Lines = append(b.Lines, render.FieldLine(sub.Name, util.Qualify(qualified, sub.Name), sub.Description))
	}
	blocks = append(blocks, b)

	for _, sub := range subkeys {
		blocks = appendDefine(blocks, sub, util.Qualify(qualified, sub.Name))
	}
	return blocks
}

// ConceptBlocks declares concepts. Builtin concepts are left to the
// language server. A concept with a type and no properties becomes an alias.
func ConceptBlocks(concepts []types.Concept) []Block {
	var blocks []Block
	for _, c := range byOrder(concepts, func(c types.Concept) int { return c.Order }) {
		if c.Builtin {
			continue
		}
		if c.Type != nil && len(c.Properties) == 0 {
			blocks = append(blocks, Block{Name: c.Name, Lines: []string{render.AliasLine(c.Name, c.Type)}})
			continue
		}
		b := Block{Name: c.Name, Lines: []string{render.ClassDeclaration(c.MemberBase)}}
		b.Lines = append(b.Lines, propertyLines(c.Properties)...)
		blocks = append(blocks, b)
	}
	return blocks
}

// PrototypeBlocks declares prototypes as classes of their properties.
func PrototypeBlocks(prototypes []types.Prototype) []Block {
	var blocks []Block
	for _, p := range byOrder(prototypes, func(p types.Prototype) int { return p.Order }) {
		b := Block{Name: p.Name, Lines: []string{render.ClassDeclaration(p.MemberBase)}}
		b.Lines = append(b.Lines, propertyLines(p.Properties)...)
		blocks = append(blocks, b)
	}
	return blocks
}

func propertyLines(props []types.Property) []string {
	var lines []string
	for _, p := range byOrder(props, func(p types.Property) int { return p.Order }) {
		lines = append(lines, render.PropertyField(p))
	}
	return lines
}

// ClassBlocks declares classes with their attributes and methods.
// Operators have no field form and are not declared.
func ClassBlocks(classes []types.Class) []Block {
	var blocks []Block
	for _, c := range byOrder(classes, func(c types.Class) int { return c.Order }) {
		b := Block{Name: c.Name, Lines: []string{render.ClassDeclaration(c.MemberBase)}}
		for _, a := range byOrder(c.Attributes, func(a types.Attribute) int { return a.Order }) {
			b.Lines = append(b.Lines, render.AttributeField(a))
		}
		for _, m := range byOrder(c.Methods, func(m types.Method) int { return m.Order }) {
			b.Lines = append(b.Lines, render.MethodField(m))
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// EventBlocks declares one payload class per event.
func EventBlocks(events []types.Event) []Block {
	var blocks []Block
	for _, ev := range byOrder(events, func(e types.Event) int { return e.Order }) {
		b := Block{Name: ev.Name, Lines: []string{render.ClassDeclaration(ev.MemberBase)}}
		for _, p := range byOrder(ev.Data, func(p types.Parameter) int { return p.Order }) {
			b.Lines = append(b.Lines, render.ParameterField(p))
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// GlobalObjectBlocks declares typed global variables.
func GlobalObjectBlocks(objects []types.GlobalObject) []Block {
	var blocks []Block
	for _, g := range byOrder(objects, func(g types.GlobalObject) int { return g.Order }) {
		blocks = append(blocks, Block{Name: g.Name, Lines: []string{
			"--- " + render.FirstLine(g.Description),
			"---@type " + render.Render(g.Type),
			g.Name + " = nil",
		}})
	}
	return blocks
}

// GlobalFunctionBlocks declares global functions as typed globals.
func GlobalFunctionBlocks(functions []types.Method) []Block {
	var blocks []Block
	for _, m := range byOrder(functions, func(m types.Method) int { return m.Order }) {
		blocks = append(blocks, Block{Name: m.Name, Lines: []string{
			"--- " + render.FirstLine(m.Description),
			"---@type " + render.CallableSignature(m),
			m.Name + " = nil",
		}})
	}
	return blocks
}
