// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

// Package differ compares two versions of an API document.
package differ

import (
	"fmt"
	"sort"
	"strings"

	"github.com/api2lua/api2lua/internal/apidoc"
	"github.com/api2lua/api2lua/internal/render"
	"github.com/api2lua/api2lua/internal/util"
	"github.com/api2lua/api2lua/pkg/types"
)

// DiffType represents the type of change detected.
type DiffType string

const (
	// DiffTypeAdded indicates a new item was added.
	DiffTypeAdded DiffType = "added"

	// DiffTypeRemoved indicates an item was removed.
	DiffTypeRemoved DiffType = "removed"

	// DiffTypeModified indicates an item was modified.
	DiffTypeModified DiffType = "modified"
)

// Entity kinds reported in changes.
const (
	KindClass          = "class"
	KindAttribute      = "attribute"
	KindMethod         = "method"
	KindConcept        = "concept"
	KindDefine         = "define"
	KindEvent          = "event"
	KindGlobalObject   = "global object"
	KindGlobalFunction = "global function"
	KindPrototype      = "prototype"
	KindType           = "type"
)

// Change is a single difference between two documents.
type Change struct {
	Type DiffType

	// Kind is the entity kind, one of the Kind constants.
	Kind string

	// Name is the entity name; members are qualified as Class.member.
	Name string

	Description string
}

// DiffResult contains the differences between two documents.
type DiffResult struct {
	// Changes are sorted by kind, then name.
	Changes []Change

	// HasBreakingChanges indicates if any breaking changes were detected.
	HasBreakingChanges bool

	// Summary provides a human-readable summary of changes.
	Summary string
}

// IsEmpty returns true if there are no differences.
func (d *DiffResult) IsEmpty() bool {
	return len(d.Changes) == 0
}

// Differ compares two API documents.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Diff compares two documents of the same stage.
func (d *Differ) Diff(a, b *apidoc.Document) (*DiffResult, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("cannot diff a nil document")
	}
	if a.Stage != b.Stage {
		return nil, fmt.Errorf("cannot diff %s document against %s document", a.Stage, b.Stage)
	}

	result := &DiffResult{Changes: []Change{}}
	switch {
	case a.Runtime != nil && b.Runtime != nil:
		d.diffRuntime(a.Runtime, b.Runtime, result)
	case a.Prototype != nil && b.Prototype != nil:
		d.diffPrototype(a.Prototype, b.Prototype, result)
	}

	sort.SliceStable(result.Changes, func(i, j int) bool {
		ci, cj := result.Changes[i], result.Changes[j]
		if ci.Kind != cj.Kind {
			return ci.Kind < cj.Kind
		}
		return ci.Name < cj.Name
	})

	result.HasBreakingChanges = d.detectBreakingChanges(result)
	result.Summary = d.generateSummary(result)

	return result, nil
}

func (d *Differ) diffRuntime(a, b *types.RuntimeDocument, result *DiffResult) {
	diffNamed(result, KindClass, a.Classes, b.Classes,
		func(c types.Class) string { return c.Name },
		func(x, y types.Class) bool {
			d.diffClassMembers(x, y, result)
			return x.Parent != y.Parent || x.Abstract != y.Abstract
		})
	diffNamed(result, KindConcept, a.Concepts, b.Concepts,
		func(c types.Concept) string { return c.Name },
		conceptModified)
	diffNamed(result, KindDefine, flattenDefines(a.Defines, "defines"), flattenDefines(b.Defines, "defines"),
		func(f flatDefine) string { return f.name },
		func(x, y flatDefine) bool { return x.values != y.values })
	diffNamed(result, KindEvent, a.Events, b.Events,
		func(e types.Event) string { return e.Name },
		func(x, y types.Event) bool { return parameterFields(x.Data) != parameterFields(y.Data) })
	diffNamed(result, KindGlobalObject, a.GlobalObjects, b.GlobalObjects,
		func(g types.GlobalObject) string { return g.Name },
		func(x, y types.GlobalObject) bool { return render.Render(x.Type) != render.Render(y.Type) })
	diffNamed(result, KindGlobalFunction, a.GlobalFunctions, b.GlobalFunctions,
		func(m types.Method) string { return m.Name },
		func(x, y types.Method) bool { return render.CallableSignature(x) != render.CallableSignature(y) })
}

func (d *Differ) diffPrototype(a, b *types.PrototypeDocument, result *DiffResult) {
	diffNamed(result, KindPrototype, a.Prototypes, b.Prototypes,
		func(p types.Prototype) string { return p.Name },
		func(x, y types.Prototype) bool {
			return x.Parent != y.Parent || x.Typename != y.Typename || propertyFields(x.Properties) != propertyFields(y.Properties)
		})
	diffNamed(result, KindType, a.Types, b.Types,
		func(c types.Concept) string { return c.Name },
		conceptModified)
}

// diffClassMembers records member-level changes of a class present in
// both documents.
func (d *Differ) diffClassMembers(a, b types.Class, result *DiffResult) {
	qualify := func(name string) string { return util.Qualify(a.Name, name) }

	diffNamed(result, KindAttribute, a.Attributes, b.Attributes,
		func(x types.Attribute) string { return qualify(x.Name) },
		func(x, y types.Attribute) bool { return render.AttributeType(x) != render.AttributeType(y) })
	diffNamed(result, KindMethod, a.Methods, b.Methods,
		func(x types.Method) string { return qualify(x.Name) },
		func(x, y types.Method) bool { return render.CallableSignature(x) != render.CallableSignature(y) })
}

// diffNamed matches items by key and records added, removed and modified
// entries.
func diffNamed[T any](result *DiffResult, kind string, a, b []T, key func(T) string, modified func(T, T) bool) {
	aItems := make(map[string]T, len(a))
	for _, item := range a {
		aItems[key(item)] = item
	}
	bItems := make(map[string]T, len(b))
	for _, item := range b {
		bItems[key(item)] = item
	}

	for name, aItem := range aItems {
		bItem, exists := bItems[name]
		if !exists {
			result.Changes = append(result.Changes, Change{
				Type:        DiffTypeRemoved,
				Kind:        kind,
				Name:        name,
				Description: fmt.Sprintf("Removed %s: %s", kind, name),
			})
			continue
		}
		if modified(aItem, bItem) {
			result.Changes = append(result.Changes, Change{
				Type:        DiffTypeModified,
				Kind:        kind,
				Name:        name,
				Description: fmt.Sprintf("Modified %s: %s", kind, name),
			})
		}
	}

	for name := range bItems {
		if _, exists := aItems[name]; !exists {
			result.Changes = append(result.Changes, Change{
				Type:        DiffTypeAdded,
				Kind:        kind,
				Name:        name,
				Description: fmt.Sprintf("Added %s: %s", kind, name),
			})
		}
	}
}

func conceptModified(a, b types.Concept) bool {
	return a.Builtin != b.Builtin ||
		a.Parent != b.Parent ||
		render.Render(a.Type) != render.Render(b.Type) ||
		propertyFields(a.Properties) != propertyFields(b.Properties)
}

func propertyFields(props []types.Property) string {
	fields := make([]string, 0, len(props))
	for _, p := range props {
		fields = append(fields, p.Name+":"+render.Render(p.Type))
	}
	sort.Strings(fields)
	return strings.Join(fields, ",")
}

func parameterFields(params []types.Parameter) string {
	fields := make([]string, 0, len(params))
	for _, p := range params {
		fields = append(fields, p.Name+":"+render.Render(p.Type))
	}
	sort.Strings(fields)
	return strings.Join(fields, ",")
}

type flatDefine struct {
	name   string
	values string
}

// flattenDefines lists every define under its dotted name.
func flattenDefines(defines []types.Define, prefix string) []flatDefine {
	var out []flatDefine
	for _, d := range defines {
		name := util.Qualify(prefix, d.Name)
		values := make([]string, 0, len(d.Values))
		for _, v := range d.Values {
			values = append(values, v.Name)
		}
		sort.Strings(values)
		out = append(out, flatDefine{name: name, values: strings.Join(values, ",")})
		out = append(out, flattenDefines(d.Subkeys, name)...)
	}
	return out
}

// detectBreakingChanges reports removals, which break existing scripts.
func (d *Differ) detectBreakingChanges(result *DiffResult) bool {
	for _, change := range result.Changes {
		if change.Type == DiffTypeRemoved {
			return true
		}
	}
	return false
}

// generateSummary creates a human-readable summary of changes.
func (d *Differ) generateSummary(result *DiffResult) string {
	if result.IsEmpty() {
		return "No changes detected"
	}

	added, removed, modified := 0, 0, 0
	for _, c := range result.Changes {
		switch c.Type {
		case DiffTypeAdded:
			added++
		case DiffTypeRemoved:
			removed++
		case DiffTypeModified:
			modified++
		}
	}

	var parts []string
	if added > 0 {
		parts = append(parts, fmt.Sprintf("%d added", added))
	}
	if removed > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", removed))
	}
	if modified > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", modified))
	}

	summary := strings.Join(parts, ", ")
	if result.HasBreakingChanges {
		summary += " [BREAKING CHANGES DETECTED]"
	}
	return summary
}

// FormatDiff returns a formatted string representation of the diff.
func FormatDiff(result *DiffResult) string {
	if result.IsEmpty() {
		return result.Summary + "\n"
	}

	var sb strings.Builder
	for _, c := range result.Changes {
		marker := "~"
		switch c.Type {
		case DiffTypeAdded:
			marker = "+"
		case DiffTypeRemoved:
			marker = "-"
		}
		fmt.Fprintf(&sb, "%s %s %s\n", marker, c.Kind, c.Name)
	}
	sb.WriteString("\n")
	sb.WriteString(result.Summary)
	sb.WriteString("\n")
	return sb.String()
}
