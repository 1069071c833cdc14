// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

// Package registry indexes emitted declaration blocks by name.
package registry

import (
	"sort"
	"sync"

	"github.com/api2lua/api2lua/internal/emit"
)

// Entry is a declaration block together with the section it came from.
type Entry struct {
	Section string
	Block   emit.Block
}

// Registry stores declaration blocks by declared name for lookups.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// FromSections builds a registry holding every block of sections.
func FromSections(sections []emit.Section) *Registry {
	r := New()
	r.AddSections(sections)
	return r
}

// Add stores a block under its name, replacing any previous entry.
func (r *Registry) Add(section string, block emit.Block) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[block.Name] = Entry{Section: section, Block: block}
}

// AddSections stores every block of sections.
func (r *Registry) AddSections(sections []emit.Section) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range sections {
		for _, b := range s.Blocks {
			r.entries[b.Name] = Entry{Section: s.Name, Block: b}
		}
	}
}

// Get returns the entry declared under name.
func (r *Registry) Get(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	return e, ok
}

// Has checks if name is declared.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[name]
	return ok
}

// Names returns all declared names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InSection returns the sorted names declared in section.
func (r *Registry) InSection(section string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name, e := range r.entries {
		if e.Section == section {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Count returns the number of declared names.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Clear removes all entries.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]Entry)
}
