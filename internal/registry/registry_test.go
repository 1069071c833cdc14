// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api2lua/api2lua/internal/emit"
)

func testSections() []emit.Section {
	return []emit.Section{
		{Name: emit.SectionClasses, Blocks: []emit.Block{
			{Name: "LuaEntity", Lines: []string{"---@class LuaEntity"}},
			{Name: "LuaInventory", Lines: []string{"---@class LuaInventory"}},
		}},
		{Name: emit.SectionDefines, Blocks: []emit.Block{
			{Name: "defines.direction", Lines: []string{"---@class defines.direction"}},
		}},
	}
}

func TestNew(t *testing.T) {
	r := New()
	require.NotNil(t, r)
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_FromSections(t *testing.T) {
	r := FromSections(testSections())

	assert.Equal(t, 3, r.Count())
	assert.True(t, r.Has("LuaEntity"))
	assert.False(t, r.Has("LuaPlayer"))

	e, ok := r.Get("defines.direction")
	require.True(t, ok)
	assert.Equal(t, emit.SectionDefines, e.Section)
	assert.Equal(t, []string{"---@class defines.direction"}, e.Block.Lines)
}

func TestRegistry_Names(t *testing.T) {
	r := FromSections(testSections())
	assert.Equal(t, []string{"LuaEntity", "LuaInventory", "defines.direction"}, r.Names())
	assert.Equal(t, []string{"LuaEntity", "LuaInventory"}, r.InSection(emit.SectionClasses))
	assert.Empty(t, r.InSection(emit.SectionEvents))
}

func TestRegistry_AddReplaces(t *testing.T) {
	r := New()
	r.Add(emit.SectionClasses, emit.Block{Name: "A", Lines: []string{"old"}})
	r.Add(emit.SectionConcepts, emit.Block{Name: "A", Lines: []string{"new"}})

	e, ok := r.Get("A")
	require.True(t, ok)
	assert.Equal(t, emit.SectionConcepts, e.Section)
	assert.Equal(t, []string{"new"}, e.Block.Lines)
	assert.Equal(t, 1, r.Count())
}

func TestRegistry_Clear(t *testing.T) {
	r := FromSections(testSections())
	r.Clear()
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.AddSections(testSections())
			_ = r.Names()
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, r.Count())
}
