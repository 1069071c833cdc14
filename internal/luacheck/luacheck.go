// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

// Package luacheck validates generated Lua definition files using tree-sitter.
package luacheck

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/lua"

	"github.com/api2lua/api2lua/internal/util"
)

// SyntaxError is a location the Lua grammar could not parse.
type SyntaxError struct {
	// Line is the 1-based source line
	Line int

	// Column is the 1-based source column
	Column int

	// Missing is set when tree-sitter inserted a missing token
	Missing bool

	// Text is the offending source text, truncated to one line
	Text string
}

func (e SyntaxError) String() string {
	if e.Missing {
		return fmt.Sprintf("%d:%d: missing %s", e.Line, e.Column, e.Text)
	}
	return fmt.Sprintf("%d:%d: unexpected %q", e.Line, e.Column, e.Text)
}

// ValidationError is returned when Lua source contains syntax errors.
type ValidationError struct {
	Path   string
	Errors []SyntaxError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, se := range e.Errors {
		parts = append(parts, se.String())
	}
	name := e.Path
	if name == "" {
		name = "<source>"
	}
	return fmt.Sprintf("%s: invalid Lua: %s", name, strings.Join(parts, "; "))
}

// Checker parses Lua source with the tree-sitter Lua grammar.
// A Checker is not safe for concurrent use.
type Checker struct {
	parser *sitter.Parser
}

// New creates a new Checker.
func New() *Checker {
	parser := sitter.NewParser()
	parser.SetLanguage(lua.GetLanguage())
	return &Checker{parser: parser}
}

// Check parses content and returns every syntax error location.
func (c *Checker) Check(ctx context.Context, content []byte) ([]SyntaxError, error) {
	tree, err := c.parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Lua: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("failed to get root node")
	}
	if !root.HasError() {
		return nil, nil
	}

	var errs []SyntaxError
	walkNodes(root, func(node *sitter.Node) bool {
		switch {
		case node.IsMissing():
			errs = append(errs, syntaxError(node, content, true))
			return false
		case node.IsError():
			errs = append(errs, syntaxError(node, content, false))
			return false
		}
		return node.HasError()
	})
	return errs, nil
}

// Validate checks content and returns a *ValidationError if it is not
// valid Lua.
func (c *Checker) Validate(ctx context.Context, path string, content []byte) error {
	errs, err := c.Check(ctx, content)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return &ValidationError{Path: path, Errors: errs}
	}
	return nil
}

// ValidateFile reads and validates a Lua file from disk.
func (c *Checker) ValidateFile(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return c.Validate(ctx, path, content)
}

// Close cleans up parser resources.
func (c *Checker) Close() {
	if c.parser != nil {
		c.parser.Close()
	}
}

func syntaxError(node *sitter.Node, content []byte, missing bool) SyntaxError {
	start := node.StartPoint()
	text := node.Type()
	if !missing {
		text = util.Truncate(node.Content(content), 40)
	}
	return SyntaxError{
		Line:    int(start.Row) + 1,
		Column:  int(start.Column) + 1,
		Missing: missing,
		Text:    text,
	}
}

// walkNodes walks all nodes in the tree, calling fn for each node.
// If fn returns false, it stops recursing into that node's children.
func walkNodes(node *sitter.Node, fn func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		walkNodes(node.Child(i), fn)
	}
}
