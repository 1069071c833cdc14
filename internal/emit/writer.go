// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/api2lua/api2lua/internal/apidoc"
	"github.com/api2lua/api2lua/pkg/types"
)

// Output formats.
const (
	FormatLua  = "lua"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Writer writes documents as Lua annotations or as model dumps.
type Writer struct {
	// Indent specifies the indentation for JSON output (default: 2 spaces)
	Indent int

	emitter *Emitter
	title   cases.Caser
}

// NewWriter creates a new Writer.
func NewWriter(opts Options) *Writer {
	return &Writer{
		Indent:  2,
		emitter: NewEmitter(opts),
		title:   cases.Title(language.English),
	}
}

// Sections returns the declaration sections of doc.
func (w *Writer) Sections(doc *apidoc.Document) []Section {
	switch {
	case doc.Runtime != nil:
		return w.emitter.Runtime(doc.Runtime)
	case doc.Prototype != nil:
		return w.emitter.Prototype(doc.Prototype)
	default:
		return nil
	}
}

// WriteLua writes doc as a Lua language server definition file.
func (w *Writer) WriteLua(doc *apidoc.Document, out io.Writer) error {
	var sb strings.Builder
	sb.WriteString("---@meta\n")
	sb.WriteString(header(doc.Info()))
	sb.WriteString("\n")

	for _, section := range w.Sections(doc) {
		sb.WriteString("\n")
		sb.WriteString(w.banner(section.Name))
		for _, block := range section.Blocks {
			sb.WriteString("\n")
			sb.WriteString(strings.Join(block.Lines, "\n"))
			sb.WriteString("\n")
		}
	}

	if _, err := io.WriteString(out, sb.String()); err != nil {
		return fmt.Errorf("failed to write Lua: %w", err)
	}
	return nil
}

// LuaString returns the Lua definition text of doc.
func (w *Writer) LuaString(doc *apidoc.Document) (string, error) {
	var buf strings.Builder
	if err := w.WriteLua(doc, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func header(info types.DocumentInfo) string {
	parts := []string{"--"}
	for _, p := range []string{info.Application, info.ApplicationVersion, string(info.Stage)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, "API")
	if info.APIVersion > 0 {
		parts = append(parts, fmt.Sprintf("v%d", info.APIVersion))
	}
	return strings.Join(parts, " ") + "\n"
}

func (w *Writer) banner(section string) string {
	return "-- " + w.title.String(section) + "\n"
}

// WriteYAML writes the parsed model of doc as YAML.
func (w *Writer) WriteYAML(doc *apidoc.Document, out io.Writer) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(model(doc)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// WriteJSON writes the parsed model of doc as JSON.
func (w *Writer) WriteJSON(doc *apidoc.Document, out io.Writer) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", w.Indent))

	if err := encoder.Encode(model(doc)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func model(doc *apidoc.Document) any {
	if doc.Runtime != nil {
		return doc.Runtime
	}
	return doc.Prototype
}

// Write writes doc to out in the given format.
func (w *Writer) Write(doc *apidoc.Document, out io.Writer, format string) error {
	switch strings.ToLower(format) {
	case FormatLua, "":
		return w.WriteLua(doc, out)
	case FormatYAML, "yml":
		return w.WriteYAML(doc, out)
	case FormatJSON:
		return w.WriteJSON(doc, out)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// WriteFile writes doc to path. If format is empty, it is inferred from
// the file extension.
func (w *Writer) WriteFile(doc *apidoc.Document, path string, format string) error {
	if format == "" {
		format = FormatFromPath(path)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return w.Write(doc, file, format)
}

// FormatFromPath infers an output format from a file extension.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatLua
	}
}

// OutputName returns the file name used for doc in an output directory.
func OutputName(doc *apidoc.Document, format string) string {
	ext := format
	if ext == "" {
		ext = FormatLua
	}
	stage := string(doc.Stage)
	if stage == "" {
		stage = "api"
	}
	return stage + "." + ext
}
