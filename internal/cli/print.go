// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/api2lua/api2lua/internal/apidoc"
	"github.com/api2lua/api2lua/internal/emit"
	"github.com/api2lua/api2lua/internal/registry"
)

var (
	printList    bool
	printSection string
)

var printCmd = &cobra.Command{
	Use:   "print <file> [names...]",
	Short: "Print Lua declarations to stdout",
	Long: `Print the Lua declarations of an API document to standard output.

With only a file, the whole definition file is printed in the selected
format. With names, only the declaration blocks of those entities are
printed. Nested defines are named by their dotted path.

This is useful for piping the output to other tools or for quick inspection.

Example:
  api2lua print runtime-api.json                       # Print the whole file
  api2lua print runtime-api.json LuaEntity LuaSurface  # Print two classes
  api2lua print runtime-api.json defines.direction     # Print one define
  api2lua print runtime-api.json --list                # List declared names
  api2lua print runtime-api.json --list --section events
  api2lua print -f yaml runtime-api.json               # Print the parsed model`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPrint,
}

func init() {
	printCmd.Flags().BoolVarP(&printList, "list", "l", false, "list declared names instead of printing declarations")
	printCmd.Flags().StringVar(&printSection, "section", "", "restrict --list to one section")
}

func runPrint(cmd *cobra.Command, args []string) error {
	doc, err := apidoc.ReadFile(args[0])
	if err != nil {
		return err
	}

	writer := emit.NewWriter(emit.Options{})
	names := args[1:]

	if len(names) == 0 && !printList {
		outputFormat := format
		if outputFormat == "" {
			outputFormat = emit.FormatLua
		}
		log.Debugw("printing document", "format", outputFormat)
		return writer.Write(doc, stdout, outputFormat)
	}

	reg := registry.FromSections(writer.Sections(doc))
	log.Debugw("indexed declarations", "count", reg.Count())

	if printList {
		listed := reg.Names()
		if printSection != "" {
			listed = reg.InSection(printSection)
		}
		for _, name := range listed {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	var missing []string
	blocks := make([]string, 0, len(names))
	for _, name := range names {
		entry, ok := reg.Get(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		blocks = append(blocks, strings.Join(entry.Block.Lines, "\n")+"\n")
	}
	fmt.Fprint(stdout, strings.Join(blocks, "\n"))

	if len(missing) > 0 {
		return fmt.Errorf("not declared in %s: %s", args[0], strings.Join(missing, ", "))
	}
	return nil
}
