// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

// Package main is the entry point for the api2lua CLI.
package main

import (
	"fmt"
	"os"

	"github.com/api2lua/api2lua/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
