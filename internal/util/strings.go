// SPDX-FileCopyrightText: 2026 api2lua
// SPDX-License-Identifier: FSL-1.1-MIT

// Package util provides shared string helpers.
package util

import (
	"fmt"
	"strings"
)

// Plural formats a count with the singular or plural noun.
// For example: Plural(1, "class", "classes") returns "1 class".
func Plural(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// Truncate shortens s to at most max runes, cutting at the first newline.
func Truncate(s string, max int) string {
	s, _, _ = strings.Cut(s, "\n")
	s = strings.TrimRight(s, "\r")
	runes := []rune(s)
	if max >= 0 && len(runes) > max {
		return string(runes[:max])
	}
	return s
}

// Qualify joins non-empty name parts with dots.
// For example: Qualify("defines", "inventory", "chest") returns
// "defines.inventory.chest".
func Qualify(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ".")
}
