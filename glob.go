package main

import "path/filepath"

// globNoCheck expands a shell word using path/filepath.Glob (POSIX glob
// semantics) with GLOB_NOCHECK behavior: when the pattern contains no
// glob metacharacters, or matches nothing, the literal word survives
// unchanged (spec.md §4.6 step 2). No example repo in the pack wires a
// third-party glob library, so this is one of the few stdlib-only pieces;
// see DESIGN.md.
func globNoCheck(word string) []string {
	if !hasGlobMeta(word) {
		return []string{word}
	}
	matches, err := filepath.Glob(word)
	if err != nil || len(matches) == 0 {
		return []string{word}
	}
	return matches
}

func hasGlobMeta(s string) bool {
	for _, r := range s {
		switch r {
		case '*', '?', '[':
			return true
		}
	}
	return false
}
