package main

import (
	"golang.org/x/sys/unix"

	"github.com/jcorbin/esh/internal/procstat"
)

// processAlive backs the `alive?` builtin (spec.md §4.5). It tries
// /proc/<pid>/stat first (cheap, no signal delivered) and falls back to a
// signal-0 probe when /proc is unavailable, per SPEC_FULL.md §9's Open
// Question resolution.
func processAlive(pid int) bool {
	if alive, err := procstat.Alive(pid); err == nil {
		return alive
	}
	return unix.Kill(pid, 0) == nil
}
