package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// tty.go implements spec.md §4.6/§4.7's terminal handoff: a foreground
// job's process group becomes the controlling terminal's foreground
// group for the duration of its run, then the shell reclaims it.

// transferTerminal hands the controlling terminal to pgid, ignoring the
// error when stdin is not a terminal (script mode, or tests).
func (sh *Shell) transferTerminal(pgid int) {
	_ = unix.IoctlSetPointerInt(int(os.Stdin.Fd()), unix.TIOCSPGRP, pgid)
}

// restoreTerminal reclaims the controlling terminal for the shell's own
// process group.
func (sh *Shell) restoreTerminal() {
	pgid, err := unix.Getpgid(os.Getpid())
	if err != nil {
		return
	}
	_ = unix.IoctlSetPointerInt(int(os.Stdin.Fd()), unix.TIOCSPGRP, pgid)
}

// isTerminal reports whether f is connected to a terminal, used by the
// shell driver to select interactive vs. script mode (spec.md §4.7).
func isTerminal(f *os.File) bool {
	_, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	return err == nil
}
