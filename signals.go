package main

import (
	"os"
	"os/signal"
	"syscall"
)

// signals.go implements spec.md §5's interactive signal disposition: SIGINT
// sets the shell's exception flag (honored between iterations by the while
// and repeat loops); SIGQUIT/SIGTSTP/SIGTTIN/SIGTTOU are ignored so the
// shell itself never stops; SIGCHLD is handled separately by reaper.go.

// installSignals wires the shell's own disposition and starts the SIGCHLD
// reaper. It should be called once, before the REPL loop starts; children
// restore all of this to SIG_DFL via kill.PrepareForChildren (pipeline.go).
func (sh *Shell) installSignals() {
	sh.reaper = newReaper(sh)

	signal.Ignore(syscall.SIGQUIT, syscall.SIGTSTP, syscall.SIGTTIN, syscall.SIGTTOU)

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, syscall.SIGINT)
	go func() {
		for range sigint {
			sh.SetSigint()
		}
	}()
}
