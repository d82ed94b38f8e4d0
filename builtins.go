package main

// builtins.go wires every builtin-installer file into a fresh Shell's
// table (spec.md §4.5's "roughly 90 items"). Kept as a single aggregator
// so each concern (arithmetic, control flow, stack, data, environment,
// files, strings, jobs, misc) lives in its own file, mirroring how the
// rest of this pack splits a large builtin/command surface by concern.
func installBuiltins(sh *Shell) {
	installArithBuiltins(sh)
	installControlBuiltins(sh)
	installStackBuiltins(sh)
	installDataBuiltins(sh)
	installEnvBuiltins(sh)
	installFileBuiltins(sh)
	installStringBuiltins(sh)
	installJobBuiltins(sh)
	installMiscBuiltins(sh)
}
