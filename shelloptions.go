package main

import (
	"io"
)

// ShellOption is a functional option that configures a Shell at
// construction time.
type ShellOption interface{ apply(sh *Shell) }

// ShellOptions flattens a list of options (including nested ShellOptions
// slices) into a single option.
func ShellOptions(opts ...ShellOption) ShellOption {
	var res shellOptionList
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noShellOption:
		case shellOptionList:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noShellOption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noShellOption struct{}

func (noShellOption) apply(*Shell) {}

type shellOptionList []ShellOption

func (opts shellOptionList) apply(sh *Shell) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(sh)
		}
	}
}

// WithInteractive marks the shell as driving an interactive REPL rather
// than a script (spec.md §4.7). It is what the `interactive?` builtin
// reports; prompt rendering does not depend on it, and Main recomputes it
// from stdin when no script file is set.
func WithInteractive(b bool) ShellOption { return interactiveOption(b) }

type interactiveOption bool

func (o interactiveOption) apply(sh *Shell) { sh.interactive = bool(o) }

// WithLogOutput installs out as the shell's diagnostic log stream (default
// os.Stderr).
func WithLogOutput(out io.WriteCloser) ShellOption { return logOutputOption{out} }

type logOutputOption struct{ out io.WriteCloser }

func (o logOutputOption) apply(sh *Shell) { sh.Log.SetOutput(o.out) }

// WithLineSource overrides the default bufio.Scanner-backed LineSource,
// e.g. with a github.com/chzyer/readline-backed implementation (readline_source.go).
func WithLineSource(ls LineSource) ShellOption { return lineSourceOption{ls} }

type lineSourceOption struct{ ls LineSource }

func (o lineSourceOption) apply(sh *Shell) { sh.lineSource = o.ls }

// WithColorizer overrides the default no-op Colorizer, e.g. with a
// github.com/fatih/color-backed implementation (colorizer.go).
func WithColorizer(c Colorizer) ShellOption { return colorizerOption{c} }

type colorizerOption struct{ c Colorizer }

func (o colorizerOption) apply(sh *Shell) { sh.colorizer = o.c }

// WithStdin/WithStdout/WithStderr rebind the shell's standard File values,
// used by tests to run scripts against in-memory buffers.
func WithStdin(f *FileHandle) ShellOption { return stdFileOption{0, f} }
func WithStdout(f *FileHandle) ShellOption { return stdFileOption{1, f} }
func WithStderr(f *FileHandle) ShellOption { return stdFileOption{2, f} }

type stdFileOption struct {
	which int
	f     *FileHandle
}

func (o stdFileOption) apply(sh *Shell) {
	switch o.which {
	case 0:
		sh.stdin = o.f
	case 1:
		sh.stdout = o.f
	case 2:
		sh.stderr = o.f
	}
}

// WithTrace enables TRACE-level dispatch logging (the `-trace` flag),
// mirroring the teacher's own `-trace` knob but scoped to builtin dispatch
// rather than VM opcode stepping.
func WithTrace(b bool) ShellOption { return traceOption(b) }

type traceOption bool

func (o traceOption) apply(sh *Shell) { sh.trace = bool(o) }

// WithNoRC disables loading /etc/eshrc and $HOME/.eshrc at startup (the
// `-norc` flag).
func WithNoRC(b bool) ShellOption { return noRCOption(b) }

type noRCOption bool

func (o noRCOption) apply(sh *Shell) { sh.noRC = bool(o) }

// WithScriptFile sets the path loaded by Main when stdin is not a terminal
// or -f is given, instead of reading stdin (the `-f file` flag).
func WithScriptFile(path string) ShellOption { return scriptFileOption(path) }

type scriptFileOption string

func (o scriptFileOption) apply(sh *Shell) { sh.scriptFile = string(o) }
