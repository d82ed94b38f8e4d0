package main

import (
	"os"
	"sync/atomic"

	"github.com/jcorbin/esh/internal/logio"
)

// Builtin is one entry of the shell's builtin table: a name, a signature
// string checked per signature.go, a one-line help description shown in
// the usage banner on a type error, and the Go function implementing it.
type Builtin struct {
	Name string
	Sig  string
	Desc string
	Fn   func(sh *Shell, args []Value) Value

	sig []sigItem
}

// Shell is the interpreter's environment: the builtin table, the mutable
// alias/define/global tables, the local argument stack used by defines, the
// prompt value, the job table, and the ambient collaborators (logging,
// line input, colorizing) that spec.md §6 keeps behind small interfaces.
type Shell struct {
	Builtins map[string]*Builtin
	Aliases  map[string]Value
	Defines  map[string]Value

	stack []Value // local argument stack visible to a running define's body

	Prompt Value

	Jobs   *JobTable
	reaper *reaper

	Log *logio.Logger

	stdin  *FileHandle
	stdout *FileHandle
	stderr *FileHandle

	lineSource LineSource
	colorizer  Colorizer

	interactive bool
	exitCode    int32
	halted      int32
	sigint      int32
	trace       bool
	noRC        bool
	scriptFile  string
}

// SetSigint/ClearSigint/sigintPending implement spec.md §5's "exception
// flag": SIGINT sets it asynchronously (signals.go's signal goroutine),
// loop builtins poll it between iterations, and the REPL clears it before
// reading each new top-level form.
func (sh *Shell) SetSigint()          { atomic.StoreInt32(&sh.sigint, 1) }
func (sh *Shell) ClearSigint()        { atomic.StoreInt32(&sh.sigint, 0) }
func (sh *Shell) sigintPending() bool { return atomic.LoadInt32(&sh.sigint) != 0 }

// New builds a Shell with its builtin table installed and applies opts,
// following the functional-options pattern used throughout the pack (see
// shelloptions.go for ShellOption's concrete types).
func New(opts ...ShellOption) *Shell {
	sh := &Shell{
		Builtins: make(map[string]*Builtin),
		Aliases:  make(map[string]Value),
		Defines:  make(map[string]Value),
		Jobs:     NewJobTable(),
		Log:      &logio.Logger{},
	}
	sh.Log.SetOutput(nopWriteCloser{os.Stderr})
	sh.stdin = NewFileHandle(os.Stdin, os.Stdin, false)
	sh.stdout = NewFileHandle(os.Stdout, os.Stdout, false)
	sh.stderr = NewFileHandle(os.Stderr, os.Stderr, false)
	sh.lineSource = newDefaultLineSource(os.Stdin)
	sh.colorizer = noopColorizer{}
	installBuiltins(sh)
	ShellOptions(opts...).apply(sh)
	return sh
}

// registerBuiltin compiles b's signature once and installs it; a bad
// signature string is a programmer error in installBuiltins, so it panics
// rather than threading an error through every call site.
func (sh *Shell) registerBuiltin(b *Builtin) {
	items, err := parseSignature(b.Sig)
	if err != nil {
		panic("esh: bad builtin signature for " + b.Name + ": " + err.Error())
	}
	b.sig = items
	sh.Builtins[b.Name] = b
}

// Dispatch resolves children[0] as a command name against the builtin
// table, then the define table, and invokes it with children[1:] as
// arguments (spec.md §4.3, "Builtin dispatch"). An unrecognized or
// non-string head is a runtime error: logged, and Void is returned so
// evaluation can continue.
func (sh *Shell) Dispatch(children []Value) Value {
	if len(children) == 0 {
		return Void
	}
	head := children[0]
	args := children[1:]
	if !head.IsString() {
		sh.Log.Errorf("esh: command position must be a string, got %v", head.Kind())
		return Void
	}
	name := head.Str()

	if sh.trace {
		sh.Log.Printf("TRACE", "dispatch %s %v", name, args)
	}

	if b, ok := sh.Builtins[name]; ok {
		if err := checkSignature(b.sig, args); err != nil {
			sh.reportTypeError(b, err)
			return Void
		}
		return b.Fn(sh, args)
	}
	if body, ok := sh.Defines[name]; ok {
		return sh.callDefine(body, args)
	}
	sh.Log.Errorf("esh: unknown command %q", name)
	return Void
}

func (sh *Shell) reportTypeError(b *Builtin, err error) {
	sh.Log.Errorf("esh: %s", err.Error())
	sh.Log.Printf("usage", "%s", sh.colorizer.Error(usageBanner(b)))
}

// callDefine runs a user-defined command's stored body with args installed
// as its local stack (spec.md §4.5 "define"/"push"/"pop"/"top"/"stack").
func (sh *Shell) callDefine(body Value, args []Value) Value {
	saved := sh.stack
	sh.stack = append([]Value(nil), args...)
	defer func() { sh.stack = saved }()
	return sh.Eval(body)
}

// PushLocal/PopLocal/TopLocal/LocalStack back the push/pop/top/stack/
// l-stack builtins (spec.md §4.5).
func (sh *Shell) PushLocal(v Value) { sh.stack = append(sh.stack, v.Copy()) }

func (sh *Shell) PopLocal() (Value, bool) {
	if len(sh.stack) == 0 {
		return Void, false
	}
	v := sh.stack[len(sh.stack)-1]
	sh.stack = sh.stack[:len(sh.stack)-1]
	return v, true
}

func (sh *Shell) TopLocal() (Value, bool) {
	if len(sh.stack) == 0 {
		return Void, false
	}
	return sh.stack[len(sh.stack)-1], true
}

func (sh *Shell) LocalStack() []Value { return sh.stack }

// RequestExit implements the `exit` builtin: it records an exit code and
// sets the halt flag, which the driver's REPL/script loop polls after
// every top-level form (spec.md §4.7).
func (sh *Shell) RequestExit(code int32) {
	atomic.StoreInt32(&sh.exitCode, code)
	atomic.StoreInt32(&sh.halted, 1)
}

func (sh *Shell) Halted() bool  { return atomic.LoadInt32(&sh.halted) != 0 }
func (sh *Shell) ExitCode() int32 { return atomic.LoadInt32(&sh.exitCode) }

func (sh *Shell) Interactive() bool { return sh.interactive }

type nopWriteCloser struct{ w *os.File }

func (n nopWriteCloser) Write(p []byte) (int, error) { return n.w.Write(p) }
func (n nopWriteCloser) Close() error                { return nil }
