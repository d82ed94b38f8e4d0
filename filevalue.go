package main

import (
	"os"
	"sync/atomic"
)

// FileHandle is the shared, reference-counted backing of a File value. It
// carries two OS file descriptors -- a read side and a write side -- which
// may be the same fd (a plain file opened for both directions) or distinct
// (a pipe-backed "string file", spec.md §4.5 file-open mode "string").
//
// The source used a GC refcount trick to know when to close these fds;
// spec.md §9 asks for "the target language's standard shared-ownership
// primitive" instead, so FileHandle carries an explicit atomic refcount
// that Value.Copy/Release increment and decrement.
type FileHandle struct {
	refs  int32
	rfd   *os.File
	wfd   *os.File
	owned bool // false for stdin/stdout/stderr singletons, which are never closed
}

// NewFileHandle wraps a pair of file descriptors (which may be identical)
// into a fresh FileHandle with no references yet; the first FileValue call
// that wraps it brings the refcount to 1.
func NewFileHandle(r, w *os.File, owned bool) *FileHandle {
	return &FileHandle{refs: 0, rfd: r, wfd: w, owned: owned}
}

func (f *FileHandle) retain() {
	if f != nil {
		atomic.AddInt32(&f.refs, 1)
	}
}

// release drops one reference, closing the underlying fds on the last
// release according to spec.md §5's exemption rules: fd[0] is closed unless
// it is stdin or the process-wide stderr-handler fd; fd[1] is closed unless
// it is stdout/stderr, equal to fd[0] (already closed above), or the
// stderr-handler fd.
func (f *FileHandle) release() {
	if f == nil {
		return
	}
	if atomic.AddInt32(&f.refs, -1) > 0 {
		return
	}
	if !f.owned {
		return
	}
	stderrFD := uintptr(atomic.LoadInt64(&stderrHandlerFD))
	if f.rfd != nil && f.rfd != os.Stdin && f.rfd.Fd() != stderrFD {
		f.rfd.Close()
	}
	if f.wfd != nil && f.wfd != f.rfd && f.wfd != os.Stdout && f.wfd != os.Stderr && f.wfd.Fd() != stderrFD {
		f.wfd.Close()
	}
}

// stderrHandlerFD is the process-wide fd installed by the `stderr-handler`
// builtin (spec.md §4.5); it is exempt from the close-on-last-release rule
// above, matching spec.md §5's "Shared resources" bullet.
var stderrHandlerFD int64 = int64(os.Stderr.Fd())

func setStderrHandlerFD(fd uintptr) { atomic.StoreInt64(&stderrHandlerFD, int64(fd)) }
func getStderrHandlerFD() uintptr   { return uintptr(atomic.LoadInt64(&stderrHandlerFD)) }

// ReadFD/WriteFD expose the raw descriptors for dup2 wiring in the pipeline
// engine (pipeline.go).
func (f *FileHandle) ReadFD() *os.File  { return f.rfd }
func (f *FileHandle) WriteFD() *os.File { return f.wfd }

// ProcValue is the payload of a Process value: a PID, linked to the Job
// record that owns it when a background `run` created it (spec.md §3.1).
// alive? probes the PID (procalive.go) whether or not Job is set, and
// `wait` takes a job index rather than a Process value.
type ProcValue struct {
	PID int
	Job *Job // nil for a process not tracked as a job (e.g. a bare leaf pid)
}
