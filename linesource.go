package main

import (
	"bufio"
	"io"
)

// LineSource is the REPL's line-reading collaborator, kept behind a small
// interface since interactive line-editing is explicitly out of scope for
// the interpreter core itself (spec.md §6): a script driver never needs
// more than bufio.Scanner, while an interactive terminal may want history
// and completion via github.com/chzyer/readline (see readlineSource below).
type LineSource interface {
	// ReadLine returns the next input line (without its trailing newline)
	// and true, or ("", false) at end of input.
	ReadLine(prompt string) (string, bool)
	Close() error
}

// defaultLineSource wraps a bufio.Scanner over os.Stdin; it ignores the
// prompt argument entirely, matching non-interactive script-mode reading.
type defaultLineSource struct{ sc *bufio.Scanner }

func newDefaultLineSource(r io.Reader) *defaultLineSource {
	return &defaultLineSource{sc: bufio.NewScanner(r)}
}

func (d defaultLineSource) ReadLine(prompt string) (string, bool) {
	if d.sc == nil || !d.sc.Scan() {
		return "", false
	}
	return d.sc.Text(), true
}

func (d defaultLineSource) Close() error { return nil }
