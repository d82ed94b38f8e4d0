package main

import (
	"github.com/chzyer/readline"
)

// readlineSource adapts github.com/chzyer/readline to the LineSource
// interface, giving an interactive session history and basic line editing
// without the interpreter core depending on it directly (spec.md §6).
type readlineSource struct {
	rl *readline.Instance
}

// NewReadlineSource opens a readline.Instance with the given history file
// (empty disables history persistence). Callers should prefer this over
// the default scanner-based LineSource only when stdin is a terminal.
func NewReadlineSource(historyFile string) (LineSource, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile: historyFile,
	})
	if err != nil {
		return nil, wrapResourceError("readline init", err)
	}
	return &readlineSource{rl: rl}, nil
}

func (r *readlineSource) ReadLine(prompt string) (string, bool) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err != nil {
		return "", false
	}
	return line, true
}

func (r *readlineSource) Close() error { return r.rl.Close() }
