package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// driver.go implements spec.md §4.7: the interactive REPL loop, script-mode
// loading, and shell startup (builtins are installed in New; here we seed
// the local stack from argv, run the two rc files, then dispatch to
// whichever mode stdin calls for).

// Main runs esh against scriptArgs (os.Args[1:]) and returns the process
// exit code.
func (sh *Shell) Main(scriptArgs []string) int {
	sh.installSignals()
	sh.seedArgsOnStack(scriptArgs)
	if !sh.noRC {
		sh.runRCFiles()
	}

	if sh.scriptFile == "" {
		sh.interactive = isTerminal(os.Stdin)
	}

	if sh.interactive {
		sh.replLoop()
	} else {
		data, err := sh.readAllStdinOrFile()
		if err != nil {
			sh.Log.Errorf("esh: %v", err)
			return 1
		}
		if err := sh.RunScriptBuffer(data); err != nil {
			sh.Log.Errorf("esh: %v", err)
		}
	}
	return int(sh.ExitCode())
}

func (sh *Shell) readAllStdinOrFile() (string, error) {
	if sh.scriptFile != "" {
		data, err := os.ReadFile(sh.scriptFile)
		return string(data), err
	}
	return ioReadAllStdin()
}

func ioReadAllStdin() (string, error) {
	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err != nil {
			break
		}
	}
	return string(buf), nil
}

func (sh *Shell) seedArgsOnStack(args []string) {
	for i := len(args) - 1; i >= 0; i-- {
		sh.PushLocal(String(args[i]))
	}
}

func (sh *Shell) runRCFiles() {
	sh.runRCFile("/etc/eshrc")
	if home := os.Getenv("HOME"); home != "" {
		sh.runRCFile(filepath.Join(home, ".eshrc"))
	}
}

func (sh *Shell) runRCFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return // missing rc files are silently ignored, per spec.md §4.7
	}
	if err := sh.RunScriptBuffer(string(data)); err != nil {
		sh.Log.Errorf("esh: %s: %v", path, err)
	}
}

// replLoop implements spec.md §4.7's interactive REPL state machine.
func (sh *Shell) replLoop() {
	defer sh.lineSource.Close()
	for !sh.Halted() {
		sh.ClearSigint()
		sh.funeral()

		prompt := sh.renderPrompt()
		line, ok := sh.lineSource.ReadLine(prompt)
		if !ok {
			return
		}

		v, err := sh.parseTopLevel(line)
		if err != nil {
			sh.Log.Errorf("esh: %v", err)
			continue
		}
		if !v.IsVoid() {
			fmt.Fprintf(sh.stdout.WriteFD(), "=>\n%s\n", v.Print())
		}
	}
}

// parseTopLevel dispatches a REPL line to the S-expression parser or the
// pipeline parser depending on whether it opens with '(' (spec.md §4.3:
// "a top-level line that does not start with '(' is instead parsed as a
// fancy pipeline").
func (sh *Shell) parseTopLevel(line string) (Value, error) {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ', '\t':
			continue
		case '(':
			return sh.ParsePlain(line)
		default:
			return sh.ParseFancy(line)
		}
	}
	return Void, nil
}

// renderPrompt evaluates the `prompt` global and squishes it, falling
// back to "$ " when unset (spec.md §4.7 step 2).
func (sh *Shell) renderPrompt() string {
	if sh.Prompt.IsVoid() {
		return sh.colorizer.Prompt("$ ")
	}
	return sh.colorizer.Prompt(sh.Eval(sh.Prompt).Squish())
}

// RunScriptBuffer splits data into balanced top-level S-expressions and
// evaluates each in turn, reaping between forms (spec.md §4.7 "Script
// mode").
func (sh *Shell) RunScriptBuffer(data string) error {
	for _, form := range splitBalancedForms(data) {
		if sh.Halted() {
			return nil
		}
		if _, err := sh.ParsePlain(form); err != nil {
			return err
		}
		sh.funeral()
	}
	return nil
}

// splitBalancedForms scans data for a sequence of top-level "(...)" forms,
// tracking paren depth and quote state (spec.md §4.7: "consumes until
// paren depth returns to 0 outside a quote"). Leading whitespace/comments
// between forms are skipped.
func splitBalancedForms(data string) []string {
	var forms []string
	i := 0
	n := len(data)
	for i < n {
		for i < n && (isSpaceByte(data[i]) || data[i] == '#') {
			if data[i] == '#' {
				for i < n && data[i] != '\n' {
					i++
				}
			} else {
				i++
			}
		}
		if i >= n {
			break
		}
		start := i
		depth := 0
		var quote byte
		for i < n {
			c := data[i]
			switch {
			case quote != 0:
				if c == quote {
					quote = 0
				}
			case c == '"' || c == '\'':
				quote = c
			case c == '(':
				depth++
			case c == ')':
				depth--
			}
			i++
			if depth == 0 && quote == 0 && i > start {
				break
			}
		}
		forms = append(forms, data[start:i])
	}
	return forms
}

func isSpaceByte(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
