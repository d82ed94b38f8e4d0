package main

import "strconv"

// parse_fancy.go implements spec.md §4.3's pipeline-mode parser
// (`parse_pipe`): the grammar used for a top-level line that does not
// begin with '(' -- "cmd1 , cmd2 , … [< infile][> outfile]", where '|'
// separates commands just as ',' does.

// ParseFancy parses and runs a single pipeline line.
func (sh *Shell) ParseFancy(line string) (Value, error) {
	lx := NewLexer(line, true)

	var runs [][]Value
	var run []Value
	var infile, outfile string
	var sawIn, sawOut bool

	for {
		tok, err := lx.Next()
		if err != nil {
			return Void, err
		}
		switch tok.kind {
		case tokEOF:
			if len(run) > 0 {
				runs = append(runs, run)
			}
			return sh.finishPipeline(runs, infile, outfile, sawIn, sawOut)

		case tokWord:
			run = append(run, String(tok.text))

		case tokComma, tokPipe:
			runs = append(runs, run)
			run = nil

		case tokLT:
			if sawIn {
				return Void, parseError{"repeated '<' redirection"}
			}
			sawIn = true
			name, err := sh.readRedirectTarget(lx)
			if err != nil {
				return Void, err
			}
			infile = name

		case tokGT:
			if sawOut {
				return Void, parseError{"repeated '>' redirection"}
			}
			sawOut = true
			name, err := sh.readRedirectTarget(lx)
			if err != nil {
				return Void, err
			}
			outfile = name

		default:
			return Void, parseError{"unexpected special character in pipeline"}
		}
	}
}

func (sh *Shell) readRedirectTarget(lx *Lexer) (string, error) {
	tok, err := lx.Next()
	if err != nil {
		return "", err
	}
	if tok.kind != tokWord {
		return "", parseError{"redirection target missing"}
	}
	return tok.text, nil
}

// finishPipeline implements spec.md §4.3 steps 3-4: a single alias-to-list
// run is evaluated as a define-style call; otherwise the pipeline engine
// is invoked with opened redirections.
func (sh *Shell) finishPipeline(runs [][]Value, infile, outfile string, sawIn, sawOut bool) (Value, error) {
	if len(runs) == 1 && len(runs[0]) > 0 && runs[0][0].IsString() {
		if alias, ok := sh.Aliases[runs[0][0].Str()]; ok && alias.IsList() {
			return sh.callDefine(alias, runs[0][1:]), nil
		}
	}

	src, closeSrc, err := sh.openRedirect(infile, sawIn, true)
	if err != nil {
		return Void, err
	}
	if closeSrc != nil {
		defer closeSrc()
	}
	sink, closeSink, err := sh.openRedirect(outfile, sawOut, false)
	if err != nil {
		return Void, err
	}
	if closeSink != nil {
		defer closeSink()
	}

	job, err := sh.RunPipeline(src, sink, runs, false, false)
	if err != nil {
		return Void, err
	}
	return String(strconv.Itoa(exitStatus(job))), nil
}

func (sh *Shell) openRedirect(name string, present, forRead bool) (*FileHandle, func(), error) {
	if !present {
		if forRead {
			return sh.stdin, nil, nil
		}
		return sh.stdout, nil, nil
	}
	mode := "file"
	if !forRead {
		mode = "truncate"
	}
	v := builtinFileOpen(sh, []Value{String(mode), String(name)})
	if !v.IsFile() {
		return nil, nil, newRuntimeError("could not open redirection target %q", name)
	}
	f := v.File()
	return f, func() { f.release() }, nil
}
