package main

// parse_plain.go implements spec.md §4.2, the S-expression parser. Plain
// mode fuses parsing and evaluation: whenever a nested, non-quoted
// sub-expression is parsed, it is
// dispatched as a command immediately and its result spliced into the
// surrounding argument list (the "pass-through rule"); a '~'/'$'-prefixed
// sub-expression is instead captured as an unevaluated List child tagged
// with a delay count, for later forcing via Eval (eval.go).

// ParsePlain parses and, for the non-literal top level, evaluates one
// complete "(name arg ...)" expression from buf. It is the entry point used
// by the REPL for lines beginning with '(' and by script-mode loading.
func (sh *Shell) ParsePlain(buf string) (Value, error) {
	lx := NewLexer(buf, false)
	v, err := sh.parseExpr(lx, false, 0)
	if err != nil {
		return Void, err
	}
	if !lx.AtEOF() {
		return Void, parseError{"extraneous characters after command"}
	}
	return v, nil
}

// ParseQuoted parses buf as a single literal (never-evaluated) value tree,
// backing the `parse` builtin (spec.md §4.5).
func (sh *Shell) ParseQuoted(buf string) (Value, error) {
	lx := NewLexer(buf, false)
	return sh.parseExpr(lx, true, 0)
}

func (sh *Shell) parseExpr(lx *Lexer, literal bool, delay int) (Value, error) {
	tok, err := lx.Next()
	if err != nil {
		return Void, err
	}
	if tok.kind != tokOpen {
		return Void, parseError{"commands should always use parentheses"}
	}
	return sh.parseBody(lx, literal, delay)
}

// parseBody parses the children of an already-opened '(' up to its
// matching ')'. When literal is false, a command is dispatched as soon as
// its closing paren is reached, and the result is what's returned.
func (sh *Shell) parseBody(lx *Lexer, literal bool, delay int) (Value, error) {
	var children []Value
	for {
		tok, err := lx.Next()
		if err != nil {
			return Void, err
		}
		switch tok.kind {
		case tokEOF:
			return Void, parseError{"no closing parentheses"}

		case tokClose:
			if literal {
				return List(children...), nil
			}
			return sh.Dispatch(children), nil

		case tokOpen:
			sub, err := sh.parseBody(lx, literal, delay)
			if err != nil {
				return Void, err
			}
			children = sh.passThrough(children, sub, literal, delay)

		case tokDelay:
			d := delay + 1
			for {
				tok2, err := lx.Next()
				if err != nil {
					return Void, err
				}
				if tok2.kind == tokDelay {
					d++
					continue
				}
				if tok2.kind != tokOpen {
					return Void, parseError{"delay symbol ('~' or '$') must be followed by '('"}
				}
				break
			}
			sub, err := sh.parseBody(lx, true, d)
			if err != nil {
				return Void, err
			}
			children = append(children, sub.WithDelay(d))

		case tokWord:
			children = append(children, String(tok.text))

		default:
			return Void, parseError{"unexpected special character in command position"}
		}
	}
}

// passThrough implements spec.md §4.2's "pass-through rule": a literal
// (quoted) sub-expression is appended whole, tagged with the current delay;
// a non-literal one was already dispatched by parseBody above, so its
// result is spliced (Void discarded, List results flattened one level).
func (sh *Shell) passThrough(children []Value, sub Value, literal bool, delay int) []Value {
	if literal {
		return append(children, sub.WithDelay(delay))
	}
	return spliceValue(children, sub)
}

func spliceValue(children []Value, v Value) []Value {
	if v.IsVoid() {
		return children
	}
	if v.IsList() {
		return append(children, v.List()...)
	}
	return append(children, v)
}
