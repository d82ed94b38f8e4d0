package main

// builtins_control.go covers spec.md §4.5's control-flow and sequencing
// builtins. Each accepts either already-evaluated arguments (the common
// case, since the fused parser in parse_plain.go dispatches nested
// expressions eagerly) or still-quoted (delayed) List arguments, which are
// forced on demand via Shell.Force -- see eval.go's doc comment on why a
// single Force call reconciles both forms.

func installControlBuiltins(sh *Shell) {
	sh.registerBuiltin(&Builtin{Name: "if", Sig: "???", Desc: "cond then else", Fn: func(sh *Shell, args []Value) Value {
		cond := sh.Force(args[0])
		if cond.IsFalse() {
			return sh.Force(args[2])
		}
		return sh.Force(args[1])
	}})

	sh.registerBuiltin(&Builtin{Name: "while", Sig: "ll*", Desc: "cond body args...", Fn: func(sh *Shell, args []Value) Value {
		cond, body, extra := args[0], args[1], args[2:]
		saved := sh.stack
		sh.stack = append([]Value(nil), extra...)
		defer func() { sh.stack = saved }()
		for {
			if sh.haltedOrCancelled() {
				return Void
			}
			r := sh.Eval(cond)
			if r.IsFalse() {
				return Void
			}
			sh.Eval(body)
		}
	}})

	sh.registerBuiltin(&Builtin{Name: "repeat", Sig: "sl*", Desc: "n body args...", Fn: func(sh *Shell, args []Value) Value {
		n := args[0].AsInt32()
		body, extra := args[1], args[2:]
		saved := sh.stack
		sh.stack = append([]Value(nil), extra...)
		defer func() { sh.stack = saved }()
		var last Value
		for i := int32(0); i < n; i++ {
			if sh.haltedOrCancelled() {
				break
			}
			last = sh.Eval(body)
		}
		return last
	}})

	sh.registerBuiltin(&Builtin{Name: "and", Sig: "?*", Desc: "short-circuiting logical and", Fn: func(sh *Shell, args []Value) Value {
		var last Value = True
		for _, a := range args {
			last = sh.Force(a)
			if last.IsFalse() {
				return False
			}
		}
		return last
	}})

	sh.registerBuiltin(&Builtin{Name: "or", Sig: "?*", Desc: "short-circuiting logical or", Fn: func(sh *Shell, args []Value) Value {
		for _, a := range args {
			v := sh.Force(a)
			if !v.IsFalse() {
				return v
			}
		}
		return False
	}})

	sh.registerBuiltin(&Builtin{Name: "not", Sig: "b", Desc: "logical negation", Fn: func(sh *Shell, args []Value) Value {
		return Bool(args[0].IsFalse())
	}})

	sh.registerBuiltin(&Builtin{Name: "begin-last", Sig: "?*", Desc: "evaluate args in order, return the last", Fn: func(sh *Shell, args []Value) Value {
		var last Value
		for _, a := range args {
			last = sh.Force(a)
		}
		return last
	}})
}

// haltedOrCancelled reports whether a running loop builtin should stop:
// either `exit` was requested or SIGINT set the exception flag (spec.md
// §5, "Cancellation").
func (sh *Shell) haltedOrCancelled() bool {
	return sh.Halted() || sh.sigintPending()
}
