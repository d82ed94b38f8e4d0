package main

import (
	"fmt"
	"regexp"
)

// builtins_string.go covers spec.md §4.5's string/text operators: match,
// split, parse, squish, chars, filter, typecheck, plus printf/print
// (supplemented per SPEC_FULL.md §4.5).

func installStringBuiltins(sh *Shell) {
	sh.registerBuiltin(&Builtin{Name: "match", Sig: "ss", Desc: "POSIX extended regex match", Fn: func(sh *Shell, args []Value) Value {
		re, err := regexp.CompilePOSIX(args[0].Str())
		if err != nil {
			sh.Log.Errorf("esh: match: %v", err)
			return False
		}
		return Bool(re.MatchString(args[1].Str()))
	}})

	sh.registerBuiltin(&Builtin{Name: "split", Sig: "sS", Desc: "split a string on the union of its separator arguments", Fn: builtinSplit})

	sh.registerBuiltin(&Builtin{Name: "parse", Sig: "s", Desc: "tokenize and parse a string without executing it", Fn: func(sh *Shell, args []Value) Value {
		v, err := sh.ParseQuoted(args[0].Str())
		if err != nil {
			sh.Log.Errorf("esh: parse: %v", err)
			return Void
		}
		return v
	}})

	sh.registerBuiltin(&Builtin{Name: "squish", Sig: "*", Desc: "concatenate all string leaves into one string", Fn: func(sh *Shell, args []Value) Value {
		return String(List(args...).Squish())
	}})

	sh.registerBuiltin(&Builtin{Name: "chars", Sig: "s", Desc: "list of one-character strings", Fn: func(sh *Shell, args []Value) Value {
		s := args[0].Str()
		out := make([]Value, 0, len(s))
		for _, r := range s {
			out = append(out, String(string(r)))
		}
		return List(out...)
	}})

	sh.registerBuiltin(&Builtin{Name: "filter", Sig: "sl", Desc: "run body once per character of s, with the char on the stack, squishing the results", Fn: func(sh *Shell, args []Value) Value {
		s, body := args[0].Str(), args[1]
		saved := sh.stack
		var sb []Value
		for _, r := range s {
			sh.stack = []Value{String(string(r))}
			sb = append(sb, sh.Eval(body))
		}
		sh.stack = saved
		return String(List(sb...).Squish())
	}})

	sh.registerBuiltin(&Builtin{Name: "typecheck", Sig: "s*", Desc: "true iff the remaining args do NOT match the given signature", Fn: func(sh *Shell, args []Value) Value {
		items, err := parseSignature(args[0].Str())
		if err != nil {
			sh.Log.Errorf("esh: typecheck: %v", err)
			return True
		}
		return Bool(checkSignature(items, args[1:]) != nil)
	}})

	sh.registerBuiltin(&Builtin{Name: "printf", Sig: "s*", Desc: "printf-style formatted write to standard output", Fn: func(sh *Shell, args []Value) Value {
		vals := make([]interface{}, len(args)-1)
		for i, a := range args[1:] {
			vals[i] = a.Squish()
		}
		fmt.Fprintf(sh.stdout.WriteFD(), args[0].Str(), vals...)
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "print", Sig: "*", Desc: "write args' squished text, newline-terminated, to standard output", Fn: func(sh *Shell, args []Value) Value {
		fmt.Fprintln(sh.stdout.WriteFD(), List(args...).Squish())
		return Void
	}})
}

// builtinSplit implements spec.md §4.1's `split` contract: the lexer's
// override-special-set is installed with the union of seps' bytes, and
// word/separator tokens are read alternately until EOF.
func builtinSplit(sh *Shell, args []Value) Value {
	s := args[0].Str()
	seps := " \t\n"
	if len(args) > 1 {
		seps = ""
		for _, a := range args[1:] {
			seps += a.Str()
		}
	}
	lx := NewLexer(s, false).WithOverrideSpecials(seps)
	var out []Value
	for {
		start := lx.pos
		for lx.pos < len(s) && !lx.isSpecial(s[lx.pos]) {
			lx.pos++
		}
		if lx.pos > start {
			out = append(out, String(s[start:lx.pos]))
		}
		if lx.pos >= len(s) {
			break
		}
		c := s[lx.pos]
		lx.pos++
		if c != 0 {
			out = append(out, String(string(c)))
		}
	}
	return List(out...)
}
