package main

import "strconv"

// builtins_stack.go covers spec.md §4.5's local stack operators, backed by
// Shell.stack and the PushLocal/PopLocal/TopLocal/LocalStack helpers in
// environment.go.

func installStackBuiltins(sh *Shell) {
	sh.registerBuiltin(&Builtin{Name: "push", Sig: "?", Desc: "push a value onto the local stack", Fn: func(sh *Shell, args []Value) Value {
		sh.PushLocal(args[0])
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "pop", Sig: "", Desc: "pop and return the top of the local stack", Fn: func(sh *Shell, args []Value) Value {
		v, ok := sh.PopLocal()
		if !ok {
			sh.Log.Errorf("esh: pop: stack is empty")
			return Void
		}
		return v
	}})

	sh.registerBuiltin(&Builtin{Name: "top", Sig: "", Desc: "return the top of the local stack without popping", Fn: func(sh *Shell, args []Value) Value {
		v, ok := sh.TopLocal()
		if !ok {
			sh.Log.Errorf("esh: top: stack is empty")
			return Void
		}
		return v
	}})

	sh.registerBuiltin(&Builtin{Name: "rot", Sig: "", Desc: "rotate the top two stack entries", Fn: func(sh *Shell, args []Value) Value {
		n := len(sh.stack)
		if n < 2 {
			sh.Log.Errorf("esh: rot: stack needs at least two entries")
			return Void
		}
		sh.stack[n-1], sh.stack[n-2] = sh.stack[n-2], sh.stack[n-1]
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "stack", Sig: "", Desc: "return the local stack as a list", Fn: func(sh *Shell, args []Value) Value {
		return List(append([]Value(nil), sh.stack...)...)
	}})

	sh.registerBuiltin(&Builtin{Name: "l-stack", Sig: "", Desc: "return the number of entries on the local stack", Fn: func(sh *Shell, args []Value) Value {
		return String(strconv.Itoa(len(sh.stack)))
	}})
}
