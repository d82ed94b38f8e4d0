package main

import "strconv"

// builtins_arith.go covers spec.md §4.5's numeric/string operators:
// arithmetic is base-10 over 32-bit wrap-on-overflow integers, matching
// Value.AsInt32 (value.go); a missing divisor defaults to 1.

func installArithBuiltins(sh *Shell) {
	sh.registerBuiltin(&Builtin{Name: "+", Sig: "S", Desc: "sum its arguments", Fn: func(sh *Shell, args []Value) Value {
		var sum int32
		for _, a := range args {
			sum += a.AsInt32()
		}
		return String(strconv.FormatInt(int64(sum), 10))
	}})
	sh.registerBuiltin(&Builtin{Name: "-", Sig: "S", Desc: "subtract arguments left to right", Fn: func(sh *Shell, args []Value) Value {
		acc := args[0].AsInt32()
		for _, a := range args[1:] {
			acc -= a.AsInt32()
		}
		return String(strconv.FormatInt(int64(acc), 10))
	}})
	sh.registerBuiltin(&Builtin{Name: "*", Sig: "S", Desc: "multiply its arguments", Fn: func(sh *Shell, args []Value) Value {
		acc := int32(1)
		for _, a := range args {
			acc *= a.AsInt32()
		}
		return String(strconv.FormatInt(int64(acc), 10))
	}})
	sh.registerBuiltin(&Builtin{Name: "/", Sig: "S", Desc: "divide arguments left to right", Fn: func(sh *Shell, args []Value) Value {
		acc := args[0].AsInt32()
		for _, a := range args[1:] {
			d := a.AsInt32()
			if d == 0 {
				d = 1
			}
			acc /= d
		}
		return String(strconv.FormatInt(int64(acc), 10))
	}})
	sh.registerBuiltin(&Builtin{Name: "<", Sig: "ss", Desc: "numeric less-than", Fn: func(sh *Shell, args []Value) Value {
		return Bool(args[0].AsInt32() < args[1].AsInt32())
	}})
	sh.registerBuiltin(&Builtin{Name: ">", Sig: "ss", Desc: "numeric greater-than", Fn: func(sh *Shell, args []Value) Value {
		return Bool(args[0].AsInt32() > args[1].AsInt32())
	}})
	sh.registerBuiltin(&Builtin{Name: "=", Sig: "ss", Desc: "string equality", Fn: func(sh *Shell, args []Value) Value {
		return Bool(args[0].Str() == args[1].Str())
	}})
}
