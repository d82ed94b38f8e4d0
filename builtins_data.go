package main

import "strconv"

// builtins_data.go covers spec.md §4.5's list and hash-table primitives.

func installDataBuiltins(sh *Shell) {
	sh.registerBuiltin(&Builtin{Name: "list", Sig: "*", Desc: "wrap arguments into one list", Fn: func(sh *Shell, args []Value) Value {
		return List(append([]Value(nil), args...)...)
	}})

	sh.registerBuiltin(&Builtin{Name: "unlist", Sig: "l", Desc: "splice a list's elements", Fn: func(sh *Shell, args []Value) Value {
		return List(args[0].List()...)
	}})

	sh.registerBuiltin(&Builtin{Name: "car", Sig: "l", Desc: "first element of a list", Fn: func(sh *Shell, args []Value) Value {
		l := args[0].List()
		if len(l) == 0 {
			return Void
		}
		return l[0]
	}})

	sh.registerBuiltin(&Builtin{Name: "cdr", Sig: "l", Desc: "list minus its first element", Fn: func(sh *Shell, args []Value) Value {
		l := args[0].List()
		if len(l) == 0 {
			return List()
		}
		return List(l[1:]...)
	}})

	sh.registerBuiltin(&Builtin{Name: "car-l", Sig: "l", Desc: "first element, wrapped in a one-element list", Fn: func(sh *Shell, args []Value) Value {
		l := args[0].List()
		if len(l) == 0 {
			return List()
		}
		return List(l[0])
	}})

	sh.registerBuiltin(&Builtin{Name: "l-cdr", Sig: "l", Desc: "length of cdr", Fn: func(sh *Shell, args []Value) Value {
		l := args[0].List()
		n := len(l) - 1
		if n < 0 {
			n = 0
		}
		return String(strconv.Itoa(n))
	}})

	sh.registerBuiltin(&Builtin{Name: "reverse", Sig: "l", Desc: "reverse a list", Fn: func(sh *Shell, args []Value) Value {
		l := args[0].List()
		out := make([]Value, len(l))
		for i, v := range l {
			out[len(l)-1-i] = v
		}
		return List(out...)
	}})

	sh.registerBuiltin(&Builtin{Name: "null?", Sig: "?", Desc: "true iff the argument is empty", Fn: func(sh *Shell, args []Value) Value {
		return Bool(isEmptyValue(args[0]))
	}})

	sh.registerBuiltin(&Builtin{Name: "not-null?", Sig: "?", Desc: "true iff the argument is non-empty", Fn: func(sh *Shell, args []Value) Value {
		return Bool(!isEmptyValue(args[0]))
	}})

	sh.registerBuiltin(&Builtin{Name: "hash-make", Sig: "", Desc: "create an empty hash table", Fn: func(sh *Shell, args []Value) Value {
		return HashValue(NewHashTable())
	}})

	sh.registerBuiltin(&Builtin{Name: "hash-get", Sig: "hs", Desc: "look up a key", Fn: func(sh *Shell, args []Value) Value {
		return args[0].Hash().Get(args[1].Str())
	}})

	sh.registerBuiltin(&Builtin{Name: "hash-put", Sig: "hs?", Desc: "store a value under a key", Fn: func(sh *Shell, args []Value) Value {
		args[0].Hash().Put(args[1].Str(), args[2])
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "hash-del", Sig: "hs", Desc: "remove a key", Fn: func(sh *Shell, args []Value) Value {
		args[0].Hash().Del(args[1].Str())
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "hash-keys", Sig: "h", Desc: "list a hash table's keys", Fn: func(sh *Shell, args []Value) Value {
		return List(args[0].Hash().Keys()...)
	}})

	sh.registerBuiltin(&Builtin{Name: "alias-hash", Sig: "", Desc: "return the alias table as a hash", Fn: func(sh *Shell, args []Value) Value {
		h := NewHashTable()
		for k, v := range sh.Aliases {
			h.Put(k, v)
		}
		return HashValue(h)
	}})
}

func isEmptyValue(v Value) bool {
	switch v.Kind() {
	case KindList:
		return len(v.List()) == 0
	case KindString:
		return v.Str() == ""
	case KindHash:
		return v.Hash().Len() == 0
	case KindVoid:
		return true
	default:
		return false
	}
}
