package main

import (
	"os"
	"sort"
	"strings"
)

// builtins_env.go covers spec.md §4.5's environment and alias/define table
// operators.

func installEnvBuiltins(sh *Shell) {
	sh.registerBuiltin(&Builtin{Name: "set", Sig: "ss", Desc: "set an environment variable", Fn: func(sh *Shell, args []Value) Value {
		if err := os.Setenv(args[0].Str(), args[1].Str()); err != nil {
			sh.Log.Errorf("esh: set: %v", err)
		}
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "get", Sig: "s", Desc: "read an environment variable", Fn: func(sh *Shell, args []Value) Value {
		return String(os.Getenv(args[0].Str()))
	}})

	sh.registerBuiltin(&Builtin{Name: "env", Sig: "", Desc: "list NAME=VALUE environment entries", Fn: func(sh *Shell, args []Value) Value {
		entries := os.Environ()
		sort.Strings(entries)
		out := make([]Value, len(entries))
		for i, e := range entries {
			out[i] = String(e)
		}
		return List(out...)
	}})

	sh.registerBuiltin(&Builtin{Name: "cd", Sig: "*", Desc: "change the working directory", Fn: builtinCd})

	sh.registerBuiltin(&Builtin{Name: "alias", Sig: "s*", Desc: "install a token-expansion or body-list alias", Fn: func(sh *Shell, args []Value) Value {
		name := args[0].Str()
		rest := args[1:]
		if len(rest) == 1 && rest[0].IsList() {
			sh.Aliases[name] = rest[0]
		} else {
			words := make([]string, len(rest))
			for i, r := range rest {
				words[i] = r.Squish()
			}
			sh.Aliases[name] = String(strings.Join(words, " "))
		}
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "define", Sig: "sl", Desc: "install a user-defined command", Fn: func(sh *Shell, args []Value) Value {
		sh.Defines[args[0].Str()] = args[1]
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "defined?", Sig: "s", Desc: "true iff name is a builtin, alias, or define", Fn: func(sh *Shell, args []Value) Value {
		name := args[0].Str()
		if _, ok := sh.Builtins[name]; ok {
			return True
		}
		if _, ok := sh.Aliases[name]; ok {
			return True
		}
		if _, ok := sh.Defines[name]; ok {
			return True
		}
		return False
	}})
}

func builtinCd(sh *Shell, args []Value) Value {
	var dir string
	if len(args) == 0 || args[0].Str() == "" {
		dir = os.Getenv("HOME")
	} else if args[0].Str() == "-" {
		dir = os.Getenv("OLDPWD")
	} else {
		dir = args[0].Str()
	}
	prev, err := os.Getwd()
	if err != nil {
		sh.Log.Errorf("esh: cd: %v", err)
		return Void
	}
	if err := os.Chdir(dir); err != nil {
		sh.Log.Errorf("esh: cd: %v", err)
		return Void
	}
	now, err := os.Getwd()
	if err != nil {
		now = dir
	}
	os.Setenv("OLDPWD", prev)
	os.Setenv("PWD", now)
	return Void
}

// resolveAlias expands a leading alias token per spec.md §4.6 step 1: only
// a non-list alias value (a token-expansion alias) is spliced into the
// command's word list; a list-valued alias is the caller's job (§4.3).
func resolveAlias(sh *Shell, words []string) []string {
	if len(words) == 0 {
		return words
	}
	v, ok := sh.Aliases[words[0]]
	if !ok || v.IsList() {
		return words
	}
	expansion := strings.Fields(v.Squish())
	return append(expansion, words[1:]...)
}
