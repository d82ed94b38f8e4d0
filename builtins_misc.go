package main

import "os"

// builtins_misc.go covers spec.md §4.5's remaining miscellaneous builtins,
// plus `source` (supplemented per SPEC_FULL.md §4.5).

const (
	versionMajor = "1"
	versionMinor = "0"
	versionPatch = "0"
)

func installMiscBuiltins(sh *Shell) {
	sh.registerBuiltin(&Builtin{Name: "script", Sig: "s", Desc: "load and execute a file as a sequence of S-expressions", Fn: func(sh *Shell, args []Value) Value {
		if err := sh.LoadScript(args[0].Str()); err != nil {
			sh.Log.Errorf("esh: script: %v", err)
		}
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "source", Sig: "s", Desc: "alias for script", Fn: func(sh *Shell, args []Value) Value {
		if err := sh.LoadScript(args[0].Str()); err != nil {
			sh.Log.Errorf("esh: source: %v", err)
		}
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "read", Sig: "s", Desc: "read one line via the configured line source", Fn: func(sh *Shell, args []Value) Value {
		line, ok := sh.lineSource.ReadLine(args[0].Str())
		if !ok {
			return Void
		}
		return String(line)
	}})

	sh.registerBuiltin(&Builtin{Name: "exit", Sig: "*", Desc: "exit the shell with an optional numeric code", Fn: func(sh *Shell, args []Value) Value {
		code := int32(0)
		if len(args) > 0 {
			code = args[0].AsInt32()
		}
		sh.RequestExit(code)
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "version", Sig: "", Desc: "three-element (MAJOR MINOR PATCH) version list", Fn: func(sh *Shell, args []Value) Value {
		return List(String(versionMajor), String(versionMinor), String(versionPatch))
	}})

	sh.registerBuiltin(&Builtin{Name: "interactive?", Sig: "", Desc: "true iff the shell is driving an interactive REPL", Fn: func(sh *Shell, args []Value) Value {
		return Bool(sh.Interactive())
	}})
}

// LoadScript reads path and executes it as a stream of balanced
// S-expressions (spec.md §4.7, "script mode").
func (sh *Shell) LoadScript(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return wrapResourceError("script: open "+path, err)
	}
	return sh.RunScriptBuffer(string(data))
}
