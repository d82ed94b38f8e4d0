package main

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// builtins_file.go covers spec.md §4.5's file-descriptor operators.

func installFileBuiltins(sh *Shell) {
	sh.registerBuiltin(&Builtin{Name: "file-open", Sig: "ss", Desc: "open a file; modes are file/truncate/append/string", Fn: builtinFileOpen})

	sh.registerBuiltin(&Builtin{Name: "file-read", Sig: "f", Desc: "read whatever is currently available, without blocking", Fn: func(sh *Shell, args []Value) Value {
		return fileReadN(sh, args[0].File(), true)
	}})

	sh.registerBuiltin(&Builtin{Name: "file-read-block", Sig: "f", Desc: "read until EOF, blocking as needed", Fn: func(sh *Shell, args []Value) Value {
		return fileReadN(sh, args[0].File(), false)
	}})

	sh.registerBuiltin(&Builtin{Name: "file-write", Sig: "fs", Desc: "write a string to a file", Fn: func(sh *Shell, args []Value) Value {
		f := args[0].File()
		if f.WriteFD() == nil {
			sh.Log.Errorf("esh: file-write: file is not writable")
			return Void
		}
		if _, err := f.WriteFD().WriteString(args[1].Str()); err != nil {
			sh.Log.Errorf("esh: file-write: %v", err)
		}
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "file-type", Sig: "s", Desc: "describe what kind of file a path names", Fn: func(sh *Shell, args []Value) Value {
		fi, err := os.Lstat(args[0].Str())
		if err != nil {
			return False
		}
		return String(fileTypeName(fi.Mode()))
	}})

	sh.registerBuiltin(&Builtin{Name: "standard", Sig: "", Desc: "return the standard input/output file", Fn: func(sh *Shell, args []Value) Value {
		return FileValue(NewFileHandle(sh.stdin.ReadFD(), sh.stdout.WriteFD(), false))
	}})

	sh.registerBuiltin(&Builtin{Name: "stderr", Sig: "", Desc: "return the standard error file", Fn: func(sh *Shell, args []Value) Value {
		return FileValue(sh.stderr)
	}})

	sh.registerBuiltin(&Builtin{Name: "stderr-handler", Sig: "f", Desc: "redirect the process-wide stderr fd used by future children", Fn: func(sh *Shell, args []Value) Value {
		f := args[0].File()
		if f.WriteFD() != nil {
			setStderrHandlerFD(f.WriteFD().Fd())
		}
		return Void
	}})
}

func builtinFileOpen(sh *Shell, args []Value) Value {
	mode, name := args[0].Str(), args[1].Str()
	var f *FileHandle
	switch firstByte(mode) {
	case 'f':
		fh, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE, 0644)
		if err != nil {
			sh.Log.Errorf("esh: file-open: %v", err)
			return Void
		}
		f = NewFileHandle(fh, fh, true)
	case 't':
		fh, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			sh.Log.Errorf("esh: file-open: %v", err)
			return Void
		}
		f = NewFileHandle(fh, fh, true)
	case 'a':
		fh, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			sh.Log.Errorf("esh: file-open: %v", err)
			return Void
		}
		f = NewFileHandle(fh, fh, true)
	case 's':
		r, w, err := os.Pipe()
		if err != nil {
			sh.Log.Errorf("esh: file-open: %v", err)
			return Void
		}
		if _, err := w.WriteString(name); err != nil {
			sh.Log.Errorf("esh: file-open: %v", err)
		}
		f = NewFileHandle(r, w, true)
	default:
		sh.Log.Errorf("esh: file-open: don't know how to open a file using %q", mode)
		return Void
	}
	return FileValue(f)
}

func firstByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}

// fileReadN reads whatever is available from f's read side. When
// nonBlocking is true the descriptor is switched to O_NONBLOCK for the
// duration of the read (file-read); otherwise it blocks to EOF
// (file-read-block), matching the two builtins' contract in spec.md §4.5.
func fileReadN(sh *Shell, f *FileHandle, nonBlocking bool) Value {
	rf := f.ReadFD()
	if rf == nil {
		sh.Log.Errorf("esh: file-read: file is not readable")
		return Void
	}
	if nonBlocking {
		if err := unix.SetNonblock(int(rf.Fd()), true); err == nil {
			defer unix.SetNonblock(int(rf.Fd()), false)
		}
		buf := make([]byte, 65536)
		n, err := rf.Read(buf)
		if err != nil && err != io.EOF && !isWouldBlock(err) {
			sh.Log.Errorf("esh: file-read: %v", err)
		}
		return String(string(buf[:n]))
	}
	data, err := io.ReadAll(rf)
	if err != nil {
		sh.Log.Errorf("esh: file-read-block: %v", err)
	}
	return String(string(data))
}

func isWouldBlock(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}

func fileTypeName(mode os.FileMode) string {
	switch {
	case mode&os.ModeSymlink != 0:
		return "link"
	case mode&os.ModeDir != 0:
		return "directory"
	case mode&os.ModeCharDevice != 0:
		return "character"
	case mode&os.ModeDevice != 0:
		return "block"
	case mode&os.ModeNamedPipe != 0:
		return "pipe"
	case mode&os.ModeSocket != 0:
		return "socket"
	case mode.IsRegular():
		return "regular"
	default:
		return "regular"
	}
}
