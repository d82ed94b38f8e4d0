package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"syscall"
	"time"
)

// builtins_job.go covers spec.md §4.5/§4.6's job-control builtins, built
// on pipeline.go's RunPipeline and job.go's JobTable.

func installJobBuiltins(sh *Shell) {
	sh.registerBuiltin(&Builtin{Name: "run", Sig: "bffL", Desc: "run a pipeline with the given background flag and endpoint files", Fn: func(sh *Shell, args []Value) Value {
		background := !args[0].IsFalse()
		src, sink := args[1].File(), args[2].File()
		cmds := toCmdLists(args[3:])
		job, err := sh.RunPipeline(src, sink, cmds, background, false)
		if err != nil {
			sh.Log.Errorf("esh: run: %v", err)
			return Void
		}
		if background {
			return ProcessValue(&ProcValue{PID: job.PGID, Job: job})
		}
		return String(strconv.Itoa(exitStatus(job)))
	}})

	sh.registerBuiltin(&Builtin{Name: "run-simple", Sig: "L", Desc: "(run false stdio stdio …)", Fn: func(sh *Shell, args []Value) Value {
		cmds := toCmdLists(args)
		job, err := sh.RunPipeline(sh.stdin, sh.stdout, cmds, false, false)
		if err != nil {
			sh.Log.Errorf("esh: run-simple: %v", err)
			return Void
		}
		return String(strconv.Itoa(exitStatus(job)))
	}})

	sh.registerBuiltin(&Builtin{Name: "gobble", Sig: "fL", Desc: "run a pipeline, capturing its stdout into a string", Fn: func(sh *Shell, args []Value) Value {
		return sh.gobble(args[0].File(), args[1:], false)
	}})

	sh.registerBuiltin(&Builtin{Name: "gobble-errors", Sig: "fL", Desc: "run a pipeline, capturing its stdout into a string; stderr is not captured", Fn: func(sh *Shell, args []Value) Value {
		return sh.gobble(args[0].File(), args[1:], true)
	}})

	sh.registerBuiltin(&Builtin{Name: "fg", Sig: "*", Desc: "bring a background job to the foreground", Fn: func(sh *Shell, args []Value) Value {
		job := sh.jobByOptionalIndex(args)
		if job == nil {
			return Void
		}
		job.Foreground = true
		sh.transferTerminal(job.PGID)
		_ = syscall.Kill(-job.PGID, syscall.SIGCONT)
		job.Wait()
		sh.restoreTerminal()
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "bg", Sig: "*", Desc: "resume a stopped job in the background", Fn: func(sh *Shell, args []Value) Value {
		job := sh.jobByOptionalIndex(args)
		if job == nil {
			return Void
		}
		_ = syscall.Kill(-job.PGID, syscall.SIGCONT)
		sh.Jobs.SetStatus(job.ID, JobRunning)
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "jobs", Sig: "", Desc: "list tracked jobs", Fn: func(sh *Shell, args []Value) Value {
		var out []Value
		for _, j := range sh.Jobs.List() {
			out = append(out, String(fmt.Sprintf("[%d] %s %s", j.ID, j.Status, j.Line)))
		}
		return List(out...)
	}})

	sh.registerBuiltin(&Builtin{Name: "wait", Sig: "s", Desc: "sleep for n seconds, or wait on a job index", Fn: func(sh *Shell, args []Value) Value {
		n := args[0].AsInt32()
		if job, ok := sh.Jobs.Get(int(n)); ok {
			job.Wait()
			return Void
		}
		time.Sleep(time.Duration(n) * time.Second)
		return Void
	}})

	sh.registerBuiltin(&Builtin{Name: "alive?", Sig: "p", Desc: "true iff the given process is still alive", Fn: func(sh *Shell, args []Value) Value {
		return Bool(processAlive(args[0].Process().PID))
	}})
}

func toCmdLists(args []Value) [][]Value {
	cmds := make([][]Value, len(args))
	for i, a := range args {
		cmds[i] = a.List()
	}
	return cmds
}

func exitStatus(job *Job) int {
	job.Wait()
	if len(job.Procs) == 0 {
		return 0
	}
	last := job.Procs[len(job.Procs)-1]
	if last.ProcessState == nil {
		return 0
	}
	return last.ProcessState.ExitCode()
}

// gobble runs cmds with a pipe as the sink and returns everything read from
// it before the pipeline's last stage exits. mergeErrors is not consulted:
// for gobble-errors as for gobble, the children's stderr goes to the
// stderr-handler fd, not into the pipe.
func (sh *Shell) gobble(src *FileHandle, cmdArgs []Value, mergeErrors bool) Value {
	r, w, err := os.Pipe()
	if err != nil {
		sh.Log.Errorf("esh: gobble: %v", err)
		return Void
	}
	// sink wraps only the write side: release()'s close-on-last-reference
	// must not touch r, which the goroutine below is still reading.
	sink := NewFileHandle(nil, w, true)
	cmds := toCmdLists(cmdArgs)

	done := make(chan string, 1)
	go func() {
		data, _ := io.ReadAll(r)
		r.Close()
		done <- string(data)
	}()

	job, err := sh.RunPipeline(src, sink, cmds, false, true)
	if err != nil {
		sh.Log.Errorf("esh: gobble: %v", err)
		return Void
	}
	_ = job
	return String(<-done)
}

func (sh *Shell) jobByOptionalIndex(args []Value) *Job {
	id := 0
	jobs := sh.Jobs.List()
	if len(args) > 0 {
		id = int(args[0].AsInt32())
	} else if len(jobs) > 0 {
		id = jobs[len(jobs)-1].ID
	}
	job, ok := sh.Jobs.Get(id)
	if !ok {
		sh.Log.Errorf("esh: no such job: %d", id)
		return nil
	}
	return job
}
