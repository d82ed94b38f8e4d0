package main

import (
	"os"
	"os/exec"

	goerrors "github.com/go-errors/errors"
	"github.com/jesseduffield/kill"
)

// pipeline.go implements spec.md §4.6: fork/exec a sequence of external
// commands wired together by pipes, tracked as one Job. Grounded on
// lazydocker/lazypodman's pkg/commands/os.go pattern of wrapping every
// os/exec failure with github.com/go-errors/errors for a retained stack
// trace, and on jesseduffield/kill for putting each pipeline in a process
// group of its own.

// RunPipeline executes cmds (each a List of String command words) in
// sequence, piping stdout of each into stdin of the next. srcFD/sinkFD
// bound the first command's stdin and the last command's stdout.
// destructive requests that sinkFD be closed once the pipeline no longer
// needs it (spec.md §4.6 step 5). It returns the Job it started.
func (sh *Shell) RunPipeline(srcFD, sinkFD *FileHandle, cmds [][]Value, background, destructive bool) (*Job, error) {
	if len(cmds) == 0 {
		return nil, newRuntimeError("run: empty pipeline")
	}

	job := &Job{Line: pipelineLine(cmds), Status: JobRunning}

	var prevRead *os.File = srcFD.ReadFD()
	closeSrc := false

	for i, cmd := range cmds {
		words, err := resolvePipelineWords(sh, cmd)
		if err != nil {
			return nil, err
		}
		if len(words) == 0 {
			return nil, newRuntimeError("run: empty command")
		}

		var stdout *os.File
		var nextRead *os.File
		last := i == len(cmds)-1
		if last {
			stdout = sinkFD.WriteFD()
		} else {
			r, w, err := os.Pipe()
			if err != nil {
				return nil, wrapResourceError("pipe", err)
			}
			stdout = w
			nextRead = r
		}

		c := exec.Command(words[0], words[1:]...)
		c.Stdin = prevRead
		c.Stdout = stdout
		if stderrFD := getStderrHandlerFD(); stderrFD != 0 {
			c.Stderr = os.NewFile(stderrFD, "stderr-handler")
		} else {
			c.Stderr = os.Stderr
		}
		kill.PrepareForChildren(c)
		if job.PGID != 0 {
			c.SysProcAttr.Pgid = job.PGID
			c.SysProcAttr.Setpgid = true
		}

		if err := c.Start(); err != nil {
			return nil, goerrors.WrapPrefix(err, "esh: run: exec "+words[0], 1)
		}
		if job.PGID == 0 {
			job.PGID = c.Process.Pid
		}
		job.Procs = append(job.Procs, c)

		if closeSrc && prevRead != nil {
			prevRead.Close()
		}
		if stdout != sinkFD.WriteFD() {
			stdout.Close()
		} else if destructive {
			sinkFD.release()
		}
		prevRead = nextRead
		closeSrc = true
	}

	sh.Jobs.Add(job)
	go sh.reapJob(job)

	if !background {
		job.Foreground = true
		sh.transferTerminal(job.PGID)
		job.Wait()
		sh.restoreTerminal()
	}
	return job, nil
}

// resolvePipelineWords resolves a token-expansion alias on the head word,
// takes each element's string, and glob-expands the result --
// spec.md §4.6 steps 1-2. A non-string evaluated element is a hard error.
func resolvePipelineWords(sh *Shell, cmd []Value) ([]string, error) {
	words := make([]string, 0, len(cmd))
	for _, v := range cmd {
		if !v.IsString() {
			return nil, newRuntimeError("run: pipeline command arguments must be strings")
		}
		words = append(words, v.Str())
	}
	words = resolveAlias(sh, words)
	var out []string
	for _, w := range words {
		out = append(out, globNoCheck(w)...)
	}
	return out, nil
}

func pipelineLine(cmds [][]Value) string {
	var line string
	for i, cmd := range cmds {
		if i > 0 {
			line += " , "
		}
		line += List(cmd...).Squish()
	}
	return line
}
