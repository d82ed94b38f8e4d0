package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// reaper.go implements spec.md §4.6's "Reaping & signals" design note, as
// reworked by its own advice: "treat SIGCHLD as a wake-up signal that sets
// a flag rather than mutating shared state in a handler context." The
// signal.Notify channel below is exactly that flag -- Go delivers it
// without running any code in actual signal-handler context, so the
// reaper goroutine can safely touch the job table directly once woken.

// reaper owns the SIGCHLD-driven wake-up loop for one Shell's job table.
type reaper struct {
	sh   *Shell
	wake chan os.Signal
	stop chan struct{}
	once sync.Once
}

func newReaper(sh *Shell) *reaper {
	r := &reaper{sh: sh, wake: make(chan os.Signal, 4), stop: make(chan struct{})}
	signal.Notify(r.wake, syscall.SIGCHLD)
	go r.loop()
	return r
}

func (r *reaper) loop() {
	for {
		select {
		case <-r.wake:
			r.reapOnce()
		case <-r.stop:
			signal.Stop(r.wake)
			return
		}
	}
}

// reapOnce walks every tracked job's process group non-blockingly, per
// spec.md's `waitpid(-pgid, …, WUNTRACED|WNOHANG)` description.
func (r *reaper) reapOnce() {
	for _, job := range r.sh.Jobs.List() {
		r.reapJobOnce(job)
	}
}

func (r *reaper) reapJobOnce(job *Job) {
	for {
		var ws syscall.WaitStatus
		pid, err := syscall.Wait4(-job.PGID, &ws, syscall.WNOHANG|syscall.WUNTRACED, nil)
		if err != nil || pid <= 0 {
			return
		}
		switch {
		case ws.Exited(), ws.Signaled():
			if pid == lastPID(job) {
				r.sh.Jobs.SetStatus(job.ID, JobDone)
				_ = syscall.Kill(-job.PGID, syscall.SIGPIPE)
			}
		case ws.Stopped():
			r.sh.Jobs.SetStatus(job.ID, JobStopped)
		}
	}
}

func lastPID(job *Job) int {
	if len(job.Procs) == 0 {
		return -1
	}
	return job.Procs[len(job.Procs)-1].Process.Pid
}

// reapJob is the per-pipeline fallback used right after RunPipeline starts
// a job: it calls cmd.Wait on every process of the pipeline in turn, left
// to right, and marks the job done once all have exited, so that `wait`/
// foreground handoff do not depend on SIGCHLD timing alone.
func (sh *Shell) reapJob(job *Job) {
	for _, c := range job.Procs {
		c.Wait()
	}
	sh.Jobs.SetStatus(job.ID, JobDone)
}

// funeral removes every Dead job from the table between top-level REPL
// commands (spec.md §4.6, "Between top-level commands the driver calls a
// funeral step").
func (sh *Shell) funeral() {
	for _, j := range sh.Jobs.List() {
		if j.Status == JobDone {
			sh.Jobs.Remove(j.ID)
		}
	}
}
