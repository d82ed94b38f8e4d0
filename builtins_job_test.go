package main

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSimple_ExitStatus(t *testing.T) {
	for _, name := range []string{"true", "false"} {
		if _, err := exec.LookPath(name); err != nil {
			t.Skipf("%s not available", name)
		}
	}
	sh := New()

	v := sh.Dispatch([]Value{String("run-simple"), List(String("true"))})
	assert.Equal(t, "0", v.Str())

	v = sh.Dispatch([]Value{String("run-simple"), List(String("false"))})
	assert.Equal(t, "1", v.Str())
}

func TestGobble_CapturesStdout(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	sh := New()

	v := sh.Dispatch([]Value{
		String("gobble"), FileValue(NewFileHandle(os.Stdin, os.Stdin, false)),
		List(String("echo"), String("hello")),
	})
	assert.Equal(t, "hello\n", v.Str())
}

func TestJobs_ListsBackgroundJob(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}
	sh := New()

	src := FileValue(NewFileHandle(os.Stdin, os.Stdin, false))
	sink := FileValue(NewFileHandle(os.Stdout, os.Stdout, false))

	got := sh.Dispatch([]Value{
		String("run"), Bool(true), src, sink,
		List(String("sleep"), String("1")),
	})
	require.True(t, got.IsProcess())

	jobs := sh.Dispatch([]Value{String("jobs")})
	require.True(t, jobs.IsList())
	require.Len(t, jobs.List(), 1)
	assert.Contains(t, jobs.List()[0].Str(), "running")

	sh.Jobs.Get(got.Process().Job.ID)
	got.Process().Job.Wait()
}

func TestAliveQ_SelfProcess(t *testing.T) {
	sh := New()
	v := sh.Dispatch([]Value{String("alive?"), ProcessValue(&ProcValue{PID: os.Getpid()})})
	assert.True(t, v.Bool())
}

func TestAliveQ_BogusPID(t *testing.T) {
	sh := New()
	v := sh.Dispatch([]Value{String("alive?"), ProcessValue(&ProcValue{PID: 1 << 30})})
	assert.False(t, v.Bool())
}
