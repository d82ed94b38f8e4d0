package main

import (
	"bufio"
	"os"
	"os/exec"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func cmdWords(words ...string) []Value {
	vs := make([]Value, len(words))
	for i, w := range words {
		vs[i] = String(w)
	}
	return vs
}

func TestRunPipeline_SingleStage(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}
	sh := New()

	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	outR, outW, err := os.Pipe()
	require.NoError(t, err)

	srcFD := NewFileHandle(inR, inR, true)
	sinkFD := NewFileHandle(outW, outW, true)

	go func() {
		inW.WriteString("hello pipeline\n")
		inW.Close()
	}()

	job, err := sh.RunPipeline(srcFD, sinkFD, [][]Value{cmdWords("cat")}, false, true)
	require.NoError(t, err)
	require.NotNil(t, job)
	// destructive=true already released/closed the parent's copy of outW.

	scanner := bufio.NewScanner(outR)
	require.True(t, scanner.Scan())
	assert.Equal(t, "hello pipeline", scanner.Text())
}

func TestRunPipeline_TwoStages(t *testing.T) {
	for _, name := range []string{"cat", "tr"} {
		if _, err := exec.LookPath(name); err != nil {
			t.Skipf("%s not available", name)
		}
	}
	sh := New()

	inR, inW, err := os.Pipe()
	require.NoError(t, err)
	outR, outW, err := os.Pipe()
	require.NoError(t, err)

	srcFD := NewFileHandle(inR, inR, true)
	sinkFD := NewFileHandle(outW, outW, true)

	go func() {
		inW.WriteString("hello\n")
		inW.Close()
	}()

	cmds := [][]Value{
		cmdWords("cat"),
		cmdWords("tr", "a-z", "A-Z"),
	}
	_, err = sh.RunPipeline(srcFD, sinkFD, cmds, false, true)
	require.NoError(t, err)

	scanner := bufio.NewScanner(outR)
	require.True(t, scanner.Scan())
	assert.Equal(t, "HELLO", scanner.Text())
}

// TestRunPipeline_ConcurrentPipelinesStayIsolated drives several independent
// pipelines at once and asserts each one's own output stays intact --
// concurrent pipelines must not cross-wire each other's descriptors.
func TestRunPipeline_ConcurrentPipelinesStayIsolated(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}

	const n = 4
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			sh := New()
			inR, inW, err := os.Pipe()
			if err != nil {
				return err
			}
			outR, outW, err := os.Pipe()
			if err != nil {
				return err
			}
			srcFD := NewFileHandle(inR, inR, true)
			sinkFD := NewFileHandle(outW, outW, true)

			want := strconv.Itoa(i)
			go func() {
				inW.WriteString(want + "\n")
				inW.Close()
			}()

			if _, err := sh.RunPipeline(srcFD, sinkFD, [][]Value{cmdWords("cat")}, false, true); err != nil {
				return err
			}

			scanner := bufio.NewScanner(outR)
			if !scanner.Scan() {
				return errNoOutput
			}
			if got := scanner.Text(); got != want {
				return &mismatchError{want, got}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

var errNoOutput = &mismatchError{"<some output>", "<nothing>"}

type mismatchError struct{ want, got string }

func (e *mismatchError) Error() string { return "pipeline " + e.want + " produced " + e.got }
