package simulate

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/convergence"
)

// scriptedRunner replays canned results and records what it was asked
// to run.
type scriptedRunner struct {
	results  []Result
	errs     []error
	netlists []string
}

func (r *scriptedRunner) Run(_ context.Context, netlist string, _ time.Duration) (Result, error) {
	call := len(r.netlists)
	r.netlists = append(r.netlists, netlist)
	var err error
	if call < len(r.errs) {
		err = r.errs[call]
	}
	if call < len(r.results) {
		return r.results[call], err
	}
	return Result{}, err
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

const testNetlist = "* rc\nR1 in out 1k\n.op\n.end\n"

func TestSessionSuccessNoRetry(t *testing.T) {
	runner := &scriptedRunner{results: []Result{{ExitStatus: 0, Stdout: "v(out) = 1.0"}}}
	s := NewSession(runner, time.Second, quietLogger())

	outcome, err := s.Run(context.Background(), testNetlist)
	require.NoError(t, err)
	assert.True(t, outcome.Succeeded())
	assert.False(t, outcome.Retried)
	assert.Nil(t, outcome.Diagnosis)
	assert.Len(t, runner.netlists, 1)
}

func TestSessionRetriesOnceOnConvergenceFailure(t *testing.T) {
	runner := &scriptedRunner{results: []Result{
		{ExitStatus: 1, Stderr: "No convergence in dc analysis"},
		{ExitStatus: 0, Stdout: "v(out) = 1.0"},
	}}
	s := NewSession(runner, time.Second, quietLogger())

	outcome, err := s.Run(context.Background(), testNetlist)
	require.NoError(t, err)
	assert.True(t, outcome.Succeeded())
	assert.True(t, outcome.Retried)
	assert.Equal(t, convergence.DCConvergence, outcome.Category)
	require.NotNil(t, outcome.Diagnosis)

	require.Len(t, runner.netlists, 2)
	assert.Equal(t, testNetlist, runner.netlists[0])
	assert.Contains(t, runner.netlists[1], ".options")
	assert.Contains(t, runner.netlists[1], "reltol=0.01")
	assert.True(t, strings.HasSuffix(runner.netlists[1], ".end\n"))
}

func TestSessionNeverRetriesTwice(t *testing.T) {
	runner := &scriptedRunner{results: []Result{
		{ExitStatus: 1, Stderr: "no convergence"},
		{ExitStatus: 1, Stderr: "no convergence"},
	}}
	s := NewSession(runner, time.Second, quietLogger())

	outcome, err := s.Run(context.Background(), testNetlist)
	require.NoError(t, err)
	assert.False(t, outcome.Succeeded())
	assert.True(t, outcome.Retried)
	assert.Len(t, runner.netlists, 2)
}

func TestSessionNoRetryOnSingularMatrix(t *testing.T) {
	runner := &scriptedRunner{results: []Result{
		{ExitStatus: 1, Stderr: "singular matrix\nno convergence"},
	}}
	s := NewSession(runner, time.Second, quietLogger())

	outcome, err := s.Run(context.Background(), testNetlist)
	require.NoError(t, err)
	assert.False(t, outcome.Succeeded())
	assert.False(t, outcome.Retried)
	assert.Equal(t, convergence.SingularMatrix, outcome.Category)
	assert.Len(t, runner.netlists, 1)
}

func TestSessionNoRetryOnUnknown(t *testing.T) {
	runner := &scriptedRunner{results: []Result{{ExitStatus: 2, Stderr: "segfault"}}}
	s := NewSession(runner, time.Second, quietLogger())

	outcome, err := s.Run(context.Background(), testNetlist)
	require.NoError(t, err)
	assert.Equal(t, convergence.Unknown, outcome.Category)
	assert.Len(t, runner.netlists, 1)
}

func TestSessionTransportError(t *testing.T) {
	runner := &scriptedRunner{errs: []error{errors.New("binary not found")}}
	s := NewSession(runner, time.Second, quietLogger())

	_, err := s.Run(context.Background(), testNetlist)
	assert.Error(t, err)
}
