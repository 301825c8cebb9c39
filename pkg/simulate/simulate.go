// Package simulate defines the external-simulator contract and the
// retry policy applied when a run fails to converge.
package simulate

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/convergence"
	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/pkg/netlist"
)

// Result captures one simulator invocation. OutputFile points at the
// dumped vector file for transient runs, when the runner produced one.
type Result struct {
	ExitStatus int
	Stdout     string
	Stderr     string
	OutputFile string
}

// Runner is the external collaborator that actually executes the
// simulator binary. Implementations own process spawning and the
// wall-clock timeout; this package only decides what to run and
// whether to run it again.
type Runner interface {
	Run(ctx context.Context, netlist string, timeout time.Duration) (Result, error)
}

// Outcome is the final state of a simulation request: the last run's
// result, a diagnosis when it failed (or needed a retry to pass), and
// whether a relaxed-tolerance retry happened.
type Outcome struct {
	Result    Result
	Category  convergence.Category
	Diagnosis *convergence.Diagnosis
	Retried   bool
}

// Succeeded reports whether the final run exited cleanly.
func (o Outcome) Succeeded() bool {
	return o.Result.ExitStatus == 0
}

// Session drives one simulation request against a Runner.
type Session struct {
	runner  Runner
	timeout time.Duration
	logger  *log.Logger
}

func NewSession(runner Runner, timeout time.Duration, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{runner: runner, timeout: timeout, logger: logger}
}

// Run executes the netlist. On a retriable failure it re-runs exactly
// once with a relaxed-tolerance options line appended; it never
// retries twice, and never retries a singular matrix or an
// unclassified failure. A transport error from the runner (as opposed
// to a failing simulation) is returned as an error.
func (s *Session) Run(ctx context.Context, source string) (Outcome, error) {
	result, err := s.runner.Run(ctx, source, s.timeout)
	if err != nil {
		return Outcome{}, fmt.Errorf("running simulator: %w", err)
	}
	if result.ExitStatus == 0 {
		return Outcome{Result: result}, nil
	}

	category := convergence.Classify(result.Stderr + "\n" + result.Stdout)
	diagnosis := convergence.Diagnose(category)
	outcome := Outcome{Result: result, Category: category, Diagnosis: &diagnosis}

	if !category.Retriable() {
		s.logger.Warn("simulation failed", "category", category.String())
		return outcome, nil
	}

	s.logger.Warn("simulation failed, retrying with relaxed tolerances", "category", category.String())
	relaxed := netlist.WithOptions(source, convergence.FormatOptionsLines(nil))
	result, err = s.runner.Run(ctx, relaxed, s.timeout)
	if err != nil {
		return Outcome{}, fmt.Errorf("running simulator (retry): %w", err)
	}

	outcome.Result = result
	outcome.Retried = true
	if result.ExitStatus != 0 {
		category = convergence.Classify(result.Stderr + "\n" + result.Stdout)
		diagnosis = convergence.Diagnose(category)
		outcome.Category = category
		outcome.Diagnosis = &diagnosis
		s.logger.Warn("retry failed", "category", category.String())
	}
	return outcome, nil
}
