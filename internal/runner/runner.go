package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/sznuper/nsbt/internal/config"
	"github.com/sznuper/nsbt/internal/sim"
)

// Runner drives a batch of scenarios through the ns3 launcher, one at a
// time, in config order. The launcher path and timeout are fixed for the
// whole batch.
type Runner struct {
	cfg      *config.Batch
	launcher *sim.Launcher
	timeout  time.Duration
	logger   *slog.Logger
}

// New resolves the ns3 launcher and builds a Runner. It fails immediately if
// the launcher executable is not present under ns3Path, before any scenario
// runs.
func New(cfg *config.Batch, ns3Path string, timeout time.Duration, logger *slog.Logger) (*Runner, error) {
	l, err := sim.Resolve(ns3Path)
	if err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, launcher: l, timeout: timeout, logger: logger}, nil
}

// Scenarios returns the batch's scenarios in execution order.
func (r *Runner) Scenarios() []config.Scenario {
	return r.cfg.Scenarios
}

// RunAll runs every scenario sequentially. One scenario's failure, timeout or
// launch error never stops the rest. When report is non-nil it is called with
// each result as soon as the scenario finishes.
func (r *Runner) RunAll(ctx context.Context, report func(Result)) []Result {
	results := make([]Result, 0, len(r.cfg.Scenarios))
	for i := range r.cfg.Scenarios {
		res := r.RunScenario(ctx, &r.cfg.Scenarios[i])
		if report != nil {
			report(res)
		}
		results = append(results, res)
	}
	return results
}

// RunScenario executes a single scenario and classifies the outcome. It never
// returns an error; anything that goes wrong lands in the result.
func (r *Runner) RunScenario(ctx context.Context, sc *config.Scenario) Result {
	log := r.logger.With("id", sc.ID, "test", sc.Name)
	start := time.Now()

	result := Result{ID: sc.ID, Scenario: sc.Name}

	if err := sc.Validate(); err != nil {
		result.Outcome = LaunchError
		result.Err = err
		result.Duration = time.Since(start)
		log.Error("invalid scenario", "error", err)
		return result
	}

	inv, err := sim.Build(r.launcher, sc)
	if err != nil {
		result.Outcome = LaunchError
		result.Err = err
		result.Duration = time.Since(start)
		log.Error("building command failed", "error", err)
		return result
	}
	result.Command = inv.String()

	log.Info("starting scenario", "command", result.Command, "timeout", r.timeout)
	res, err := sim.Exec(ctx, sim.ExecOpts{
		Argv:    inv.Argv,
		Dir:     inv.Dir,
		Timeout: r.timeout,
	})
	result.Duration = time.Since(start)

	switch {
	case err != nil:
		result.Outcome = LaunchError
		result.Err = err
		log.Error("launch failed", "error", err)
	case res.TimedOut:
		result.Outcome = Timeout
		log.Warn("scenario timed out and was killed", "timeout", r.timeout)
	case res.ExitCode != 0:
		result.Outcome = Failure
		result.ExitCode = res.ExitCode
		result.StdoutTail = tail(res.Stdout)
		result.StderrTail = tail(res.Stderr)
		log.Warn("scenario failed", "exit_code", res.ExitCode, "duration", res.Duration)
	default:
		result.Outcome = Success
		result.StdoutTail = tail(res.Stdout)
		log.Info("scenario passed", "duration", res.Duration)
	}

	return result
}
