package sim

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ExecResult holds the captured output of one launcher invocation.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
	Duration time.Duration
}

// ExecOpts configures one launcher invocation.
type ExecOpts struct {
	Argv    []string
	Dir     string
	Timeout time.Duration
}

// Exec runs an invocation and captures its output. Non-zero exit codes and
// timeouts are captured in the result, not returned as errors; an error means
// the process could not be started at all.
//
// On timeout the context kills only the direct child. If the ns3 wrapper has
// already forked the simulator binary, that grandchild is orphaned and keeps
// running; killing the whole process group would need platform-specific
// Setpgid handling.
func Exec(ctx context.Context, opts ExecOpts) (*ExecResult, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, opts.Argv[0], opts.Argv[1:]...)
	cmd.Dir = opts.Dir
	// A forked simulator can keep the output pipes open after the wrapper
	// is killed; don't let Wait block on them forever.
	cmd.WaitDelay = 3 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	result := &ExecResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: duration,
	}

	if err != nil {
		// Deadline first: a killed process also reports an ExitError.
		if ctx.Err() == context.DeadlineExceeded {
			result.TimedOut = true
			return result, nil
		}
		if errors.Is(err, exec.ErrWaitDelay) {
			// Exited fine, only the pipes lingered; output is truncated.
			return result, nil
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("starting %s: %w", opts.Argv[0], err)
	}

	return result, nil
}
