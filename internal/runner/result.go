package runner

import "time"

// Outcome classifies how a single scenario run ended.
type Outcome int

const (
	Success Outcome = iota
	Failure
	Timeout
	LaunchError
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	case Timeout:
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// Result captures the outcome of one scenario. Errors are stored in Err
// rather than returned, so the batch always proceeds to the next scenario.
type Result struct {
	ID         string
	Scenario   string
	Command    string
	Outcome    Outcome
	ExitCode   int
	StdoutTail string
	StderrTail string
	Duration   time.Duration
	Err        error
}

// Simulations can produce megabytes of output; only the last 500 characters
// are kept for reporting.
const tailLimit = 500

func tail(s string) string {
	r := []rune(s)
	if len(r) <= tailLimit {
		return s
	}
	return string(r[len(r)-tailLimit:])
}
