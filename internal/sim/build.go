package sim

import (
	"fmt"
	"strings"

	"github.com/sznuper/nsbt/internal/config"
)

// Invocation is the exact argv handed to the OS for one scenario, plus the
// working directory it must run from.
type Invocation struct {
	Argv []string
	Dir  string
}

// String renders the invocation the way it would be typed in a shell,
// with the combined argument quoted.
func (inv Invocation) String() string {
	return fmt.Sprintf("%s %s %q", inv.Argv[0], inv.Argv[1], inv.Argv[2])
}

// Build constructs the launcher invocation for a scenario:
//
//	[<launcher>, "run", "<name> --a=1 --b=2"]
//
// The scenario name and its tokens are packed into a single third argument
// on purpose: the ns3 wrapper re-splits that one string into the scenario
// name plus forwarded flags. Passing the tokens as separate argv elements
// would change how the wrapper parses them.
func Build(l *Launcher, sc *config.Scenario) (Invocation, error) {
	if sc.Name == "" {
		return Invocation{}, fmt.Errorf("missing test_name in scenario configuration")
	}

	parts := append([]string{sc.Name}, sc.Arguments.Tokens()...)
	combined := strings.Join(parts, " ")

	return Invocation{
		Argv: []string{l.Path, "run", combined},
		Dir:  l.Root,
	}, nil
}
