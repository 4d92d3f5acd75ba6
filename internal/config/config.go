package config

import (
	"fmt"
	"os"

	"github.com/a8m/envsubst"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

// Batch is an ordered list of scenarios to execute sequentially.
// The config file may describe it as a mapping of id → scenario (document
// order is kept) or as a plain list (ids are synthesized as test_<index>).
type Batch struct {
	Scenarios []Scenario
}

// Scenario is one named, parameterized simulation run.
type Scenario struct {
	ID        string      `yaml:"-"`
	Name      string      `yaml:"test_name" validate:"required"`
	Arguments ArgumentSet `yaml:"arguments"`
}

// Argument is one resolved --name=value pair, value already stringified.
type Argument struct {
	Name  string
	Value string
}

// ArgumentSet handles both argument shapes: a mapping of name → scalar, or a
// list of {name, value} objects. Both are canonicalized into one ordered
// argument list at parse time, so nothing downstream inspects shapes.
type ArgumentSet struct {
	Args []Argument
}

type argPair struct {
	Name  *string `yaml:"name"`
	Value *any    `yaml:"value"`
}

func (s *ArgumentSet) UnmarshalYAML(b []byte) error {
	var pairs []argPair
	if err := yaml.Unmarshal(b, &pairs); err == nil {
		for _, p := range pairs {
			// Entries missing name or value are dropped, not errors.
			if p.Name == nil || p.Value == nil || *p.Value == nil {
				continue
			}
			s.Args = append(s.Args, Argument{Name: *p.Name, Value: fmt.Sprint(*p.Value)})
		}
		return nil
	}

	// MapSlice keeps the document order of the mapping keys.
	var ms yaml.MapSlice
	if err := yaml.Unmarshal(b, &ms); err == nil {
		for _, item := range ms {
			if item.Key == nil || item.Value == nil {
				continue
			}
			s.Args = append(s.Args, Argument{Name: fmt.Sprint(item.Key), Value: fmt.Sprint(item.Value)})
		}
		return nil
	}

	return fmt.Errorf("arguments: must be a mapping of name to value or a list of name/value objects")
}

// Tokens renders the canonical --name=value token list, in argument order.
// No quoting or escaping happens here.
func (s ArgumentSet) Tokens() []string {
	tokens := make([]string, 0, len(s.Args))
	for _, a := range s.Args {
		tokens = append(tokens, "--"+a.Name+"="+a.Value)
	}
	return tokens
}

func (b *Batch) UnmarshalYAML(data []byte) error {
	var list []Scenario
	if err := yaml.Unmarshal(data, &list); err == nil {
		for i := range list {
			list[i].ID = fmt.Sprintf("test_%d", i)
		}
		b.Scenarios = list
		return nil
	}

	// Mapping form: decode twice, once for the scenario bodies and once
	// into a MapSlice for the id order.
	var byID map[string]Scenario
	if err := yaml.Unmarshal(data, &byID); err == nil {
		var order yaml.MapSlice
		if err := yaml.Unmarshal(data, &order); err != nil {
			return fmt.Errorf("reading scenario order: %w", err)
		}
		for _, item := range order {
			id := fmt.Sprint(item.Key)
			sc := byID[id]
			sc.ID = id
			b.Scenarios = append(b.Scenarios, sc)
		}
		return nil
	}

	return fmt.Errorf("config must be a mapping of scenario ids or a list of scenarios")
}

var validate = validator.New()

// Validate reports scenario definition problems (currently: a missing
// test_name). Definition errors are per-scenario, never batch-fatal.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("scenario %s: missing test_name", s.ID)
	}
	return nil
}

// Load reads and parses a batch config file. YAML 1.2 is a superset of JSON,
// so both .json and .yaml configs parse through the same path. Environment
// references (${VAR}) are expanded before parsing.
func Load(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	data, err = envsubst.Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("expanding env vars: %w", err)
	}

	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &b, nil
}
