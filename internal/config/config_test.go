package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadExampleConfig(t *testing.T) {
	root := findProjectRoot(t)
	cfg, err := Load(filepath.Join(root, "config.example.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(cfg.Scenarios) != 3 {
		t.Fatalf("scenarios count = %d, want 3", len(cfg.Scenarios))
	}

	ids := []string{cfg.Scenarios[0].ID, cfg.Scenarios[1].ID, cfg.Scenarios[2].ID}
	want := []string{"tcp_baseline", "wifi_density", "lte_handover"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}

	sc := cfg.Scenarios[0]
	if sc.Name != "tcp-bulk-send" {
		t.Errorf("name = %q, want %q", sc.Name, "tcp-bulk-send")
	}
	tokens := sc.Arguments.Tokens()
	wantTokens := []string{"--packetSize=1024", "--interval=0.5s"}
	if !reflect.DeepEqual(tokens, wantTokens) {
		t.Errorf("tokens = %v, want %v", tokens, wantTokens)
	}

	// Pair-list form resolves to the same token shape.
	tokens = cfg.Scenarios[1].Arguments.Tokens()
	wantTokens = []string{"--nWifi=30", "--distance=7.5"}
	if !reflect.DeepEqual(tokens, wantTokens) {
		t.Errorf("tokens = %v, want %v", tokens, wantTokens)
	}
}

func TestListForm(t *testing.T) {
	cfg := loadFromString(t, `[
		{"test_name": "first"},
		{"test_name": "second"}
	]`)

	if len(cfg.Scenarios) != 2 {
		t.Fatalf("scenarios count = %d, want 2", len(cfg.Scenarios))
	}
	if cfg.Scenarios[0].ID != "test_0" || cfg.Scenarios[1].ID != "test_1" {
		t.Errorf("ids = %q, %q, want test_0, test_1", cfg.Scenarios[0].ID, cfg.Scenarios[1].ID)
	}
	if cfg.Scenarios[1].Name != "second" {
		t.Errorf("name = %q, want %q", cfg.Scenarios[1].Name, "second")
	}
}

func TestMappingOrderPreserved(t *testing.T) {
	cfg := loadFromString(t, `{
		"zeta": {"test_name": "z"},
		"alpha": {"test_name": "a"},
		"mid": {"test_name": "m"}
	}`)

	var ids []string
	for _, sc := range cfg.Scenarios {
		ids = append(ids, sc.ID)
	}
	want := []string{"zeta", "alpha", "mid"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}
}

func TestArgumentsMappingOrder(t *testing.T) {
	cfg := loadFromString(t, `[{"test_name": "demo", "arguments": {"a": 1, "b": "x"}}]`)

	tokens := cfg.Scenarios[0].Arguments.Tokens()
	want := []string{"--a=1", "--b=x"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("tokens = %v, want %v", tokens, want)
	}
}

func TestArgumentsPairListSkipsIncomplete(t *testing.T) {
	cfg := loadFromString(t, `[{"test_name": "demo", "arguments": [
		{"name": "ok", "value": 1},
		{"name": "noValue"},
		{"value": "noName"},
		{"name": "null", "value": null},
		{"name": "last", "value": true}
	]}]`)

	tokens := cfg.Scenarios[0].Arguments.Tokens()
	want := []string{"--ok=1", "--last=true"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("tokens = %v, want %v", tokens, want)
	}
}

func TestArgumentsEmpty(t *testing.T) {
	cfg := loadFromString(t, `[{"test_name": "demo"}]`)
	if tokens := cfg.Scenarios[0].Arguments.Tokens(); len(tokens) != 0 {
		t.Errorf("tokens = %v, want none", tokens)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "reading config") {
		t.Errorf("error = %q, want reading config", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"broken": `)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("error = %q, want parsing config", err)
	}
}

func TestLoadWrongTopLevelShape(t *testing.T) {
	path := writeConfig(t, `"just a string"`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected shape error")
	}
}

func TestEnvsubst(t *testing.T) {
	t.Setenv("SIM_TIME", "120")
	cfg := loadFromString(t, `[{"test_name": "demo", "arguments": {"simTime": "${SIM_TIME}"}}]`)

	tokens := cfg.Scenarios[0].Arguments.Tokens()
	if len(tokens) != 1 || tokens[0] != "--simTime=120" {
		t.Errorf("tokens = %v, want [--simTime=120]", tokens)
	}
}

func TestValidateMissingName(t *testing.T) {
	sc := &Scenario{ID: "test_0"}
	if err := sc.Validate(); err == nil {
		t.Fatal("expected validation error")
	}

	sc = &Scenario{ID: "test_0", Name: "demo"}
	if err := sc.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// helpers

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func loadFromString(t *testing.T, content string) *Batch {
	t.Helper()
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cfg
}

func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}
