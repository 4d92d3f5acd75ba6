package sim

import (
	"reflect"
	"testing"

	"github.com/sznuper/nsbt/internal/config"
)

func testLauncher() *Launcher {
	return &Launcher{Root: "/opt/ns-3.43", Path: "/opt/ns-3.43/ns3"}
}

func TestBuild(t *testing.T) {
	sc := &config.Scenario{
		ID:   "test_0",
		Name: "demo",
		Arguments: config.ArgumentSet{Args: []config.Argument{
			{Name: "n", Value: "5"},
		}},
	}

	inv, err := Build(testLauncher(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"/opt/ns-3.43/ns3", "run", "demo --n=5"}
	if !reflect.DeepEqual(inv.Argv, want) {
		t.Errorf("argv = %v, want %v", inv.Argv, want)
	}
	if inv.Dir != "/opt/ns-3.43" {
		t.Errorf("dir = %q, want %q", inv.Dir, "/opt/ns-3.43")
	}
}

func TestBuild_NoArguments(t *testing.T) {
	sc := &config.Scenario{ID: "test_0", Name: "demo"}

	inv, err := Build(testLauncher(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Argv[2] != "demo" {
		t.Errorf("combined = %q, want %q", inv.Argv[2], "demo")
	}
}

func TestBuild_MissingName(t *testing.T) {
	sc := &config.Scenario{ID: "test_0"}

	_, err := Build(testLauncher(), sc)
	if err == nil {
		t.Fatal("expected error for missing test_name")
	}
}

func TestInvocationString(t *testing.T) {
	sc := &config.Scenario{
		ID:   "test_0",
		Name: "demo",
		Arguments: config.ArgumentSet{Args: []config.Argument{
			{Name: "packetSize", Value: "1024"},
			{Name: "interval", Value: "0.5s"},
		}},
	}

	inv, err := Build(testLauncher(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `/opt/ns-3.43/ns3 run "demo --packetSize=1024 --interval=0.5s"`
	if inv.String() != want {
		t.Errorf("string = %q, want %q", inv.String(), want)
	}
}
