package sim

import (
	"fmt"
	"os"
	"path/filepath"
)

// Launcher is the resolved ns3 wrapper script of one simulator installation.
// Root is the installation directory every invocation must run from, since
// the wrapper resolves scenario names and build artifacts relative to it.
type Launcher struct {
	Root string
	Path string
}

// Resolve locates the ns3 executable under the given installation directory.
func Resolve(ns3Path string) (*Launcher, error) {
	root, err := filepath.Abs(ns3Path)
	if err != nil {
		return nil, fmt.Errorf("resolving ns3 path: %w", err)
	}

	path := filepath.Join(root, "ns3")
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("ns3 launcher not found: %s", path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("ns3 launcher is a directory: %s", path)
	}
	if info.Mode()&0111 == 0 {
		return nil, fmt.Errorf("ns3 launcher is not executable: %s", path)
	}

	return &Launcher{Root: root, Path: path}, nil
}
