package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Project describes the ns-3 project layout to generate.
type Project struct {
	Name       string
	NS3Version string // e.g. "3.43", expands to the ns-3.43 directory
	OutputDir  string
}

func (p Project) ns3Dir() string {
	return "ns-" + p.NS3Version
}

// Directory set of the standard layout. Keys are paths relative to the
// project root, values are the about_folder.md description written into each.
func (p Project) dirs() []dirEntry {
	ns3 := p.ns3Dir()
	return []dirEntry{
		{"", "Root of the simulation project."},
		{ns3, fmt.Sprintf("Placeholder for NS-%s simulator source code. Clone or link the NS-3 repository here.", p.NS3Version)},
		{filepath.Join(ns3, "src"), "Directory for your custom NS-3 modules."},
		{filepath.Join(ns3, "contrib"), "Directory for your custom NS-3 modules."},
		{filepath.Join(ns3, "src", "my-module-1"), "Directory for your custom NS-3 module 1."},
		{filepath.Join(ns3, "scratch"), "Directory for quick, single-file simulation tests."},
		{"simulations", "C++ scripts for running your main simulation scenarios."},
		{"results", "Directory for storing raw simulation results (e.g., .pcap, .dat files)."},
		{filepath.Join("results", "scenario-1"), "Results for the first simulation scenario."},
		{filepath.Join("results", "scenario-2"), "Results for the second simulation scenario."},
		{"analysis", "Python scripts for data processing, analysis, and plotting."},
		{"plots", "Final plots and figures for reports and publications."},
		{"doc", "Project documentation, notes, and descriptions."},
	}
}

type dirEntry struct {
	path  string
	about string
}

// Directories that stay empty apart from their marker files.
func (p Project) emptyDirs() map[string]bool {
	ns3 := p.ns3Dir()
	return map[string]bool{
		filepath.Join(ns3, "src", "my-module-1"): true,
		filepath.Join(ns3, "contrib"):            true,
		filepath.Join(ns3, "scratch"):            true,
	}
}

const readmeTemplate = `# {{.Name}}

An NS-3 based simulation project.

## Project Structure

` + "```" + `
{{.Name}}/
├── {{.NS3Dir}}/
│   ├── contrib/
│   ├── src/
│   │   └── my-module-1/
│   └── scratch/
├── simulations/
├── results/
│   ├── scenario-1/
│   └── scenario-2/
├── analysis/
├── plots/
├── doc/
├── README.md
└── .gitignore
` + "```" + `

## Directory Descriptions

Each directory contains an ` + "`about_folder.md`" + ` file with a more specific description.
- ` + "`{{.NS3Dir}}/`" + `: Placeholder for NS-{{.NS3Version}} simulator source code or link.
- ` + "`simulations/`" + `: C++ scripts for running simulation scenarios.
- ` + "`results/`" + `: Directory for storing raw simulation results.
- ` + "`analysis/`" + `: Python scripts for data processing and plotting.
- ` + "`plots/`" + `: Final plots and figures for reports and publications.
- ` + "`doc/`" + `: Project documentation.

## Quick Start

1. Place NS-{{.NS3Version}} source code or link to it into the ` + "`{{.NS3Dir}}/`" + ` directory.
2. Configure and build NS-3. Consult the official NS-3 documentation for your version.
3. Write your simulation scripts in the ` + "`simulations/`" + ` directory.
4. Run your simulations from the ` + "`{{.NS3Dir}}/`" + ` directory, pointing to scripts in ` + "`../simulations/`" + `.
5. Process the results using scripts in the ` + "`analysis/`" + ` directory.
`

const gitignoreTemplate = `# NS-{{.NS3Version}} build artifacts
{{.NS3Dir}}/build/
{{.NS3Dir}}/.lock-waf_*
{{.NS3Dir}}/c4che/
{{.NS3Dir}}/.confcheck_*

# Temporary and OS files
*~
.DS_Store
Thumbs.db

# Python bytecode
__pycache__/
*.pyc
`

// Create generates the project tree and returns its root path. It refuses to
// overwrite an existing directory.
func Create(p Project) (string, error) {
	root, err := filepath.Abs(filepath.Join(p.OutputDir, p.Name))
	if err != nil {
		return "", fmt.Errorf("resolving output path: %w", err)
	}

	if _, err := os.Stat(root); err == nil {
		return "", fmt.Errorf("directory already exists: %s", root)
	}

	for _, d := range p.dirs() {
		full := filepath.Join(root, d.path)
		if err := os.MkdirAll(full, 0o755); err != nil {
			return "", fmt.Errorf("creating %s: %w", full, err)
		}

		title := filepath.Base(full)
		if d.path == "" {
			title = p.Name
		}
		about := fmt.Sprintf("# %s\n\n%s\n", title, d.about)
		if err := os.WriteFile(filepath.Join(full, "about_folder.md"), []byte(about), 0o644); err != nil {
			return "", fmt.Errorf("writing about_folder.md in %s: %w", full, err)
		}

		if p.emptyDirs()[d.path] {
			if err := os.WriteFile(filepath.Join(full, ".gitkeep"), nil, 0o644); err != nil {
				return "", fmt.Errorf("writing .gitkeep in %s: %w", full, err)
			}
		}
	}

	if err := renderFile(filepath.Join(root, "README.md"), readmeTemplate, p); err != nil {
		return "", err
	}
	if err := renderFile(filepath.Join(root, ".gitignore"), gitignoreTemplate, p); err != nil {
		return "", err
	}

	return root, nil
}

func renderFile(path, tmplStr string, p Project) error {
	t, err := template.New(filepath.Base(path)).Funcs(sprig.TxtFuncMap()).Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("parsing %s template: %w", filepath.Base(path), err)
	}

	data := struct {
		Name       string
		NS3Version string
		NS3Dir     string
	}{p.Name, p.NS3Version, p.ns3Dir()}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering %s: %w", filepath.Base(path), err)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
