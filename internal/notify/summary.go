package notify

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/sznuper/nsbt/internal/runner"
)

// SummaryData aggregates one batch run for the notification template.
type SummaryData struct {
	ConfigFile string
	Total      int
	Passed     int
	Failed     int
	TimedOut   int
	Errored    int
	Duration   time.Duration
	Lines      []string // one "<id> <name>: <outcome>" line per scenario, in order
}

// DefaultTemplate is the message sent when no custom template is given.
const DefaultTemplate = `ns-3 batch {{.ConfigFile}} finished in {{.Duration}}: {{.Passed}}/{{.Total}} passed{{if .Failed}}, {{.Failed}} failed{{end}}{{if .TimedOut}}, {{.TimedOut}} timed out{{end}}{{if .Errored}}, {{.Errored}} errored{{end}}
{{- range .Lines}}
{{.}}
{{- end}}`

// BuildSummaryData folds a batch's results into template data.
func BuildSummaryData(configFile string, results []runner.Result) SummaryData {
	data := SummaryData{
		ConfigFile: configFile,
		Total:      len(results),
	}

	for _, r := range results {
		switch r.Outcome {
		case runner.Success:
			data.Passed++
		case runner.Failure:
			data.Failed++
		case runner.Timeout:
			data.TimedOut++
		default:
			data.Errored++
		}
		data.Duration += r.Duration
		data.Lines = append(data.Lines, fmt.Sprintf("%s %s: %s", r.ID, r.Scenario, r.Outcome))
	}

	return data
}

// Render executes a summary template with Sprig functions available.
func Render(tmplStr string, data SummaryData) (string, error) {
	t, err := template.New("summary").Funcs(sprig.TxtFuncMap()).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing summary template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering summary template: %w", err)
	}

	return buf.String(), nil
}
