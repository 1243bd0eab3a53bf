package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/aqua-tools/aquascope/pkg/models/domain"
)

// Reporter outputs reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
{{.Title}}
Region: {{.Region}}
Baseline period: {{.Baseline.Start.Format "2006-01-02"}} to {{.Baseline.End.Format "2006-01-02"}}
Comparison period: {{.Comparison.Start.Format "2006-01-02"}} to {{.Comparison.End.Format "2006-01-02"}}

- Water gain: {{printf "%.4f" .GainSqKm}} sq km
- Water loss: {{printf "%.4f" .LossSqKm}} sq km
- Persistent water: {{printf "%.4f" .PersistentSqKm}} sq km
{{if .TileURL}}
Overlay tiles: {{.TileURL}}
{{end}}`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
