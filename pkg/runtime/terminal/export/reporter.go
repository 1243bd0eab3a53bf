package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/aqua-tools/aquascope/pkg/models/domain"
)

type TableConfig struct {
	MetricWidth      int
	ValueWidth       int
	UnitWidth        int
	DescriptionWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		MetricWidth:      24,
		ValueWidth:       16,
		UnitWidth:        8,
		DescriptionWidth: 54,
	}
}

// Reporter renders a report as a boxed table suitable for saving to a file
// or attaching to a download.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(metric string, value float64, unit string, desc string) string {
			return fmt.Sprintf("| %-*s | %-*.4f | %-*s | %-*s |",
				c.config.MetricWidth, metric,
				c.config.ValueWidth, value,
				c.config.UnitWidth, unit,
				c.config.DescriptionWidth, desc)
		},
		"header": func() string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s |",
				c.config.MetricWidth, "Metric",
				c.config.ValueWidth, "Value",
				c.config.UnitWidth, "Unit",
				c.config.DescriptionWidth, "Description")
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.MetricWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.UnitWidth+2),
				strings.Repeat("-", c.config.DescriptionWidth+2))
		},
	}

	tmpl := `
{{.Title}}

Region: {{.Region}}
Baseline period: {{.Baseline.Start.Format "2006-01-02"}} to {{.Baseline.End.Format "2006-01-02"}}
Comparison period: {{.Comparison.Start.Format "2006-01-02"}} to {{.Comparison.End.Format "2006-01-02"}}

{{separator}}
{{header}}
{{separator}}
{{formatRow "Water gain" .GainSqKm "sq km" "Area that became water between the two periods"}}
{{formatRow "Water loss" .LossSqKm "sq km" "Area that stopped being water between the two periods"}}
{{formatRow "Persistent water" .PersistentSqKm "sq km" "Area covered by water in both periods"}}
{{separator}}
{{if .TileURL}}
Overlay tiles: {{.TileURL}}
{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
