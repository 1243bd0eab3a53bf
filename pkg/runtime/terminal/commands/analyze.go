package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aqua-tools/aquascope/pkg/models/domain"
	"github.com/aqua-tools/aquascope/pkg/runtime/terminal/export"
	"github.com/aqua-tools/aquascope/pkg/services/geometry"
	"github.com/aqua-tools/aquascope/pkg/services/region"
	"github.com/aqua-tools/aquascope/pkg/services/report"
	"github.com/aqua-tools/aquascope/pkg/services/session"
	"github.com/aqua-tools/aquascope/pkg/store/waterwatch"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Reporter renders a projected report for the user.
type Reporter interface {
	Handle(report *domain.Report) error
}

type AnalyzeCmd struct {
	serviceURL  string
	circle      string
	geojsonPath string
	label       string
	baseline    string
	comparison  string
	exportPath  string
	out         io.Writer
	reporter    Reporter
}

func NewAnalyzeCmd(out io.Writer, reporter Reporter) *cobra.Command {
	ac := &AnalyzeCmd{out: out, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a water change-detection analysis over a region",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.serviceURL, "service", "http://127.0.0.1:8000", "Base URL of the analysis service")
	cmd.Flags().StringVar(&ac.circle, "circle", "", "Region as a circle: lng,lat,radius_meters")
	cmd.Flags().StringVar(&ac.geojsonPath, "geojson", "", "Region as a GeoJSON Polygon file")
	cmd.Flags().StringVar(&ac.label, "label", "", "Label for the region of interest")
	cmd.Flags().StringVar(&ac.baseline, "baseline", "", "Baseline period: YYYY-MM-DD:YYYY-MM-DD")
	cmd.Flags().StringVar(&ac.comparison, "comparison", "", "Comparison period: YYYY-MM-DD:YYYY-MM-DD")
	cmd.Flags().StringVar(&ac.exportPath, "export", "", "Also write the report table to this file")

	_ = cmd.MarkFlagRequired("baseline")
	_ = cmd.MarkFlagRequired("comparison")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	shape, err := ac.parseShape()
	if err != nil {
		return err
	}

	ring, err := geometry.Normalize(shape)
	if err != nil {
		return describeFailure(ac.out, err)
	}

	baseline, err := parsePeriod(ac.baseline)
	if err != nil {
		return fmt.Errorf("invalid --baseline: %w", err)
	}
	comparison, err := parsePeriod(ac.comparison)
	if err != nil {
		return fmt.Errorf("invalid --comparison: %w", err)
	}

	store := region.NewStore()
	store.SetRegion(ring, ac.label)
	store.SetDateRange(domain.PeriodBaseline, baseline)
	store.SetDateRange(domain.PeriodComparison, comparison)

	client := waterwatch.NewClient(waterwatch.Settings{BaseURL: ac.serviceURL})
	sess := session.NewSession(store, client)

	result, err := sess.RequestAnalysis(ctx)
	if err != nil {
		return describeFailure(ac.out, err)
	}

	roi, _ := store.CurrentRegion()
	projected := report.Project(*result, roi.Label, baseline, comparison)

	if err := ac.reporter.Handle(&projected); err != nil {
		return err
	}

	if ac.exportPath != "" {
		file, err := os.Create(ac.exportPath)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer file.Close()
		if err := export.NewReporter(file).Handle(&projected); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}
		fmt.Fprintf(ac.out, "Report written to %s\n", ac.exportPath)
	}

	return nil
}

func (ac *AnalyzeCmd) parseShape() (domain.DrawnShape, error) {
	switch {
	case ac.circle != "" && ac.geojsonPath != "":
		return nil, fmt.Errorf("--circle and --geojson are mutually exclusive")
	case ac.circle != "":
		parts := strings.Split(ac.circle, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("--circle must be lng,lat,radius_meters")
		}
		values := make([]float64, 3)
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("--circle component %d is not a number: %w", i+1, err)
			}
			values[i] = v
		}
		return domain.Circle{
			Center:       orb.Point{values[0], values[1]},
			RadiusMeters: values[2],
		}, nil
	case ac.geojsonPath != "":
		raw, err := os.ReadFile(ac.geojsonPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read geojson file: %w", err)
		}
		geom, err := geojson.UnmarshalGeometry(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse geojson: %w", err)
		}
		polygon, ok := geom.Geometry().(orb.Polygon)
		if !ok || len(polygon) == 0 {
			return nil, fmt.Errorf("geojson file must contain a Polygon geometry")
		}
		return domain.PolygonShape{Ring: polygon[0]}, nil
	default:
		return nil, fmt.Errorf("either --circle or --geojson is required")
	}
}

func parsePeriod(value string) (domain.DateRange, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return domain.DateRange{}, fmt.Errorf("expected YYYY-MM-DD:YYYY-MM-DD, got %q", value)
	}
	start, err := time.Parse(domain.DateLayout, parts[0])
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid start date %q", parts[0])
	}
	end, err := time.Parse(domain.DateLayout, parts[1])
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid end date %q", parts[1])
	}
	return domain.DateRange{Start: start, End: end}, nil
}

// describeFailure renders the message + suggestion pair before returning the
// error for the non-zero exit code.
func describeFailure(out io.Writer, err error) error {
	if ae, ok := domain.AsAnalysisError(err); ok {
		fmt.Fprintf(out, "Analysis failed: %s\n", ae.Message)
		if ae.Detail != "" {
			fmt.Fprintf(out, "Detail: %s\n", ae.Detail)
		}
		if ae.Suggestion != "" {
			fmt.Fprintf(out, "Suggestion: %s\n", ae.Suggestion)
		}
	}
	return err
}
