package commands

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/aqua-tools/aquascope/pkg/services/search"
	"github.com/spf13/cobra"
)

type SearchCmd struct {
	providerURL string
	userAgent   string
	in          io.Reader
	out         io.Writer
}

// NewSearchCmd builds the interactive place-search command. Each input line
// is treated as the current typeahead text: pausing fires a debounced lookup
// and a newer line supersedes any lookup still in flight.
func NewSearchCmd(in io.Reader, out io.Writer) *cobra.Command {
	sc := &SearchCmd{in: in, out: out}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Interactively search for a place to center the map on",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.providerURL, "provider", "https://nominatim.openstreetmap.org",
		"Base URL of the geocoding provider")
	cmd.Flags().StringVar(&sc.userAgent, "user-agent", "aquascope-cli",
		"User-Agent header sent to the geocoding provider")

	return cmd
}

func (sc *SearchCmd) run(cmd *cobra.Command, args []string) error {
	geocoder := search.NewGeocoder(search.GeocoderConfig{
		BaseURL:   sc.providerURL,
		UserAgent: sc.userAgent,
	})

	var outMu sync.Mutex
	typeahead := search.NewTypeahead(geocoder.Lookup, func(query string, candidates []search.Candidate, err error) {
		outMu.Lock()
		defer outMu.Unlock()
		if err != nil {
			fmt.Fprintf(sc.out, "search %q failed: %v\n", query, err)
			return
		}
		if len(candidates) == 0 {
			fmt.Fprintf(sc.out, "no results for %q\n", query)
			return
		}
		fmt.Fprintf(sc.out, "results for %q:\n", query)
		for i, c := range candidates {
			fmt.Fprintf(sc.out, "  %d. %s (fly to %.4f, %.4f)\n", i+1, c.Label, c.Point.Lon(), c.Point.Lat())
		}
	})
	defer typeahead.Stop()

	fmt.Fprintln(sc.out, "Type a place name (at least 3 characters), Ctrl-D to quit.")

	scanner := bufio.NewScanner(sc.in)
	for scanner.Scan() {
		typeahead.Update(scanner.Text())
	}
	return scanner.Err()
}
