package cli

import (
	"fmt"
	"io"

	"github.com/cainthebest/fibext/internal/format"
	"github.com/cainthebest/fibext/internal/orchestration"
	"github.com/cainthebest/fibext/internal/ui"
)

// DisplayComparison renders the saturation comparison table produced by a
// cross-width run: one row per element width, ordered by term count.
func DisplayComparison(out io.Writer, results []orchestration.RunResult) {
	orchestration.SortByCount(results)

	fmt.Fprintf(out, "%s%-8s %-10s %-10s %-12s %s%s\n",
		ui.Bold(), "WIDTH", "TERMS", "DURATION", "OUTCOME", "LAST TERM", ui.ColorReset())

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(out, "%-8s %s%s%s\n", res.Width, ui.ColorRed(), res.Err, ui.ColorReset())
			continue
		}

		outcome := "bounded"
		if res.Saturated {
			outcome = "exhausted"
		}
		fmt.Fprintf(out, "%-8s %-10s %-10s %s%-12s%s %s\n",
			res.Width,
			format.FormatTermCount(res.Count),
			format.FormatExecutionDuration(res.Duration),
			ui.ColorGreen(), outcome, ui.ColorReset(),
			FormatTerm(res.Last))
	}
}
