// Package renderer produces markdown views of holdex reports. It is pure:
// terminal rendering belongs to the caller.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/holdex"
)

// HoldingMarkdown renders the holdings of a single day as a markdown table.
func HoldingMarkdown(r *holdex.DayReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings on %s\n\n", r.Date)

	if len(r.Positions) == 0 {
		fmt.Fprintln(&b, "No position held on this day.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Code | Name | Industry | Sub-industry | Held |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|:---|")
	for _, p := range r.Positions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s → %s |\n",
			p.FullCode,
			p.Name,
			p.Industry,
			p.SubIndustry,
			p.Buy,
			p.Sell,
		)
	}
	fmt.Fprintf(&b, "\n%d positions.\n", len(r.Positions))
	return b.String()
}

// SummaryMarkdown renders whole-table statistics as markdown.
func SummaryMarkdown(s *holdex.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings table %s\n\n", s.Span)

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Records | %d |\n", s.Records)
	fmt.Fprintf(&b, "| Distinct stocks | %d |\n", s.Stocks)
	fmt.Fprintf(&b, "| Re-entries | %d |\n", s.Reentries)
	fmt.Fprintf(&b, "| Days covered | %d |\n", s.Span.Len())
	fmt.Fprintf(&b, "| Avg holding length | %s days |\n", s.AvgHoldingDays.StringFixed(1))
	if s.Priced > 0 {
		fmt.Fprintf(&b, "| Priced records | %d |\n", s.Priced)
		fmt.Fprintf(&b, "| Win rate | %s%% |\n", s.WinRate.StringFixed(1))
		fmt.Fprintf(&b, "| Avg return | %s%% |\n", s.AvgReturn.StringFixed(2))
	}
	return b.String()
}
