package holdex

import (
	"github.com/etnz/holdex/date"
)

// DayReport is a detailed view of the holdings on a single date, enriched
// with asset metadata, for human consumption.
type DayReport struct {
	Date      date.Date
	Positions []Position
}

// Position is one held record on the report date.
type Position struct {
	FullCode    string
	Name        string
	Industry    string
	SubIndustry string
	Buy         date.Date // covering record boundaries
	Sell        date.Date
}

// NewDayReport collects the records covering 'on' (half-open [Buy, Sell)
// like the index) in table order. A single day does not warrant the sweep;
// one scan of the table is enough.
func NewDayReport(on date.Date, records []HoldingRecord, assets *Assets) *DayReport {
	report := &DayReport{Date: on}
	for _, rec := range records {
		if on.Before(rec.Buy) || !on.Before(rec.Sell) {
			continue
		}
		ref, _ := assets.Lookup(rec.Code)
		report.Positions = append(report.Positions, Position{
			FullCode:    FullCode(rec.Code, ref.Exchange),
			Name:        rec.Name,
			Industry:    rec.Industry,
			SubIndustry: rec.SubIndustry,
			Buy:         rec.Buy,
			Sell:        rec.Sell,
		})
	}
	return report
}
