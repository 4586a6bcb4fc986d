package holdex

import (
	"github.com/etnz/holdex/date"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summary aggregates whole-table statistics over the holdings table.
type Summary struct {
	Records   int        // rows in the table
	Stocks    int        // distinct stock codes
	Reentries int        // rows beyond the first for a code already traded
	Span      date.Range // earliest buy to latest sell

	AvgHoldingDays decimal.Decimal // mean calendar length of [Buy, Sell)

	// Return statistics over priced records only.
	Priced    int
	Winners   int             // sell price above buy price
	WinRate   decimal.Decimal // percent of winners among priced records
	AvgReturn decimal.Decimal // mean percent return (sell-buy)/buy
}

// Summarize computes Summary over the table. An empty table fails with
// ErrNoHoldings, like the index build.
func Summarize(records []HoldingRecord) (*Summary, error) {
	if len(records) == 0 {
		return nil, ErrNoHoldings
	}

	s := &Summary{
		Records: len(records),
		Span:    date.NewRange(records[0].Buy, records[0].Sell),
	}

	seen := make(map[string]bool)
	days := decimal.Zero
	returns := decimal.Zero
	for _, rec := range records {
		if seen[rec.Code] {
			s.Reentries++
		} else {
			seen[rec.Code] = true
			s.Stocks++
		}
		if rec.Buy.Before(s.Span.From) {
			s.Span.From = rec.Buy
		}
		if rec.Sell.After(s.Span.To) {
			s.Span.To = rec.Sell
		}
		days = days.Add(decimal.NewFromInt(int64(rec.Days())))

		if !rec.Priced() {
			continue
		}
		s.Priced++
		if rec.SellPrice.GreaterThan(rec.BuyPrice) {
			s.Winners++
		}
		returns = returns.Add(rec.SellPrice.Sub(rec.BuyPrice).Div(rec.BuyPrice))
	}

	s.AvgHoldingDays = days.Div(decimal.NewFromInt(int64(s.Records)))
	if s.Priced > 0 {
		priced := decimal.NewFromInt(int64(s.Priced))
		s.WinRate = decimal.NewFromInt(int64(s.Winners)).Mul(hundred).Div(priced)
		s.AvgReturn = returns.Mul(hundred).Div(priced)
	}
	return s, nil
}
