package holdex

import (
	"errors"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	in := "stock_code,buy_date,sell_date,buy_price,sell_price\n" +
		"000001,2024-01-01,2024-01-03,10.0,11.0\n" + // +10%, 2 days
		"600519,2024-01-02,2024-01-06,100.0,90.0\n" + // -10%, 4 days
		"000001,2024-01-05,2024-01-08,11.0,11.0\n" // flat re-entry, 3 days
	records, err := DecodeHoldings(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeHoldings: %v", err)
	}

	s, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if s.Records != 3 || s.Stocks != 2 || s.Reentries != 1 {
		t.Errorf("counts = %d records, %d stocks, %d re-entries; want 3, 2, 1", s.Records, s.Stocks, s.Reentries)
	}
	if got := s.Span.String(); got != "2024-01-01..2024-01-08" {
		t.Errorf("span = %s, want 2024-01-01..2024-01-08", got)
	}
	if got := s.AvgHoldingDays.String(); got != "3" {
		t.Errorf("avg holding days = %s, want 3", got)
	}
	if s.Priced != 3 || s.Winners != 1 {
		t.Errorf("priced = %d, winners = %d; want 3, 1", s.Priced, s.Winners)
	}
	// 1 winner out of 3 priced records.
	if got := s.WinRate.StringFixed(2); got != "33.33" {
		t.Errorf("win rate = %s%%, want 33.33%%", got)
	}
	// (+10% - 10% + 0%) / 3 = 0%
	if !s.AvgReturn.IsZero() {
		t.Errorf("avg return = %s%%, want 0%%", s.AvgReturn)
	}
}

func TestSummarizeUnpriced(t *testing.T) {
	records := []HoldingRecord{record("000001", "2024-01-01", "2024-01-03")}
	s, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if s.Priced != 0 || !s.WinRate.IsZero() || !s.AvgReturn.IsZero() {
		t.Errorf("unpriced table yields return stats: %+v", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(nil); !errors.Is(err, ErrNoHoldings) {
		t.Errorf("Summarize(nil) = %v, want ErrNoHoldings", err)
	}
}
