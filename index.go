package holdex

import (
	"iter"
	"slices"

	"github.com/etnz/holdex/date"
)

// DailyIndex maps every calendar day of the observed range to the stock
// codes held on that day. The range runs from the earliest buy date to the
// latest sell date with no gaps; weekends and holidays are plain days like
// any other.
//
// Within a day, codes appear in the order their records appear in the source
// table, and a code held through several overlapping records appears once
// per covering record. The index is built once and never mutated.
type DailyIndex struct {
	span  date.Range
	codes [][]string // one snapshot per day of span, never nil
}

// Span returns the inclusive day range covered by the index.
func (x *DailyIndex) Span() date.Range { return x.span }

// On returns the codes held on a given day, or nil when the day is outside
// the indexed range. Days inside the range always return a non-nil (possibly
// empty) slice. The returned slice must not be modified.
func (x *DailyIndex) On(day date.Date) []string {
	if !x.span.Contains(day) {
		return nil
	}
	return x.codes[day.Sub(x.span.From)]
}

// Days returns an iterator over every day of the range with its holding
// snapshot, in chronological order.
func (x *DailyIndex) Days() iter.Seq2[date.Date, []string] {
	return func(yield func(date.Date, []string) bool) {
		for i, codes := range x.codes {
			if !yield(x.span.From.Add(i), codes) {
				return
			}
		}
	}
}

// sweepEvent is one interval boundary: a record entering the active set on
// its buy day, or leaving it on its sell day.
type sweepEvent struct {
	on    date.Date
	enter bool
	rec   int // index in the source table, defines emit order
}

// BuildDailyIndex computes the daily holdings index from the table.
//
// Each record contributes two events, entering at its buy date and leaving
// at its sell date. Events are sorted once, then a cursor advances one day
// at a time across the whole range, maintaining the set of active records
// and emitting a snapshot per day. This costs O(n log n + days + emitted
// memberships) instead of rescanning the table for every day.
//
// An empty table fails with ErrNoHoldings.
func BuildDailyIndex(records []HoldingRecord) (*DailyIndex, error) {
	if len(records) == 0 {
		return nil, ErrNoHoldings
	}

	events := make([]sweepEvent, 0, 2*len(records))
	span := date.NewRange(records[0].Buy, records[0].Sell)
	for i, rec := range records {
		if rec.Buy.Before(span.From) {
			span.From = rec.Buy
		}
		if rec.Sell.After(span.To) {
			span.To = rec.Sell
		}
		events = append(events,
			sweepEvent{on: rec.Buy, enter: true, rec: i},
			sweepEvent{on: rec.Sell, enter: false, rec: i},
		)
	}
	// Entries sort before exits on the same day so that a Buy == Sell record
	// enters and leaves before its snapshot, covering no day.
	slices.SortFunc(events, func(a, b sweepEvent) int {
		if c := a.on.Sub(b.on); c != 0 {
			return c
		}
		switch {
		case a.enter == b.enter:
			return a.rec - b.rec
		case a.enter:
			return -1
		default:
			return 1
		}
	})

	index := &DailyIndex{span: span, codes: make([][]string, 0, span.Len())}
	var active []int // record indexes, kept sorted: table order is emit order
	next := 0
	for day := range span.Days() {
		for next < len(events) && !events[next].on.After(day) {
			ev := events[next]
			at, found := slices.BinarySearch(active, ev.rec)
			if ev.enter {
				active = slices.Insert(active, at, ev.rec)
			} else if found {
				active = slices.Delete(active, at, at+1)
			}
			next++
		}
		snapshot := make([]string, len(active))
		for i, rec := range active {
			snapshot[i] = records[rec].Code
		}
		index.codes = append(index.codes, snapshot)
	}
	return index, nil
}
