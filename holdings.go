package holdex

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/holdex/date"
	"github.com/shopspring/decimal"
)

// HoldingRecord is one row of the holdings table: a position in a single
// stock held over the half-open interval [Buy, Sell). The stock is held on
// its buy day and no longer held on its sell day. Buy == Sell is a valid
// degenerate record that covers no day.
//
// Codes are fixed-width numeric strings and are never parsed as integers:
// "000001" must stay "000001".
type HoldingRecord struct {
	Code        string
	Name        string
	Industry    string
	SubIndustry string
	Buy         date.Date
	Sell        date.Date

	// Per-share trade prices, zero when the source table has no price
	// columns. Only the summary statistics use them.
	BuyPrice  decimal.Decimal
	SellPrice decimal.Decimal
}

// Priced reports whether the record carries both trade prices.
func (r HoldingRecord) Priced() bool {
	return r.BuyPrice.IsPositive() && r.SellPrice.IsPositive()
}

// Days returns the number of calendar days the position was held.
func (r HoldingRecord) Days() int { return r.Sell.Sub(r.Buy) }

// The holdings table comes from the trade generator with Chinese column
// headers; English aliases are accepted for hand-written tables.
var holdingColumns = map[string][]string{
	"code":        {"股票代码", "stock_code", "code"},
	"name":        {"股票名", "股票名称", "stock_name", "name"},
	"industry":    {"行业分类", "industry"},
	"subindustry": {"二级行业", "sub_industry"},
	"buy":         {"买入日期", "buy_date"},
	"sell":        {"卖出日期", "sell_date"},
	"buyprice":    {"买入价格", "buy_price"},
	"sellprice":   {"卖出价格", "sell_price"},
}

// columnIndex resolves each logical column to its position in the header
// row. Missing optional columns resolve to -1.
func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(holdingColumns))
	for col := range holdingColumns {
		index[col] = -1
	}
	for i, h := range header {
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff") // exported tables may carry a BOM

		for col, aliases := range holdingColumns {
			for _, alias := range aliases {
				if h == alias {
					index[col] = i
				}
			}
		}
	}
	return index
}

// field returns the trimmed cell of a logical column, or "" when the column
// is absent from the table.
func field(row []string, index map[string]int, col string) string {
	i := index[col]
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// DecodeHoldings reads the holdings table from 'r' as CSV.
//
// The code, buy date and sell date columns are required; name and industry
// classifications default to empty, prices to zero. A row whose buy date is
// after its sell date fails the whole decode with ErrInvalidInterval.
func DecodeHoldings(r io.Reader) ([]HoldingRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read holdings header: %w", err)
	}
	index := columnIndex(header)
	for _, col := range []string{"code", "buy", "sell"} {
		if index[col] < 0 {
			return nil, fmt.Errorf("holdings table has no %q column (header %q)", holdingColumns[col][0], header)
		}
	}

	var records []HoldingRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("holdings line %d: %w", line, err)
		}

		rec := HoldingRecord{
			Code:        field(row, index, "code"),
			Name:        field(row, index, "name"),
			Industry:    field(row, index, "industry"),
			SubIndustry: field(row, index, "subindustry"),
		}
		if rec.Code == "" {
			return nil, fmt.Errorf("holdings line %d: missing stock code", line)
		}

		if rec.Buy, err = date.Parse(field(row, index, "buy")); err != nil {
			return nil, fmt.Errorf("holdings line %d: buy date: %w", line, err)
		}
		if rec.Sell, err = date.Parse(field(row, index, "sell")); err != nil {
			return nil, fmt.Errorf("holdings line %d: sell date: %w", line, err)
		}
		if rec.Buy.After(rec.Sell) {
			return nil, fmt.Errorf("holdings line %d (%s %s..%s): %w", line, rec.Code, rec.Buy, rec.Sell, ErrInvalidInterval)
		}

		if s := field(row, index, "buyprice"); s != "" {
			if rec.BuyPrice, err = decimal.NewFromString(s); err != nil {
				return nil, fmt.Errorf("holdings line %d: buy price: %w", line, err)
			}
		}
		if s := field(row, index, "sellprice"); s != "" {
			if rec.SellPrice, err = decimal.NewFromString(s); err != nil {
				return nil, fmt.Errorf("holdings line %d: sell price: %w", line, err)
			}
		}

		records = append(records, rec)
	}
	return records, nil
}

// LoadHoldings reads the holdings table from a CSV file.
func LoadHoldings(path string) ([]HoldingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open holdings table %q: %w", path, err)
	}
	defer f.Close()

	records, err := DecodeHoldings(f)
	if err != nil {
		return nil, fmt.Errorf("in %q: %w", path, err)
	}
	return records, nil
}
