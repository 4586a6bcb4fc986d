package holdex

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// AssetRef is one entry of the asset reference table: the exchange a stock
// code trades on, and its listing lifecycle dates.
type AssetRef struct {
	Code     string // bare stock code, e.g. "000001"
	Exchange string // uppercased exchange suffix, e.g. "SZ"; may be empty
	IPO      string // date-only listing date, "" when unknown
	Delisted string // date-only delisting date, "" when still listed
}

// FullCode returns the exchange-qualified identifier for a stock code:
// "<code>.<EXCHANGE>" when the exchange is known, the bare code otherwise.
// It is the canonical join key for asset metadata.
func FullCode(code, exchange string) string {
	if exchange == "" {
		return code
	}
	return code + "." + strings.ToUpper(exchange)
}

// FullCode returns the exchange-qualified identifier of the asset.
func (a AssetRef) FullCode() string { return FullCode(a.Code, a.Exchange) }

// dateOnly truncates an ISO-8601 date-time string to its date part.
// "1991-04-03T00:00:00+08:00" becomes "1991-04-03"; a plain date or an empty
// string is returned unchanged.
func dateOnly(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

// Assets holds the asset reference lookup, keyed by bare stock code.
type Assets struct {
	index map[string]AssetRef
}

// NewAssets returns a new empty asset reference lookup.
func NewAssets() *Assets {
	return &Assets{index: make(map[string]AssetRef)}
}

// Add records an asset reference. The exchange is uppercased and the dates
// truncated to day precision. A code already present is overwritten: in the
// reference table the last entry for a code wins.
func (a *Assets) Add(ref AssetRef) {
	ref.Exchange = strings.ToUpper(ref.Exchange)
	ref.IPO = dateOnly(ref.IPO)
	ref.Delisted = dateOnly(ref.Delisted)
	a.index[ref.Code] = ref
}

// Lookup returns the reference for a bare stock code.
func (a *Assets) Lookup(code string) (AssetRef, bool) {
	ref, ok := a.index[code]
	return ref, ok
}

// Len returns the number of distinct stock codes in the lookup.
func (a *Assets) Len() int { return len(a.index) }

// jasset is the wire form of an asset descriptor in the reference dataset.
type jasset struct {
	StockCode    string `json:"stockCode"`
	Exchange     string `json:"exchange"`
	IPODate      string `json:"ipoDate,omitempty"`
	DelistedDate string `json:"delistedDate,omitempty"`
}

// DecodeAssets reads the asset reference dataset from 'r': a JSON array of
// descriptors with a required "stockCode" and optional "exchange",
// "ipoDate" and "delistedDate" fields.
//
// A descriptor without a stock code fails with ErrMalformedAsset. Duplicate
// codes are resolved last-wins.
func DecodeAssets(r io.Reader) (*Assets, error) {
	var jassets []jasset
	if err := json.NewDecoder(r).Decode(&jassets); err != nil {
		return nil, fmt.Errorf("cannot parse asset reference dataset: %w", err)
	}

	assets := NewAssets()
	for i, ja := range jassets {
		if ja.StockCode == "" {
			return nil, fmt.Errorf("asset record %d: %w", i, ErrMalformedAsset)
		}
		assets.Add(AssetRef{
			Code:     ja.StockCode,
			Exchange: ja.Exchange,
			IPO:      ja.IPODate,
			Delisted: ja.DelistedDate,
		})
	}
	return assets, nil
}

// LoadAssets reads the asset reference dataset from a file.
func LoadAssets(path string) (*Assets, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open asset reference %q: %w", path, err)
	}
	defer f.Close()

	assets, err := DecodeAssets(f)
	if err != nil {
		return nil, fmt.Errorf("in %q: %w", path, err)
	}
	return assets, nil
}

// EncodeAssets writes asset descriptors to 'w' in the reference dataset
// format, so that a freshly fetched list can be stored and later loaded by
// LoadAssets.
func EncodeAssets(w io.Writer, refs []AssetRef) error {
	jassets := make([]jasset, 0, len(refs))
	for _, ref := range refs {
		jassets = append(jassets, jasset{
			StockCode:    ref.Code,
			Exchange:     ref.Exchange,
			IPODate:      ref.IPO,
			DelistedDate: ref.Delisted,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jassets); err != nil {
		return fmt.Errorf("cannot write asset reference dataset: %w", err)
	}
	return nil
}
