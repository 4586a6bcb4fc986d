package holdex

import (
	"iter"
	"log"
)

// AssetInfo is the descriptive metadata attached to a fully-qualified code:
// names and classifications from the holdings table, lifecycle dates from
// the asset reference. Field order is the serialization order.
type AssetInfo struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	SubIndustry string `json:"sub_industry"`
	IPO         string `json:"ipo_date"`
	Delisted    string `json:"delist_date"`
}

// AssetInfoMap maps fully-qualified codes to their metadata, remembering
// first-seen order for serialization.
//
// Unlike the asset reference (last-wins), this map is first-seen-wins: the
// first record of a code fixes its metadata, later records with the same
// code do not overwrite it. Both policies mirror the source behavior and are
// tested independently.
type AssetInfoMap struct {
	keys  []string
	index map[string]AssetInfo
}

// Get returns the metadata for a fully-qualified code.
func (m *AssetInfoMap) Get(fullCode string) (AssetInfo, bool) {
	info, ok := m.index[fullCode]
	return info, ok
}

// Len returns the number of distinct fully-qualified codes.
func (m *AssetInfoMap) Len() int { return len(m.keys) }

// All returns an iterator over codes and metadata in first-seen order.
func (m *AssetInfoMap) All() iter.Seq2[string, AssetInfo] {
	return func(yield func(string, AssetInfo) bool) {
		for _, k := range m.keys {
			if !yield(k, m.index[k]) {
				return
			}
		}
	}
}

// BuildAssetInfo joins every holding record against the asset reference.
//
// A resolved code is keyed by its exchange-qualified form and carries the
// reference lifecycle dates. A code absent from the reference degrades to
// its bare form with empty dates; that is a normal outcome, not an error,
// and only the count is logged.
func BuildAssetInfo(records []HoldingRecord, assets *Assets) *AssetInfoMap {
	m := &AssetInfoMap{index: make(map[string]AssetInfo)}
	unresolved := 0
	for _, rec := range records {
		ref, ok := assets.Lookup(rec.Code)
		if !ok {
			unresolved++
		}
		full := FullCode(rec.Code, ref.Exchange)
		if _, seen := m.index[full]; seen {
			continue
		}
		m.keys = append(m.keys, full)
		m.index[full] = AssetInfo{
			Name:        rec.Name,
			Industry:    rec.Industry,
			SubIndustry: rec.SubIndustry,
			IPO:         ref.IPO,
			Delisted:    ref.Delisted,
		}
	}
	if unresolved > 0 {
		log.Printf("%d holding records have no asset reference entry, kept their bare code", unresolved)
	}
	return m
}
