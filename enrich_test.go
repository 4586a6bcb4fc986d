package holdex

import (
	"strings"
	"testing"

	"github.com/etnz/holdex/date"
)

func testAssets(t *testing.T) *Assets {
	t.Helper()
	assets, err := DecodeAssets(strings.NewReader(`[
		{"stockCode": "000001", "exchange": "sz", "ipoDate": "1991-04-03T00:00:00+08:00"},
		{"stockCode": "600519", "exchange": "sh", "ipoDate": "2001-08-27"}
	]`))
	if err != nil {
		t.Fatalf("DecodeAssets: %v", err)
	}
	return assets
}

func TestBuildAssetInfo(t *testing.T) {
	records := []HoldingRecord{
		{Code: "000001", Name: "平安银行", Industry: "银行", SubIndustry: "全国性银行",
			Buy: date.MustParse("2024-01-01"), Sell: date.MustParse("2024-01-03")},
		{Code: "999999", Name: "无此股", Industry: "未知", SubIndustry: "未知",
			Buy: date.MustParse("2024-01-01"), Sell: date.MustParse("2024-01-02")},
	}
	infos := BuildAssetInfo(records, testAssets(t))

	info, ok := infos.Get("000001.SZ")
	if !ok {
		t.Fatal("resolved code not keyed by its qualified form")
	}
	if info.Name != "平安银行" || info.IPO != "1991-04-03" || info.Delisted != "" {
		t.Errorf("info = %+v", info)
	}

	// A code absent from the reference keeps its bare form with empty dates.
	info, ok = infos.Get("999999")
	if !ok {
		t.Fatal("unresolved code not keyed by its bare form")
	}
	if info.Name != "无此股" || info.IPO != "" || info.Delisted != "" {
		t.Errorf("degraded info = %+v", info)
	}
}

// TestBuildAssetInfoFirstSeenWins pins the duplicate policy of the metadata
// map: the first record of a code fixes its metadata. Note the asymmetry
// with the reference table, where the last entry wins.
func TestBuildAssetInfoFirstSeenWins(t *testing.T) {
	records := []HoldingRecord{
		{Code: "000001", Name: "first name", Buy: date.MustParse("2024-01-01"), Sell: date.MustParse("2024-01-02")},
		{Code: "000001", Name: "second name", Buy: date.MustParse("2024-02-01"), Sell: date.MustParse("2024-02-02")},
	}
	infos := BuildAssetInfo(records, testAssets(t))

	if infos.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", infos.Len())
	}
	info, _ := infos.Get("000001.SZ")
	if info.Name != "first name" {
		t.Errorf("name = %q, want the first record to win", info.Name)
	}
}

func TestAssetInfoMapOrder(t *testing.T) {
	records := []HoldingRecord{
		{Code: "600519", Buy: date.MustParse("2024-01-02"), Sell: date.MustParse("2024-01-03")},
		{Code: "000001", Buy: date.MustParse("2024-01-01"), Sell: date.MustParse("2024-01-02")},
	}
	infos := BuildAssetInfo(records, testAssets(t))

	var keys []string
	for k := range infos.All() {
		keys = append(keys, k)
	}
	// first-seen order, not sorted
	if len(keys) != 2 || keys[0] != "600519.SH" || keys[1] != "000001.SZ" {
		t.Errorf("keys = %v, want first-seen order", keys)
	}
}
