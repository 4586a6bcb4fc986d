package holdex

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchAssets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"code": 1,
			"message": "success",
			"data": [
				{"stockCode": "000001", "exchange": "sz", "ipoDate": "1991-04-03T00:00:00+08:00"},
				{"stockCode": "600519", "exchange": "sh"}
			]
		}`))
	}))
	defer srv.Close()

	refs, err := FetchAssets(srv.Client(), srv.URL, DefaultAssetsPath)
	if err != nil {
		t.Fatalf("FetchAssets: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("got %d assets, want 2", len(refs))
	}
	if refs[0].Code != "000001" || refs[0].Exchange != "sz" || refs[0].IPO != "1991-04-03" {
		t.Errorf("refs[0] = %+v", refs[0])
	}
}

// The provider sometimes serves a bare array without the envelope; a
// different expression must be able to select it.
func TestFetchAssetsBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"stockCode": "000001", "exchange": "sz"}]`))
	}))
	defer srv.Close()

	refs, err := FetchAssets(srv.Client(), srv.URL, "$[*]")
	if err != nil {
		t.Fatalf("FetchAssets: %v", err)
	}
	if len(refs) != 1 || refs[0].Code != "000001" {
		t.Errorf("refs = %+v", refs)
	}
}

func TestFetchAssetsMissingCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"exchange": "sz"}]}`))
	}))
	defer srv.Close()

	_, err := FetchAssets(srv.Client(), srv.URL, DefaultAssetsPath)
	if !errors.Is(err, ErrMalformedAsset) {
		t.Errorf("FetchAssets = %v, want ErrMalformedAsset", err)
	}
}

func TestFetchAssetsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := FetchAssets(srv.Client(), srv.URL, DefaultAssetsPath); err == nil {
		t.Error("FetchAssets accepted a 403 response")
	}
}
