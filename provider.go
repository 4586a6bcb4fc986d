package holdex

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/holdex/date"
)

// this file fetches the asset reference list from a remote provider. The
// provider wraps the asset array in a response envelope whose exact shape
// varies across API versions, so the array is located with a JSONPath
// expression instead of a hardcoded struct.

// DefaultAssetsPath extracts the asset array from the provider's usual
// {"code": ..., "data": [...]} envelope.
const DefaultAssetsPath = "$.data[*]"

// diskCache implements a simple disk cache for HTTP responses, with a unique
// key per day so the local copy expires daily.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", date.Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("holdex-%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0644)
}

// DailyClient returns an http client caching responses on disk until the end
// of the day. Reference data moves slowly; rerunning a build must not hammer
// the provider.
func DailyClient() *http.Client {
	return &http.Client{Transport: &diskCache{http.DefaultTransport}}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}

// FetchAssets downloads the provider response from 'addr' and extracts asset
// descriptors located by the JSONPath expression 'path' (DefaultAssetsPath
// for the standard envelope). Descriptors without a stock code fail with
// ErrMalformedAsset, like their on-disk counterparts.
func FetchAssets(client *http.Client, addr, path string) ([]AssetRef, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch asset reference from %q: %w", addr, err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot locate assets with %q: %w", path, err)
	}
	// jsonpath returns either a list of matches or a single match; normalize
	// to a list.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}

	refs := make([]AssetRef, 0, len(jlist))
	for i, item := range jlist {
		jmap, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("asset %d: expected an object, got %T", i, item)
		}
		ref := AssetRef{
			Code:     jstring(jmap, "stockCode"),
			Exchange: jstring(jmap, "exchange"),
			IPO:      dateOnly(jstring(jmap, "ipoDate")),
			Delisted: dateOnly(jstring(jmap, "delistedDate")),
		}
		if ref.Code == "" {
			return nil, fmt.Errorf("asset %d from %q: %w", i, addr, ErrMalformedAsset)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// jstring reads a string property, tolerating its absence.
func jstring(jmap map[string]any, key string) string {
	s, _ := jmap[key].(string)
	return s
}
