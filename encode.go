package holdex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// this file serializes the two build artifacts. Both are single JSON objects
// with ordered keys and a 2-space indent, so that two runs over the same
// inputs produce byte-identical files.

// writeObject finalizes an ordered object and writes it indented to w.
func writeObject(w io.Writer, obj *jsonObjectWriter) error {
	data, err := obj.MarshalJSON()
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = w.Write(out.Bytes())
	return err
}

// EncodeDailyIndex writes the daily holdings index to 'w' as a JSON object
// keyed by ISO date, days ascending, each value the ordered list of codes
// held on that day.
func EncodeDailyIndex(w io.Writer, index *DailyIndex) error {
	obj := &jsonObjectWriter{}
	for day, codes := range index.Days() {
		obj.Append(day.String(), codes)
	}
	if err := writeObject(w, obj); err != nil {
		return fmt.Errorf("cannot write daily holdings index: %w", err)
	}
	return nil
}

// EncodeAssetInfo writes the asset metadata dictionary to 'w' as a JSON
// object keyed by fully-qualified code, in first-seen order. Absent dates
// are empty strings, as the downstream consumer expects.
func EncodeAssetInfo(w io.Writer, infos *AssetInfoMap) error {
	obj := &jsonObjectWriter{}
	for full, info := range infos.All() {
		obj.Append(full, info)
	}
	if err := writeObject(w, obj); err != nil {
		return fmt.Errorf("cannot write asset info map: %w", err)
	}
	return nil
}

// WriteFile serializes with 'encode' into a file, creating or truncating it.
func WriteFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
