package holdex

import (
	"encoding/json"
	"testing"
)

func TestJSONObjectWriterKeepsOrder(t *testing.T) {
	w := &jsonObjectWriter{}
	w.Append("zulu", 1).Append("alpha", []string{"a"}).Append("mike", "m")

	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if got, want := string(data), `{"zulu":1,"alpha":["a"],"mike":"m"}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if !json.Valid(data) {
		t.Errorf("output is not valid JSON: %s", data)
	}
}

func TestJSONObjectWriterEmpty(t *testing.T) {
	w := &jsonObjectWriter{}
	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("got %s, want {}", data)
	}
}

func TestJSONObjectWriterNoHTMLEscape(t *testing.T) {
	w := &jsonObjectWriter{}
	w.Append("name", "P&G <cn>")
	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if got, want := string(data), `{"name":"P&G <cn>"}`; got != want {
		t.Errorf("got %s, want %s (no HTML escaping)", got, want)
	}
}
