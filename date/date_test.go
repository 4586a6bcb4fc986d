package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	// day 32 of January must roll over to February 1st.
	d := New(2024, time.January, 32)
	if got, want := d.String(), "2024-02-01"; got != want {
		t.Errorf("New(2024, 1, 32) = %s, want %s", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-01-02", want: "2024-01-02"},
		{in: "2024-1-2", want: "2024-01-02"},
		{in: "1991-04-03T00:00:00+08:00", want: "1991-04-03"},
		{in: "2007-10-16T00:00:00.000Z", want: "2007-10-16"},
		{in: "not a date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected an error, got %s", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestAddSub(t *testing.T) {
	d := New(2024, time.February, 28)
	if got, want := d.Add(1).String(), "2024-02-29"; got != want {
		t.Errorf("Add(1) = %s, want %s (2024 is a leap year)", got, want)
	}
	if got, want := d.Add(2).String(), "2024-03-01"; got != want {
		t.Errorf("Add(2) = %s, want %s", got, want)
	}
	if got, want := d.Add(2).Sub(d), 2; got != want {
		t.Errorf("Sub() = %d, want %d", got, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2024-01-02")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2024-01-02"` {
		t.Errorf("Marshal = %s, want %q", b, "2024-01-02")
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip: got %s, want %s", back, d)
	}
}
