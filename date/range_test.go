package date

import "testing"

func TestRangeDays(t *testing.T) {
	r := NewRange(MustParse("2024-01-01"), MustParse("2024-01-03"))

	var got []string
	for d := range r.Days() {
		got = append(got, d.String())
	}
	want := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	if len(got) != len(want) {
		t.Fatalf("Days() yielded %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Days()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d, want 3", r.Len())
	}
}

func TestRangeSwapsBounds(t *testing.T) {
	r := NewRange(MustParse("2024-01-03"), MustParse("2024-01-01"))
	if r.From.After(r.To) {
		t.Errorf("NewRange did not swap bounds: %s", r)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(MustParse("2024-01-01"), MustParse("2024-01-03"))
	for _, tc := range []struct {
		day  string
		want bool
	}{
		{"2023-12-31", false},
		{"2024-01-01", true},
		{"2024-01-03", true},
		{"2024-01-04", false},
	} {
		if got := r.Contains(MustParse(tc.day)); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.day, got, tc.want)
		}
	}
}
