package date

import (
	"testing"
	"time"
)

func TestHistory_AppendKeepsOrder(t *testing.T) {
	var h History[float64]
	h.Append(New(2023, time.March, 1), 3)
	h.Append(New(2023, time.January, 1), 1)
	h.Append(New(2023, time.February, 1), 2)

	var got []float64
	for _, v := range h.Values() {
		got = append(got, v)
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values = %v, want %v", got, want)
		}
	}
}

func TestHistory_AppendReplacesSameDay(t *testing.T) {
	var h History[float64]
	day := New(2023, time.January, 1)
	h.Append(day, 1)
	h.Append(day, 42)

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, ok := h.Get(day); !ok || v != 42 {
		t.Errorf("Get() = %v, %v, want 42, true", v, ok)
	}
}

func TestHistory_ValueAsOf(t *testing.T) {
	var h History[float64]
	h.Append(New(2023, time.January, 10), 100)
	h.Append(New(2023, time.January, 20), 200)

	testCases := []struct {
		name   string
		day    Date
		want   float64
		wantOK bool
	}{
		{name: "before first", day: New(2023, time.January, 5), wantOK: false},
		{name: "exact", day: New(2023, time.January, 10), want: 100, wantOK: true},
		{name: "between", day: New(2023, time.January, 15), want: 100, wantOK: true},
		{name: "after last", day: New(2023, time.February, 1), want: 200, wantOK: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.ValueAsOf(tc.day)
			if ok != tc.wantOK {
				t.Fatalf("ValueAsOf(%v) ok = %v, want %v", tc.day, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("ValueAsOf(%v) = %v, want %v", tc.day, got, tc.want)
			}
		})
	}
}

func TestHistory_Latest(t *testing.T) {
	var h History[string]
	if day, v := h.Latest(); !day.IsZero() || v != "" {
		t.Errorf("empty Latest() = %v, %q, want zero values", day, v)
	}

	h.Append(New(2023, time.January, 1), "old")
	h.Append(New(2023, time.June, 1), "new")
	day, v := h.Latest()
	if day != New(2023, time.June, 1) || v != "new" {
		t.Errorf("Latest() = %v, %q, want 2023-06-01, new", day, v)
	}
}
