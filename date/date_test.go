package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNew_normalizes(t *testing.T) {
	// Day 32 of January rolls over to February 1st.
	got := New(2024, time.January, 32)
	want := New(2024, time.February, 1)
	if got != want {
		t.Errorf("New(2024, January, 32) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-12-26", want: New(2024, time.December, 26)},
		{in: "2024-1-2", want: New(2024, time.January, 2)},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	d := New(2024, time.March, 5)
	if got, want := d.String(), "2024-03-05"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAdd(t *testing.T) {
	d := New(2024, time.December, 26)
	if got, want := d.Add(30), New(2025, time.January, 25); got != want {
		t.Errorf("Add(30) = %v, want %v", got, want)
	}
}

func TestIsZero(t *testing.T) {
	var zero Date
	if !zero.IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if Today().IsZero() {
		t.Error("Today() should not report IsZero")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2024, time.December, 26)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `"2024-12-26"` {
		t.Errorf("Marshal() = %s, want %q", data, `"2024-12-26"`)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
