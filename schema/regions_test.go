package schema

import (
	"testing"
	"time"
)

func TestLookupRegion(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"chicago", "chicago.csv", true},
		{"Chicago", "chicago.csv", true},
		{"NEW YORK CITY", "new_york_city.csv", true},
		{"  washington ", "washington.csv", true},
		{"new york", "", false},
		{"boston", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		r, ok := LookupRegion(tt.input)
		if ok != tt.ok {
			t.Errorf("LookupRegion(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if r.File != tt.want {
			t.Errorf("LookupRegion(%q).File = %q, want %q", tt.input, r.File, tt.want)
		}
	}
}

func TestMonthNumber(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"january", 1, true},
		{"June", 6, true},
		{"all", 0, true},
		{"ALL", 0, true},
		{"july", 0, false},
		{"jan", 0, false},
	}

	for _, tt := range tests {
		got, ok := MonthNumber(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MonthNumber(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDayIndex(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"monday", 0, true},
		{"Sunday", 6, true},
		{"all", -1, true},
		{"funday", 0, false},
	}

	for _, tt := range tests {
		got, ok := DayIndex(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DayIndex(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDayNameRoundTrip(t *testing.T) {
	for i, d := range Days {
		name := DayName(i)
		idx, ok := DayIndex(name)
		if !ok || idx != i {
			t.Errorf("DayName(%d) = %q does not map back to %q", i, name, d)
		}
	}
	if DayName(7) != "" || DayName(-1) != "" {
		t.Error("out-of-range indexes should have no name")
	}
}

func TestMondayIndex(t *testing.T) {
	if MondayIndex(time.Monday) != 0 {
		t.Error("Monday should be 0")
	}
	if MondayIndex(time.Sunday) != 6 {
		t.Error("Sunday should be 6")
	}
}

func TestNewSelection(t *testing.T) {
	sel, err := NewSelection("Chicago", "March", "all")
	if err != nil {
		t.Fatalf("NewSelection failed: %v", err)
	}
	if sel.Region.Key != "chicago" || sel.Month != "march" || sel.Day != All {
		t.Errorf("unexpected selection %+v", sel)
	}

	if _, err := NewSelection("chicago", "december", "all"); err == nil {
		t.Error("december is outside the dataset months")
	}
	if _, err := NewSelection("paris", "all", "all"); err == nil {
		t.Error("paris is not a region")
	}
	if _, err := NewSelection("chicago", "all", "someday"); err == nil {
		t.Error("someday is not a day")
	}
}
