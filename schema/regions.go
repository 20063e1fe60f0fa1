package schema

import (
	"fmt"
	"strings"
	"time"
)

// ============================================================================
// ENUMERATIONS — Regions, months and days accepted as filters
// ============================================================================
// Fixed at build time. Lookups are case-insensitive and ignore surrounding
// whitespace; canonical values are lowercase.
// ============================================================================

// All disables a month or day filter.
const All = "all"

// Region is one of the fixed regional datasets.
type Region struct {
	Key         string `json:"key"`         // canonical lowercase name
	DisplayName string `json:"displayName"` // "New York City"
	File        string `json:"file"`        // CSV file name inside the data directory
}

// Regions lists every dataset the program knows about.
var Regions = []Region{
	{Key: "chicago", DisplayName: "Chicago", File: "chicago.csv"},
	{Key: "new york city", DisplayName: "New York City", File: "new_york_city.csv"},
	{Key: "washington", DisplayName: "Washington", File: "washington.csv"},
}

// Months that the datasets cover, in calendar order.
var Months = []string{"january", "february", "march", "april", "may", "june"}

// Days of the week, Monday first.
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// LookupRegion finds a region by name.
func LookupRegion(name string) (Region, bool) {
	key := normalize(name)
	for _, r := range Regions {
		if r.Key == key {
			return r, true
		}
	}
	return Region{}, false
}

// MonthNumber returns the calendar number (1 = January) of a month name.
// "all" returns 0 and ok.
func MonthNumber(name string) (int, bool) {
	key := normalize(name)
	if key == All {
		return 0, true
	}
	for i, m := range Months {
		if m == key {
			return i + 1, true
		}
	}
	return 0, false
}

// DayIndex returns the weekday index (0 = Monday) of a day name.
// "all" returns -1 and ok.
func DayIndex(name string) (int, bool) {
	key := normalize(name)
	if key == All {
		return -1, true
	}
	for i, d := range Days {
		if d == key {
			return i, true
		}
	}
	return 0, false
}

// DayName returns the display name for a Monday-first weekday index.
func DayName(index int) string {
	if index < 0 || index >= len(Days) {
		return ""
	}
	return time.Weekday((index + 1) % 7).String()
}

// MondayIndex converts a time.Weekday to a Monday-first index.
func MondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// Selection is the filter triple for one report cycle.
type Selection struct {
	Region Region `json:"region"`
	Month  string `json:"month"` // canonical month name or "all"
	Day    string `json:"day"`   // canonical day name or "all"
}

// NewSelection validates raw names and builds a Selection.
func NewSelection(region, month, day string) (Selection, error) {
	r, ok := LookupRegion(region)
	if !ok {
		return Selection{}, fmt.Errorf("unknown region %q", region)
	}
	if _, ok := MonthNumber(month); !ok {
		return Selection{}, fmt.Errorf("unknown month %q", month)
	}
	if _, ok := DayIndex(day); !ok {
		return Selection{}, fmt.Errorf("unknown day %q", day)
	}
	return Selection{Region: r, Month: normalize(month), Day: normalize(day)}, nil
}

func (s Selection) String() string {
	return fmt.Sprintf("region=%s month=%s day=%s", s.Region.Key, s.Month, s.Day)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
