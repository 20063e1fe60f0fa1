package engine

import "time"

// ============================================================================
// BIKESHARE ENGINE TYPES — Report sections and display tables
// ============================================================================
// Each report section is computed independently from the same filtered
// TripView. Builders in text_builder.go turn them into console text.
// ============================================================================

// Report bundles the four statistics sections for one filtered view.
type Report struct {
	Trips     int           `json:"trips"`
	Time      TimeStats     `json:"time"`
	Stations  StationStats  `json:"stations"`
	Durations DurationStats `json:"durations"`
	Users     UserStats     `json:"users"`
}

// TimeStats holds the most frequent times of travel.
type TimeStats struct {
	CommonDay     int           `json:"commonDay"` // 0 = Monday
	CommonDayName string        `json:"commonDayName"`
	CommonHour    int           `json:"commonHour"` // 0-23
	Elapsed       time.Duration `json:"elapsed"`
}

// StationStats holds the most popular stations and trip.
type StationStats struct {
	CommonStart string        `json:"commonStart"`
	CommonEnd   string        `json:"commonEnd"`
	CommonTrip  string        `json:"commonTrip"` // "{start} to {end}"
	Elapsed     time.Duration `json:"elapsed"`
}

// Breakdown splits a number of seconds into calendar-style components.
type Breakdown struct {
	Days    int     `json:"days"`
	Hours   int     `json:"hours"`
	Minutes int     `json:"minutes"`
	Seconds float64 `json:"seconds"`
}

// DurationStats holds total and mean trip duration in seconds.
type DurationStats struct {
	Total          float64       `json:"total"`
	Mean           float64       `json:"mean"`
	TotalBreakdown Breakdown     `json:"totalBreakdown"`
	MeanBreakdown  Breakdown     `json:"meanBreakdown"`
	Elapsed        time.Duration `json:"elapsed"`
}

// Count is one category and the number of trips in it.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// BirthYearStats holds the modal, most recent and earliest birth years.
type BirthYearStats struct {
	Common     int `json:"common"`
	MostRecent int `json:"mostRecent"`
	Earliest   int `json:"earliest"`
}

// UserStats holds user demographics. Genders is only meaningful when
// HasGender is set; BirthYears is nil when the data carries no birth years.
type UserStats struct {
	UserTypes  []Count         `json:"userTypes"`
	HasGender  bool            `json:"hasGender"`
	Genders    []Count         `json:"genders,omitempty"`
	BirthYears *BirthYearStats `json:"birthYears,omitempty"`
	Elapsed    time.Duration   `json:"elapsed"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// Page is a half-open row range [Start, End) shown by the raw-record viewer.
// Prompt is set when the viewer should ask before showing the next page.
type Page struct {
	Start  int  `json:"start"`
	End    int  `json:"end"`
	Prompt bool `json:"prompt"`
}

// TableData defines how to render a block of raw trip records.
type TableData struct {
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"` // "text", "number"
}
