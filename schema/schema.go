package schema

// ============================================================================
// SCHEMA — Describes the shape of a regional trip dataset
// ============================================================================
// Every region ships the same core columns. Gender and Birth Year are only
// present for some regions, so the schema tracks which columns a given file
// actually carries. The engine uses it to decide which statistics apply.
// ============================================================================

// Column names as they appear in the regional CSV headers.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"

	// ColIndex names the unnamed leading row-id column some exports carry.
	ColIndex = "Index"
)

// Derived columns, computed from Start Time at load.
const (
	ColMonth     = "month"
	ColDayOfWeek = "day_of_week"
	ColHour      = "hour"
)

// DerivedColumns lists the columns that exist only for filtering and
// statistics. They are dropped before raw records are displayed.
var DerivedColumns = []string{ColMonth, ColDayOfWeek, ColHour}

// StartTimeLayouts are the timestamp layouts accepted for Start Time.
var StartTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// Config describes the columns of one loaded dataset.
type Config struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"` // raw header row, in file order

	Dimensions []DimensionMeta `json:"dimensions"`
	Measures   []MeasureMeta   `json:"measures"`

	// Columns present in the file but not part of the trip model
	SkippedColumns []SkippedColumn `json:"skippedColumns,omitempty"`
}

// DimensionMeta describes a text column used for grouping and modes.
type DimensionMeta struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	Required    bool   `json:"required"`
}

// MeasureMeta describes a numeric column used for sums, means and extremes.
type MeasureMeta struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	Required    bool   `json:"required"`
}

// SkippedColumn records why a header was not mapped to the trip model.
type SkippedColumn struct {
	Column string `json:"column"`
	Reason string `json:"reason"`
}

// TripSchema returns the full trip model: every column any region may carry.
func TripSchema() Config {
	return Config{
		Name: "Bikeshare Trips",
		Dimensions: []DimensionMeta{
			{Key: ColStartTime, DisplayName: "Start Time", Required: true},
			{Key: ColEndTime, DisplayName: "End Time", Required: true},
			{Key: ColStartStation, DisplayName: "Start Station", Required: true},
			{Key: ColEndStation, DisplayName: "End Station", Required: true},
			{Key: ColUserType, DisplayName: "User Type", Required: true},
			{Key: ColGender, DisplayName: "Gender"},
		},
		Measures: []MeasureMeta{
			{Key: ColTripDuration, DisplayName: "Trip Duration", Required: true},
			{Key: ColBirthYear, DisplayName: "Birth Year"},
		},
	}
}

// HasColumn reports whether the dataset carries the named column.
func (c Config) HasColumn(key string) bool {
	for _, d := range c.Dimensions {
		if d.Key == key {
			return true
		}
	}
	for _, m := range c.Measures {
		if m.Key == key {
			return true
		}
	}
	return false
}

// DimensionKeys returns all dimension keys.
func (c Config) DimensionKeys() []string {
	keys := make([]string, len(c.Dimensions))
	for i, d := range c.Dimensions {
		keys[i] = d.Key
	}
	return keys
}

// MeasureKeys returns all measure keys.
func (c Config) MeasureKeys() []string {
	keys := make([]string, len(c.Measures))
	for i, m := range c.Measures {
		keys[i] = m.Key
	}
	return keys
}
