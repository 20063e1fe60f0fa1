package helpers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/spektr-org/bikeshare/engine"
	"github.com/spektr-org/bikeshare/schema"
)

// ============================================================================
// CSV HELPER — Loads a regional trip CSV into an engine.TripView
// ============================================================================
// The header is matched against the trip model first, so column types are
// fixed up front instead of guessed. Month, day_of_week and hour are then
// derived from Start Time and appended as integer columns.
// ============================================================================

// ErrUnknownRegion is returned for a region name outside schema.Regions.
var ErrUnknownRegion = errors.New("unknown region")

// LoadRegion reads the region's CSV from dataDir.
func LoadRegion(dataDir, region string) (engine.TripView, error) {
	r, ok := schema.LookupRegion(region)
	if !ok {
		return engine.TripView{}, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}

	path := filepath.Join(dataDir, r.File)
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.TripView{}, fmt.Errorf("failed to read %s data: %w", r.DisplayName, err)
	}

	view, err := ParseCSV(data)
	if err != nil {
		return engine.TripView{}, fmt.Errorf("failed to load %s: %w", path, err)
	}

	log.Printf("📂 Loaded %d trips for %s from %s", view.Len(), r.DisplayName, path)
	return view, nil
}

// ParseCSV parses trip CSV bytes and derives the time columns.
func ParseCSV(data []byte) (engine.TripView, error) {
	sch, err := schema.DiscoverFromCSV(data)
	if err != nil {
		return engine.TripView{}, err
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.DetectTypes(false),
		dataframe.WithTypes(columnTypes(*sch)),
	)
	if df.Err != nil {
		return engine.TripView{}, fmt.Errorf("failed to parse CSV: %w", df.Err)
	}

	df = renameIndexColumn(df, sch.Headers)

	df, err = deriveTimeColumns(df)
	if err != nil {
		return engine.TripView{}, err
	}

	return engine.NewTripView(df, *sch), nil
}

// columnTypes pins every known column to its gota type. Unknown columns
// fall back to the default string type.
func columnTypes(sch schema.Config) map[string]series.Type {
	types := make(map[string]series.Type)
	for _, key := range sch.DimensionKeys() {
		types[key] = series.String
	}
	for _, key := range sch.MeasureKeys() {
		types[key] = series.Float
	}
	return types
}

// renameIndexColumn gives the unnamed leading column a readable name.
// gota auto-names blank headers, so the name is looked up by position.
func renameIndexColumn(df dataframe.DataFrame, headers []string) dataframe.DataFrame {
	names := df.Names()
	for i, h := range headers {
		if strings.TrimSpace(h) != "" || i >= len(names) {
			continue
		}
		renamed := df.Rename(schema.ColIndex, names[i])
		if renamed.Err != nil {
			return df
		}
		return renamed
	}
	return df
}

// deriveTimeColumns appends month (1-12), day_of_week (0 = Monday) and
// hour (0-23) computed from Start Time.
func deriveTimeColumns(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	starts := df.Col(schema.ColStartTime).Records()

	months := make([]int, len(starts))
	days := make([]int, len(starts))
	hours := make([]int, len(starts))

	for i, raw := range starts {
		t, err := parseStartTime(raw)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		months[i] = int(t.Month())
		days[i] = schema.MondayIndex(t.Weekday())
		hours[i] = t.Hour()
	}

	df = df.
		Mutate(series.New(months, series.Int, schema.ColMonth)).
		Mutate(series.New(days, series.Int, schema.ColDayOfWeek)).
		Mutate(series.New(hours, series.Int, schema.ColHour))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to derive time columns: %w", df.Err)
	}
	return df, nil
}

func parseStartTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range schema.StartTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s %q", schema.ColStartTime, raw)
}
