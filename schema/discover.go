package schema

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ============================================================================
// DISCOVERY — Match a CSV header against the trip model
// ============================================================================
// Pipeline:
//   1. Read the header row (and require at least one data row)
//   2. Map each header onto a known dimension or measure
//   3. Record unknown headers as skipped (the unnamed index column included)
//   4. Fail if any required column is absent
// Optional columns (Gender, Birth Year) that are absent are simply left out;
// the engine reports them as missing information instead of failing.
// ============================================================================

// ErrMissingColumn is returned when a required trip column is absent.
var ErrMissingColumn = errors.New("missing required column")

// DiscoverFromCSV reads the header of CSV data and returns the dataset's Config.
func DiscoverFromCSV(data []byte) (*Config, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("CSV has no data rows")
		}
		return nil, fmt.Errorf("failed to read first CSV row: %w", err)
	}

	return DiscoverFromHeader(headers)
}

// DiscoverFromHeader maps a header row onto the trip model.
func DiscoverFromHeader(headers []string) (*Config, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("CSV has no columns")
	}

	model := TripSchema()
	dims := make(map[string]DimensionMeta, len(model.Dimensions))
	for _, d := range model.Dimensions {
		dims[d.Key] = d
	}
	meas := make(map[string]MeasureMeta, len(model.Measures))
	for _, m := range model.Measures {
		meas[m.Key] = m
	}

	config := &Config{
		Name:    model.Name,
		Headers: append([]string(nil), headers...),
	}

	seen := make(map[string]bool)
	for _, raw := range headers {
		h := strings.TrimSpace(raw)
		switch {
		case h == "":
			config.SkippedColumns = append(config.SkippedColumns, SkippedColumn{Column: ColIndex, Reason: "unnamed index column"})
		case seen[h]:
			config.SkippedColumns = append(config.SkippedColumns, SkippedColumn{Column: h, Reason: "duplicate header"})
		default:
			seen[h] = true
			if d, ok := dims[h]; ok {
				config.Dimensions = append(config.Dimensions, d)
			} else if m, ok := meas[h]; ok {
				config.Measures = append(config.Measures, m)
			} else {
				config.SkippedColumns = append(config.SkippedColumns, SkippedColumn{Column: h, Reason: "not part of the trip model"})
			}
		}
	}

	var missing []string
	for _, d := range model.Dimensions {
		if d.Required && !seen[d.Key] {
			missing = append(missing, d.Key)
		}
	}
	for _, m := range model.Measures {
		if m.Required && !seen[m.Key] {
			missing = append(missing, m.Key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return config, nil
}
