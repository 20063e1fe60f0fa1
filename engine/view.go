package engine

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"github.com/spektr-org/bikeshare/schema"
)

// ============================================================================
// TRIP VIEW — Read-only access to a loaded regional dataset
// ============================================================================
// Wraps a gota DataFrame together with the schema discovered at load.
// Filtering and paging return new views; the underlying frame is never
// mutated in place.
// ============================================================================

// TripView provides column access to a trip dataset.
type TripView struct {
	df     dataframe.DataFrame
	schema schema.Config
}

// NewTripView wraps a DataFrame loaded for the given schema.
func NewTripView(df dataframe.DataFrame, sch schema.Config) TripView {
	return TripView{df: df, schema: sch}
}

func (v TripView) Len() int {
	if v.df.Err != nil {
		return 0
	}
	return v.df.Nrow()
}

// Frame returns the underlying DataFrame.
func (v TripView) Frame() dataframe.DataFrame { return v.df }

// Schema returns the columns discovered when the view was loaded.
func (v TripView) Schema() schema.Config { return v.schema }

// Columns returns the column names in display order.
func (v TripView) Columns() []string { return v.df.Names() }

// HasColumn reports whether the frame carries the named column.
func (v TripView) HasColumn(name string) bool {
	for _, n := range v.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Strings returns a column's values as text. Missing values come back as
// "" or "NaN"; callers use isBlank to skip them.
func (v TripView) Strings(col string) ([]string, error) {
	if !v.HasColumn(col) {
		return nil, fmt.Errorf("%w: %s", schema.ErrMissingColumn, col)
	}
	return v.df.Col(col).Records(), nil
}

// Floats returns a numeric column. Missing values are NaN.
func (v TripView) Floats(col string) ([]float64, error) {
	if !v.HasColumn(col) {
		return nil, fmt.Errorf("%w: %s", schema.ErrMissingColumn, col)
	}
	return v.df.Col(col).Float(), nil
}

// Ints returns an integer column such as the derived month, day or hour.
func (v TripView) Ints(col string) ([]int, error) {
	if !v.HasColumn(col) {
		return nil, fmt.Errorf("%w: %s", schema.ErrMissingColumn, col)
	}
	vals, err := v.df.Col(col).Int()
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", col, err)
	}
	return vals, nil
}

// Slice returns rows [start, end) as a new view.
func (v TripView) Slice(start, end int) (TripView, error) {
	if start < 0 || end > v.Len() || start > end {
		return TripView{}, fmt.Errorf("row range [%d:%d] out of bounds for %d rows", start, end, v.Len())
	}
	indices := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		indices = append(indices, i)
	}
	sub := v.df.Subset(indices)
	if sub.Err != nil {
		return TripView{}, fmt.Errorf("failed to slice rows [%d:%d]: %w", start, end, sub.Err)
	}
	return v.withFrame(sub), nil
}

// WithoutDerived drops the month, day_of_week and hour columns.
func (v TripView) WithoutDerived() (TripView, error) {
	var present []string
	for _, col := range schema.DerivedColumns {
		if v.HasColumn(col) {
			present = append(present, col)
		}
	}
	if len(present) == 0 {
		return v, nil
	}
	dropped := v.df.Drop(present)
	if dropped.Err != nil {
		return TripView{}, fmt.Errorf("failed to drop derived columns: %w", dropped.Err)
	}
	return v.withFrame(dropped), nil
}

func (v TripView) withFrame(df dataframe.DataFrame) TripView {
	return TripView{df: df, schema: v.schema}
}
