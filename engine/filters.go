package engine

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/spektr-org/bikeshare/schema"
)

// ============================================================================
// FILTERS — Month and day-of-week equality filters
// ============================================================================
// Filters run against the derived integer columns. Each filter is applied
// as its own Filter call so the two combine with AND ("all" skips one).
// ============================================================================

// ApplyFilters returns the trips matching the selection's month and day.
func ApplyFilters(view TripView, sel schema.Selection) (TripView, error) {
	month, ok := schema.MonthNumber(sel.Month)
	if !ok {
		return TripView{}, fmt.Errorf("unknown month %q", sel.Month)
	}
	day, ok := schema.DayIndex(sel.Day)
	if !ok {
		return TripView{}, fmt.Errorf("unknown day %q", sel.Day)
	}

	df := view.Frame()
	if month > 0 {
		df = filterEq(df, schema.ColMonth, month)
	}
	if day >= 0 {
		df = filterEq(df, schema.ColDayOfWeek, day)
	}
	if df.Err != nil {
		return TripView{}, fmt.Errorf("failed to filter trips: %w", df.Err)
	}

	return view.withFrame(df), nil
}

func filterEq(df dataframe.DataFrame, col string, value int) dataframe.DataFrame {
	return df.Filter(dataframe.F{
		Colname:    col,
		Comparator: series.Eq,
		Comparando: value,
	})
}
