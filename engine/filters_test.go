package engine_test

import (
	"testing"

	"github.com/spektr-org/bikeshare/engine"
	"github.com/spektr-org/bikeshare/schema"
)

func TestApplyFilters(t *testing.T) {
	view := loadTrips(t, tripsCSV)

	tests := []struct {
		name  string
		month string
		day   string
		want  int
	}{
		{"no filters", "all", "all", 6},
		{"month only", "january", "all", 3},
		{"day only", "all", "monday", 3},
		{"month and day", "january", "monday", 2},
		{"sunday", "all", "sunday", 1},
		{"empty result", "june", "all", 0},
		{"empty combination", "march", "monday", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filtered(t, view, tt.month, tt.day)
			if got.Len() != tt.want {
				t.Errorf("got %d trips, want %d", got.Len(), tt.want)
			}
		})
	}
}

func TestApplyFiltersRestrictsDerivedColumns(t *testing.T) {
	got := filtered(t, loadTrips(t, tripsCSV), "february", "tuesday")

	months, err := got.Ints(schema.ColMonth)
	if err != nil {
		t.Fatalf("month column: %v", err)
	}
	days, err := got.Ints(schema.ColDayOfWeek)
	if err != nil {
		t.Fatalf("day_of_week column: %v", err)
	}
	if len(months) != 1 || months[0] != 2 || days[0] != 1 {
		t.Errorf("expected one February Tuesday, got months=%v days=%v", months, days)
	}
}

func TestApplyFiltersKeepsSchema(t *testing.T) {
	view := loadTrips(t, tripsCSV)
	got := filtered(t, view, "january", "all")
	if !got.Schema().HasColumn(schema.ColBirthYear) {
		t.Error("filtered view should keep the discovered schema")
	}
}

func TestApplyFiltersRejectsUnknownNames(t *testing.T) {
	view := loadTrips(t, tripsCSV)
	sel := schema.Selection{Region: schema.Regions[0], Month: "december", Day: "all"}
	if _, err := engine.ApplyFilters(view, sel); err == nil {
		t.Error("expected an error for an unknown month")
	}
}
