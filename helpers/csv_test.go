package helpers

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spektr-org/bikeshare/schema"
)

var chicagoCSV = []byte(`,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-01-02 08:05:00,2017-01-02 08:06:40,100,Streeter Dr & Grand Ave,Lake Shore Dr & Monroe St,Subscriber,Male,1990.0
2,2017-03-05 23:59:59,2017-03-06 00:10:00,601,Canal St & Adams St,Streeter Dr & Grand Ave,Customer,,
`)

var washingtonCSV = []byte(`Start Time,End Time,Trip Duration,Start Station,End Station,User Type
2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
`)

func TestParseCSVDerivesTimeColumns(t *testing.T) {
	view, err := ParseCSV(chicagoCSV)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if view.Len() != 2 {
		t.Fatalf("expected 2 trips, got %d", view.Len())
	}

	months, err := view.Ints(schema.ColMonth)
	if err != nil {
		t.Fatalf("month column: %v", err)
	}
	days, err := view.Ints(schema.ColDayOfWeek)
	if err != nil {
		t.Fatalf("day_of_week column: %v", err)
	}
	hours, err := view.Ints(schema.ColHour)
	if err != nil {
		t.Fatalf("hour column: %v", err)
	}

	// 2017-01-02 is a Monday, 2017-03-05 a Sunday
	assertInts(t, months, []int{1, 3}, "month")
	assertInts(t, days, []int{0, 6}, "day_of_week")
	assertInts(t, hours, []int{8, 23}, "hour")
}

func TestParseCSVColumnTypes(t *testing.T) {
	view, err := ParseCSV(chicagoCSV)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	durations, err := view.Floats(schema.ColTripDuration)
	if err != nil {
		t.Fatalf("Trip Duration: %v", err)
	}
	if durations[0] != 100 || durations[1] != 601 {
		t.Errorf("unexpected durations %v", durations)
	}

	years, err := view.Floats(schema.ColBirthYear)
	if err != nil {
		t.Fatalf("Birth Year: %v", err)
	}
	if years[0] != 1990 {
		t.Errorf("expected 1990, got %v", years[0])
	}
	if !math.IsNaN(years[1]) {
		t.Errorf("blank birth year should load as NaN, got %v", years[1])
	}

	if !view.HasColumn(schema.ColIndex) {
		t.Errorf("unnamed index column should be renamed to %q, columns: %v", schema.ColIndex, view.Columns())
	}
}

func TestParseCSVWithoutOptionalColumns(t *testing.T) {
	view, err := ParseCSV(washingtonCSV)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if view.HasColumn(schema.ColGender) || view.HasColumn(schema.ColBirthYear) {
		t.Error("Washington data should not carry Gender or Birth Year")
	}
	if view.Schema().HasColumn(schema.ColGender) {
		t.Error("schema should not list Gender")
	}
}

func TestParseCSVInvalidStartTime(t *testing.T) {
	data := []byte("Start Time,End Time,Trip Duration,Start Station,End Station,User Type\nyesterday,today,10,A,B,Subscriber\n")
	if _, err := ParseCSV(data); err == nil {
		t.Error("expected an error for an unparseable Start Time")
	}
}

func TestLoadRegion(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "washington.csv"), washingtonCSV, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	view, err := LoadRegion(dir, "Washington")
	if err != nil {
		t.Fatalf("LoadRegion failed: %v", err)
	}
	if view.Len() != 1 {
		t.Errorf("expected 1 trip, got %d", view.Len())
	}
}

func TestLoadRegionErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRegion(dir, "boston"); !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("expected ErrUnknownRegion, got %v", err)
	}
	if _, err := LoadRegion(dir, "chicago"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a missing-file error, got %v", err)
	}
}

func assertInts(t *testing.T, got, want []int, name string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", name, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %d, want %d", name, i, got[i], want[i])
		}
	}
}
