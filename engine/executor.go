package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/spektr-org/bikeshare/schema"
)

// ============================================================================
// EXECUTOR — Runs the four report sections over a filtered view
// ============================================================================
// Entry point: Execute(view, opts...)
//
// Sections:
//   1. Time of travel   — modal day of week and start hour
//   2. Stations         — modal start, end and start→end trip
//   3. Trip durations   — total and mean, broken into d/h/m/s
//   4. Users            — user types, genders, birth years
//
// Every section is a pure read of the view. An empty view has no modes,
// so Execute refuses it with ErrNoTrips.
// ============================================================================

// ErrNoTrips is returned when the filtered view contains no trips.
var ErrNoTrips = errors.New("no trips match the selected filters")

// Execute computes the full report for a filtered view.
func Execute(view TripView, opts ...Option) (*Report, error) {
	if view.Len() == 0 {
		return nil, ErrNoTrips
	}

	log.Printf("🔧 Bikeshare: Processing %d trips", view.Len())

	timeStats, err := TimeOfTravel(view, opts...)
	if err != nil {
		return nil, err
	}
	stationStats, err := Stations(view, opts...)
	if err != nil {
		return nil, err
	}
	durationStats, err := Durations(view, opts...)
	if err != nil {
		return nil, err
	}
	userStats, err := Users(view, opts...)
	if err != nil {
		return nil, err
	}

	return &Report{
		Trips:     view.Len(),
		Time:      timeStats,
		Stations:  stationStats,
		Durations: durationStats,
		Users:     userStats,
	}, nil
}

// TimeOfTravel computes the most common day of week and start hour.
func TimeOfTravel(view TripView, opts ...Option) (TimeStats, error) {
	cfg := applyOptions(opts)
	start := cfg.Now()

	days, err := view.Ints(schema.ColDayOfWeek)
	if err != nil {
		return TimeStats{}, err
	}
	day, ok := ModeInt(days)
	if !ok {
		return TimeStats{}, fmt.Errorf("most common day: %w", ErrNoTrips)
	}

	hours, err := view.Ints(schema.ColHour)
	if err != nil {
		return TimeStats{}, err
	}
	hour, ok := ModeInt(hours)
	if !ok {
		return TimeStats{}, fmt.Errorf("most common hour: %w", ErrNoTrips)
	}

	return TimeStats{
		CommonDay:     day,
		CommonDayName: schema.DayName(day),
		CommonHour:    hour,
		Elapsed:       cfg.Now().Sub(start),
	}, nil
}

// Stations computes the most common start station, end station and trip.
// The trip is the most frequent (start, end) pair, which need not join the
// two individually most common stations.
func Stations(view TripView, opts ...Option) (StationStats, error) {
	cfg := applyOptions(opts)
	start := cfg.Now()

	starts, err := view.Strings(schema.ColStartStation)
	if err != nil {
		return StationStats{}, err
	}
	ends, err := view.Strings(schema.ColEndStation)
	if err != nil {
		return StationStats{}, err
	}

	commonStart, ok := ModeString(starts)
	if !ok {
		return StationStats{}, fmt.Errorf("most common start station: %w", ErrNoTrips)
	}
	commonEnd, ok := ModeString(ends)
	if !ok {
		return StationStats{}, fmt.Errorf("most common end station: %w", ErrNoTrips)
	}

	type trip struct{ from, to string }
	pairs := make(map[trip]int)
	for i := range starts {
		if isBlank(starts[i]) || isBlank(ends[i]) {
			continue
		}
		pairs[trip{starts[i], ends[i]}]++
	}
	var best trip
	bestCount := 0
	for p, n := range pairs {
		if n > bestCount || (n == bestCount && tripLabel(p.from, p.to) < tripLabel(best.from, best.to)) {
			best, bestCount = p, n
		}
	}
	if bestCount == 0 {
		return StationStats{}, fmt.Errorf("most common trip: %w", ErrNoTrips)
	}

	return StationStats{
		CommonStart: TitleCase(commonStart, cfg.Language),
		CommonEnd:   TitleCase(commonEnd, cfg.Language),
		CommonTrip:  tripLabel(TitleCase(best.from, cfg.Language), TitleCase(best.to, cfg.Language)),
		Elapsed:     cfg.Now().Sub(start),
	}, nil
}

// Durations computes total and mean trip duration.
func Durations(view TripView, opts ...Option) (DurationStats, error) {
	cfg := applyOptions(opts)
	start := cfg.Now()

	durations, err := view.Floats(schema.ColTripDuration)
	if err != nil {
		return DurationStats{}, err
	}
	mean, ok := MeanFloat(durations)
	if !ok {
		return DurationStats{}, fmt.Errorf("mean trip duration: %w", ErrNoTrips)
	}
	total := SumFloat(durations)

	return DurationStats{
		Total:          total,
		Mean:           mean,
		TotalBreakdown: BreakdownSeconds(total),
		MeanBreakdown:  BreakdownSeconds(mean),
		Elapsed:        cfg.Now().Sub(start),
	}, nil
}

// Users computes user type counts and, when the data carries them, gender
// counts and birth-year statistics.
func Users(view TripView, opts ...Option) (UserStats, error) {
	cfg := applyOptions(opts)
	start := cfg.Now()

	userTypes, err := view.Strings(schema.ColUserType)
	if err != nil {
		return UserStats{}, err
	}
	stats := UserStats{UserTypes: CountBy(userTypes)}

	if view.HasColumn(schema.ColGender) {
		genders, err := view.Strings(schema.ColGender)
		if err != nil {
			return UserStats{}, err
		}
		stats.HasGender = true
		stats.Genders = CountBy(genders)
	}

	if view.HasColumn(schema.ColBirthYear) {
		years, err := view.Floats(schema.ColBirthYear)
		if err != nil {
			return UserStats{}, err
		}
		stats.BirthYears = birthYearStats(years)
	}

	stats.Elapsed = cfg.Now().Sub(start)
	return stats, nil
}

// birthYearStats reads the extremes directly from the values. Returns nil
// when every value is missing.
func birthYearStats(years []float64) *BirthYearStats {
	earliest, recent, ok := MinMaxFloat(years)
	if !ok {
		return nil
	}
	common, _ := ModeInt(WholeNumbers(years))
	return &BirthYearStats{
		Common:     common,
		MostRecent: int(recent),
		Earliest:   int(earliest),
	}
}

func tripLabel(from, to string) string {
	return from + " to " + to
}
