package engine

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ============================================================================
// TEXT BUILDER — Console text for each report section
// ============================================================================

// Separator closes every report section.
var Separator = strings.Repeat("-", 40)

// WriteReport prints all four sections in order. showTimings appends the
// time each section took to compute.
func WriteReport(w io.Writer, r *Report, showTimings bool) {
	WriteTimeStats(w, r.Time, showTimings)
	WriteStationStats(w, r.Stations, showTimings)
	WriteDurationStats(w, r.Durations, showTimings)
	WriteUserStats(w, r.Users, showTimings)
}

// WriteTimeStats prints the most frequent times of travel.
func WriteTimeStats(w io.Writer, s TimeStats, showTimings bool) {
	fmt.Fprint(w, "\nCalculating The Most Frequent Times of Travel...\n\n")
	fmt.Fprintf(w, "The most common day is: %s\n\n", s.CommonDayName)
	fmt.Fprintf(w, "The most common hour is: %d\n\n", s.CommonHour)
	writeFooter(w, s.Elapsed, showTimings)
}

// WriteStationStats prints the most popular stations and trip.
func WriteStationStats(w io.Writer, s StationStats, showTimings bool) {
	fmt.Fprint(w, "\nCalculating The Most Popular Stations and Trip...\n\n")
	fmt.Fprintf(w, "The most common start station is: %s\n\n", s.CommonStart)
	fmt.Fprintf(w, "The most common end station is: %s\n\n", s.CommonEnd)
	fmt.Fprintf(w, "The most common station combination is: %s\n\n", s.CommonTrip)
	writeFooter(w, s.Elapsed, showTimings)
}

// WriteDurationStats prints total and mean travel time.
func WriteDurationStats(w io.Writer, s DurationStats, showTimings bool) {
	fmt.Fprint(w, "\nCalculating Trip Duration...\n\n")
	fmt.Fprintf(w, "Total travel time is %s\n\n", FormatBreakdown(s.TotalBreakdown))
	fmt.Fprintf(w, "Mean travel time is %s\n\n", FormatBreakdown(s.MeanBreakdown))
	writeFooter(w, s.Elapsed, showTimings)
}

// WriteUserStats prints user types, genders and birth years.
func WriteUserStats(w io.Writer, s UserStats, showTimings bool) {
	fmt.Fprint(w, "\nCalculating User Stats...\n\n")

	fmt.Fprint(w, "User types & count:\n\n")
	writeCounts(w, s.UserTypes)

	if !s.HasGender {
		fmt.Fprint(w, "\nThere is no Gender information\n")
	} else {
		fmt.Fprint(w, "\nGender types & count:\n\n")
		writeCounts(w, s.Genders)
	}

	if s.BirthYears == nil {
		fmt.Fprint(w, "\nThere is no Birth Year information\n\n")
	} else {
		fmt.Fprintf(w, "\nThe most common birth year: %d\n\n", s.BirthYears.Common)
		fmt.Fprintf(w, "The most recent birth year: %d\n\n", s.BirthYears.MostRecent)
		fmt.Fprintf(w, "The earliest birth year: %d\n\n", s.BirthYears.Earliest)
	}

	writeFooter(w, s.Elapsed, showTimings)
}

// FormatBreakdown renders "1 days, 0 hrs, 10 mins and 0 secs".
func FormatBreakdown(b Breakdown) string {
	return fmt.Sprintf("%d days, %d hrs, %d mins and %s secs",
		b.Days, b.Hours, b.Minutes, strconv.FormatFloat(b.Seconds, 'f', -1, 64))
}

func writeCounts(w io.Writer, counts []Count) {
	for _, c := range counts {
		fmt.Fprintf(w, "%s - %d\n", c.Label, c.Count)
	}
}

func writeFooter(w io.Writer, elapsed time.Duration, showTimings bool) {
	if showTimings {
		fmt.Fprintf(w, "This took %s seconds.\n", strconv.FormatFloat(elapsed.Seconds(), 'f', 6, 64))
	}
	fmt.Fprintln(w, Separator)
}
