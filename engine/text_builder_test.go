package engine

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestWriteUserStatsAbsentColumns(t *testing.T) {
	var buf bytes.Buffer
	WriteUserStats(&buf, UserStats{
		UserTypes: []Count{{"Customer", 1}, {"Subscriber", 3}},
	}, false)

	out := buf.String()
	for _, want := range []string{
		"User types & count:",
		"Customer - 1\nSubscriber - 3\n",
		"There is no Gender information",
		"There is no Birth Year information",
		Separator,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "This took") {
		t.Error("timings should be hidden")
	}
}

func TestWriteUserStatsWithDemographics(t *testing.T) {
	var buf bytes.Buffer
	WriteUserStats(&buf, UserStats{
		UserTypes:  []Count{{"Subscriber", 2}},
		HasGender:  true,
		Genders:    []Count{{"Female", 1}, {"Male", 1}},
		BirthYears: &BirthYearStats{Common: 1990, MostRecent: 2001, Earliest: 1899},
	}, false)

	out := buf.String()
	for _, want := range []string{
		"Gender types & count:\n\nFemale - 1\nMale - 1\n",
		"The most common birth year: 1990",
		"The most recent birth year: 2001",
		"The earliest birth year: 1899",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteReport(t *testing.T) {
	report := &Report{
		Trips:    3,
		Time:     TimeStats{CommonDay: 0, CommonDayName: "Monday", CommonHour: 8, Elapsed: 1500 * time.Millisecond},
		Stations: StationStats{CommonStart: "A", CommonEnd: "B", CommonTrip: "A to B"},
		Durations: DurationStats{
			TotalBreakdown: Breakdown{Days: 1, Minutes: 10},
			MeanBreakdown:  Breakdown{Hours: 8, Minutes: 3, Seconds: 20},
		},
		Users: UserStats{UserTypes: []Count{{"Subscriber", 3}}},
	}

	var buf bytes.Buffer
	WriteReport(&buf, report, true)
	out := buf.String()

	for _, want := range []string{
		"The most common day is: Monday",
		"The most common hour is: 8",
		"The most common start station is: A",
		"The most common end station is: B",
		"The most common station combination is: A to B",
		"Total travel time is 1 days, 0 hrs, 10 mins and 0 secs",
		"Mean travel time is 0 days, 8 hrs, 3 mins and 20 secs",
		"This took 1.500000 seconds.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if n := strings.Count(out, Separator); n != 4 {
		t.Errorf("expected 4 section separators, got %d", n)
	}
}
