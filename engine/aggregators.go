package engine

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ============================================================================
// AGGREGATORS — Modes, category counts, sums and extremes
// ============================================================================
// Missing values ("" or NaN) are skipped everywhere, so a blank Gender or
// Birth Year never becomes its own category or skews an extreme.
// Ties in a mode resolve to the smallest value.
// ============================================================================

// ModeInt returns the most frequent value. ok is false for empty input.
func ModeInt(values []int) (mode int, ok bool) {
	counts := make(map[int]int)
	for _, v := range values {
		counts[v]++
	}
	best := -1
	for v, n := range counts {
		if n > best || (n == best && v < mode) {
			mode, best = v, n
		}
	}
	return mode, best > 0
}

// ModeString returns the most frequent non-blank value.
func ModeString(values []string) (mode string, ok bool) {
	counts := make(map[string]int)
	for _, v := range values {
		if isBlank(v) {
			continue
		}
		counts[v]++
	}
	best := -1
	for v, n := range counts {
		if n > best || (n == best && v < mode) {
			mode, best = v, n
		}
	}
	return mode, best > 0
}

// CountBy counts trips per non-blank category, ordered by category.
func CountBy(values []string) []Count {
	counts := make(map[string]int)
	for _, v := range values {
		if isBlank(v) {
			continue
		}
		counts[v]++
	}
	result := make([]Count, 0, len(counts))
	for label, n := range counts {
		result = append(result, Count{Label: label, Count: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Label < result[j].Label })
	return result
}

// SumFloat sums the non-NaN values.
func SumFloat(values []float64) float64 {
	var total float64
	for _, v := range values {
		if !math.IsNaN(v) {
			total += v
		}
	}
	return total
}

// MeanFloat averages the non-NaN values. ok is false when there are none.
func MeanFloat(values []float64) (float64, bool) {
	var total float64
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		total += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

// MinMaxFloat returns the smallest and largest non-NaN values.
func MinMaxFloat(values []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// WholeNumbers truncates the non-NaN values to ints.
func WholeNumbers(values []float64) []int {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, int(v))
		}
	}
	return out
}

// BreakdownSeconds splits seconds into days, hours, minutes and seconds.
// The total is rounded to two decimals first so the seconds never reach 60.
func BreakdownSeconds(total float64) Breakdown {
	if total < 0 || math.IsNaN(total) {
		return Breakdown{}
	}
	total = RoundTo2(total)
	days := math.Floor(total / 86400)
	rem := total - days*86400
	hours := math.Floor(rem / 3600)
	rem -= hours * 3600
	minutes := math.Floor(rem / 60)
	rem -= minutes * 60
	return Breakdown{
		Days:    int(days),
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: RoundTo2(rem),
	}
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// TitleCase capitalizes each word of a station name.
func TitleCase(s string, tag language.Tag) string {
	return cases.Title(tag).String(s)
}

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func isBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "NaN"
}
