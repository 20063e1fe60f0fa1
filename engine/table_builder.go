package engine

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
)

// ============================================================================
// TABLE BUILDER — Raw trip records, one page at a time
// ============================================================================
// PlanPages decides which row ranges the viewer prints; BuildTable turns
// one range into TableData; WriteTable aligns it for the console.
// ============================================================================

// PlanPages returns the pages shown for n rows at size rows per page.
//
// n <= size: a single page with every row and no follow-up prompt.
// Otherwise: every full page, each followed by a prompt, then one trailing
// page with the n%size leftover rows. No trailing page is planned when n is
// an exact multiple of size, so no row is shown twice.
func PlanPages(n, size int) []Page {
	if n <= 0 || size <= 0 {
		return nil
	}
	if n <= size {
		return []Page{{Start: 0, End: n}}
	}

	pages := make([]Page, 0, n/size+1)
	for end := size; end <= n; end += size {
		pages = append(pages, Page{Start: end - size, End: end, Prompt: true})
	}
	if rem := n % size; rem > 0 {
		pages = append(pages, Page{Start: n - rem, End: n})
	}
	return pages
}

// BuildTable extracts the rows of one page.
func BuildTable(view TripView, page Page) (*TableData, error) {
	sub, err := view.Slice(page.Start, page.End)
	if err != nil {
		return nil, err
	}

	records := sub.Frame().Records()
	if len(records) == 0 {
		return &TableData{Columns: []Column{}, Rows: [][]string{}}, nil
	}

	measures := view.Schema().MeasureKeys()
	header := records[0]
	columns := make([]Column, 0, len(header))
	for _, key := range header {
		colType := "text"
		if slices.Contains(measures, key) {
			colType = "number"
		}
		columns = append(columns, Column{Key: key, Label: key, Type: colType})
	}

	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]string, len(rec))
		for i, val := range rec {
			row[i] = formatCell(val, columns[i].Type)
		}
		rows = append(rows, row)
	}

	return &TableData{Columns: columns, Rows: rows}, nil
}

// WriteTable prints a table with aligned columns and a header row.
func WriteTable(w io.Writer, t *TableData) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	labels := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		labels[i] = c.Label
	}
	fmt.Fprintln(tw, strings.Join(labels, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// formatCell blanks missing values and trims float padding ("321.000000" -> "321").
func formatCell(val, colType string) string {
	if val == "NaN" {
		return ""
	}
	if colType == "number" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	return val
}
