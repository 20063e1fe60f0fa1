// Package bikeshare provides interactive descriptive statistics over
// bikeshare trip records for three fixed regions.
//
// Usage:
//
//	sel, err := schema.NewSelection("chicago", "june", "all")
//	view, err := helpers.LoadRegion(dataDir, sel.Region.Key)
//	filtered, err := engine.ApplyFilters(view, sel)
//	report, err := engine.Execute(filtered)
//	engine.WriteReport(os.Stdout, report, true)
//
// The engine reads trips through a TripView backed by a gota dataframe.
// All computation is local and read-only; nothing is persisted.
package bikeshare
