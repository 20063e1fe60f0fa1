package session

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/spektr-org/bikeshare/engine"
	"github.com/spektr-org/bikeshare/prompt"
)

// ============================================================================
// SESSION — One exploration cycle after another
// ============================================================================
// A cycle: collect filters → load region → filter → four statistics
// sections → optional raw-record paging → ask to restart.
// End of input at any prompt ends the session cleanly.
// ============================================================================

const (
	Greeting         = "Hi! Let's explore some US bikeshare data!"
	RawDataQuestion  = "\nDo you want to see the individual trip data? Enter Y or N: "
	ContinueQuestion = "\nDo you wish to continue? Enter Y or N: "
	RestartQuestion  = "\nWould you like to restart? Enter Y or N: "

	DefaultPageSize = 5
)

// Loader returns every trip of a region, derived time columns included.
type Loader func(region string) (engine.TripView, error)

// Options tune a Session.
type Options struct {
	PageSize      int
	ShowTimings   bool
	EngineOptions []engine.Option
}

// Session drives the interactive loop.
type Session struct {
	prompter *prompt.Prompter
	out      io.Writer
	load     Loader
	opts     Options
}

// New creates a Session. A non-positive page size falls back to DefaultPageSize.
func New(p *prompt.Prompter, out io.Writer, load Loader, opts Options) *Session {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	return &Session{prompter: p, out: out, load: load, opts: opts}
}

// Run repeats cycles until the user declines to restart or input ends.
func (s *Session) Run() error {
	for {
		restart, err := s.Cycle()
		if errors.Is(err, io.EOF) {
			log.Printf("👋 Session: input closed, exiting")
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// Cycle runs one full exploration and reports whether the user asked to restart.
func (s *Session) Cycle() (bool, error) {
	id := uuid.NewString()

	fmt.Fprintln(s.out, Greeting)
	sel, err := s.prompter.Filters()
	if err != nil {
		return false, err
	}
	fmt.Fprintln(s.out, engine.Separator)
	log.Printf("🔍 Session %s: filters %s", id, sel)

	view, err := s.load(sel.Region.Key)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", sel.Region.DisplayName, err)
	}

	filtered, err := engine.ApplyFilters(view, sel)
	if err != nil {
		return false, fmt.Errorf("failed to filter trips: %w", err)
	}

	report, err := engine.Execute(filtered, s.opts.EngineOptions...)
	if err != nil {
		return false, fmt.Errorf("failed to compute statistics for %s: %w", sel, err)
	}
	engine.WriteReport(s.out, report, s.opts.ShowTimings)

	if err := s.display(filtered); err != nil {
		return false, err
	}

	log.Printf("✅ Session %s: %d trips reported", id, report.Trips)
	return s.prompter.Confirm(RestartQuestion)
}

// display offers the filtered rows, without derived columns, page by page.
func (s *Session) display(view engine.TripView) error {
	raw, err := view.WithoutDerived()
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "\nThere are %d individual trips\n", raw.Len())
	show, err := s.prompter.Confirm(RawDataQuestion)
	if err != nil || !show {
		return err
	}

	for _, page := range engine.PlanPages(raw.Len(), s.opts.PageSize) {
		table, err := engine.BuildTable(raw, page)
		if err != nil {
			return fmt.Errorf("failed to build rows %d-%d: %w", page.Start, page.End, err)
		}
		fmt.Fprint(s.out, "\n\n")
		if err := engine.WriteTable(s.out, table); err != nil {
			return err
		}

		if !page.Prompt {
			continue
		}
		more, err := s.prompter.Confirm(ContinueQuestion)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
	return nil
}
