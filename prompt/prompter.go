package prompt

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/spektr-org/bikeshare/schema"
)

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Ask prints question and blocks until a valid answer for f arrives.
// It only returns early when input ends (io.EOF) or fails.
func (p *Prompter) Ask(f Field, question string) (string, error) {
	fmt.Fprint(p.out, question)
	for {
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer, ok := Validate(f, Normalize(line)); ok {
			return answer, nil
		}
		log.Printf("⚠️ Prompt: rejected %s answer %q", f, line)
		fmt.Fprint(p.out, Corrections[f])
	}
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(FieldConfirm, question)
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

// Filters collects region, month and day, in that order.
func (p *Prompter) Filters() (schema.Selection, error) {
	region, err := p.Ask(FieldRegion, RegionQuestion)
	if err != nil {
		return schema.Selection{}, err
	}
	month, err := p.Ask(FieldMonth, MonthQuestion)
	if err != nil {
		return schema.Selection{}, err
	}
	day, err := p.Ask(FieldDay, DayQuestion)
	if err != nil {
		return schema.Selection{}, err
	}
	return schema.NewSelection(region, month, day)
}

func (p *Prompter) readLine() (string, error) {
	if p.in.Scan() {
		return p.in.Text(), nil
	}
	if err := p.in.Err(); err != nil {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return "", io.EOF
}
