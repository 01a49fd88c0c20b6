// Package pager prints a trip table to the console a page at a time for as
// long as the user keeps asking for more.
package pager

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/srikanthsesetti/pdsnd-github/internal/tripdata"
)

// PageSize is the number of rows shown per confirmation.
const PageSize = 5

const (
	firstPrompt = "\nDo you want to see 5 lines of raw data? Enter yes or no.\n"
	morePrompt  = "\nDo you want to see more raw data? Enter yes or no.\n"

	// Exhausted is printed when more rows are requested past the end.
	Exhausted = "No more raw data to display."
)

// Asker is the prompt/answer contract the pager depends on.
type Asker interface {
	Ask(question string) (string, error)
}

// Pager pages through a table.
type Pager struct {
	asker Asker
	out   io.Writer
}

// New creates a pager that prompts through asker and prints to out.
func New(asker Asker, out io.Writer) *Pager {
	return &Pager{asker: asker, out: out}
}

// Run prints successive pages of t. Only the answer "no" (any case) stops
// it; every other answer shows the next page.
func (p *Pager) Run(t *tripdata.Table) error {
	answer, err := p.asker.Ask(firstPrompt)
	for offset := 0; ; offset += PageSize {
		if err != nil {
			return fmt.Errorf("raw data prompt: %w", err)
		}
		if declined(answer) {
			return nil
		}
		if offset >= t.Len() {
			fmt.Fprintln(p.out, Exhausted)
			return nil
		}
		if err := p.print(t.Slice(offset, offset+PageSize)); err != nil {
			return err
		}
		answer, err = p.asker.Ask(morePrompt)
	}
}

func declined(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "no")
}

// print renders page with its source row numbers in the first column.
func (p *Pager) print(page *tripdata.Table) error {
	records := page.Records()
	ids := page.RowIDs()

	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\n", strings.Join(records[0], "\t"))
	for i, rec := range records[1:] {
		fmt.Fprintf(tw, "%s\t%s\n", strconv.Itoa(ids[i]), strings.Join(rec, "\t"))
	}
	return tw.Flush()
}
