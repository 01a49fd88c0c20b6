// Package console implements the line-oriented question/answer exchange the
// explorer uses for every interactive prompt.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned once the input stream is exhausted. Callers
// treat it as fatal: no prompt can ever be answered again.
var ErrInputClosed = errors.New("console: input closed")

// Prompter writes questions to out and reads one answer line per question
// from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Ask prints question verbatim and returns the next input line with
// surrounding whitespace removed.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}
