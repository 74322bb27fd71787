package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pterm/pterm"

	"github.com/palemoky/eleven/internal/game"
	"github.com/palemoky/eleven/internal/ui/common"
)

// Confirm asks each decision with pterm's interactive yes/no prompt. It needs
// a real terminal on stdin. A cancelled ctx returns at once; the pending
// keyboard read is abandoned.
type Confirm struct{}

type confirmResult struct {
	yes bool
	err error
}

func (Confirm) WantsCard(ctx context.Context, t game.Turn) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	text := fmt.Sprintf("%s, your score is %s. Do you want another card?", t.Name, common.FormatScore(t.Score))

	done := make(chan confirmResult, 1)
	go func() {
		yes, err := pterm.DefaultInteractiveConfirm.WithDefaultValue(false).Show(text)
		done <- confirmResult{yes: yes, err: err}
	}()
	select {
	case r := <-done:
		return r.yes, r.err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// LinePrompt reads Y/N answers line by line, re-asking on anything else. It
// works with piped input. One goroutine owns the reader, so a line that
// arrives after a cancelled question answers the next one.
type LinePrompt struct {
	in  *bufio.Scanner
	out io.Writer

	once  sync.Once
	lines chan line
}

type line struct {
	text string
	err  error
}

// NewLinePrompt reads answers from r and writes questions to w.
func NewLinePrompt(r io.Reader, w io.Writer) *LinePrompt {
	return &LinePrompt{in: bufio.NewScanner(r), out: w, lines: make(chan line)}
}

// read feeds lines to WantsCard until the input ends, then reports why and
// closes the channel.
func (p *LinePrompt) read() {
	defer close(p.lines)
	for p.in.Scan() {
		p.lines <- line{text: p.in.Text()}
	}
	err := p.in.Err()
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	p.lines <- line{err: err}
}

func (p *LinePrompt) WantsCard(ctx context.Context, t game.Turn) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	p.once.Do(func() { go p.read() })

	for {
		_, _ = fmt.Fprintf(p.out, "%s, do you want another card? (Y/N) ", t.Name)

		var l line
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case got, ok := <-p.lines:
			if !ok {
				return false, io.ErrUnexpectedEOF
			}
			l = got
		}
		if l.err != nil {
			return false, l.err
		}

		switch strings.ToLower(strings.TrimSpace(l.text)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		_, _ = fmt.Fprintln(p.out, "The choice is not defined! Please try again.")
	}
}
