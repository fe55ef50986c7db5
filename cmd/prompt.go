package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/quickcalc/internal/problemgen"
	"github.com/abhisek/quickcalc/internal/ui/theme"
)

// errQuit is returned when the learner ends input early.
var errQuit = errors.New("quit")

// prompter reads learner answers line by line.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// line prints label and returns the trimmed reply. EOF and "q" yield errQuit.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	text := strings.TrimSpace(p.in.Text())
	if text == "q" || text == "quit" {
		return "", errQuit
	}
	return text, nil
}

// number keeps asking until the reply parses. Replies listed in accept are
// returned verbatim instead of being parsed.
func (p *prompter) number(label string, accept ...string) (float64, string, error) {
	for {
		text, err := p.line(label)
		if err != nil {
			return 0, "", err
		}
		for _, a := range accept {
			if text == a {
				return 0, text, nil
			}
		}
		v, err := problemgen.ParseAnswer(text)
		if err != nil {
			fmt.Fprintln(p.out, theme.Hint.Render("Please enter a number."))
			continue
		}
		return v, text, nil
	}
}
