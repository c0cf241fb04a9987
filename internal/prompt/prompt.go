// Package prompt asks the user for values until they pass validation.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Question is one prompt and the rule its answer must satisfy.
type Question struct {
	Prompt   string
	Validate func(answer string) error // nil accepts anything
}

// Asker returns a validated, trimmed answer. Implementations keep asking
// until Validate passes; an error means no answer can be obtained.
type Asker interface {
	Ask(q Question) (string, error)
}

// ErrNoInput is returned when input ends before a valid answer arrives.
var ErrNoInput = errors.New("input closed before a valid answer was entered")

// LineAsker reads answers line by line and prints validation errors
// before asking again.
type LineAsker struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineAsker returns a LineAsker over in and out.
func NewLineAsker(in io.Reader, out io.Writer) *LineAsker {
	return &LineAsker{in: bufio.NewReader(in), out: out}
}

// Ask implements Asker.
func (l *LineAsker) Ask(q Question) (string, error) {
	for {
		fmt.Fprint(l.out, q.Prompt)

		line, err := l.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(l.out)
				return "", ErrNoInput
			}
			return "", fmt.Errorf("reading answer: %w", err)
		}

		answer := strings.TrimSpace(line)
		if q.Validate == nil {
			return answer, nil
		}
		verr := q.Validate(answer)
		if verr == nil {
			return answer, nil
		}
		fmt.Fprintln(l.out, verr.Error())
	}
}
