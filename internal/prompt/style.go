package prompt

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Prompt styles accepted in config and flags.
const (
	StyleAuto  = "auto"
	StylePlain = "plain"
	StyleForm  = "form"
)

// New picks an Asker for style. Auto uses forms only when in is a terminal.
func New(style string, in *os.File, out io.Writer) Asker {
	switch style {
	case StyleForm:
		return FormAsker{}
	case StylePlain:
		return NewLineAsker(in, out)
	}

	if IsTerminal(in) {
		return FormAsker{}
	}
	return NewLineAsker(in, out)
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
