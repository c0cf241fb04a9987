// Package store persists savings goals to a comma-delimited text file,
// one goal per line: name,target,percentage.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/theirongolddev/savealloc/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultPath is the data file used when nothing else is configured.
const DefaultPath = "userdata.txt"

// ErrMalformedLine marks a line without exactly three fields. Loaders skip
// such lines instead of failing.
var ErrMalformedLine = errors.New("malformed goal line")

// ParseResult holds the goals read from a data file.
type ParseResult struct {
	Goals   []model.Goal
	Skipped int
}

// ParseLine decodes one "name,target,percentage" line. Names are not
// escaped, so a name containing a comma yields a malformed line.
func ParseLine(line string) (model.Goal, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return model.Goal{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedLine, len(parts))
	}

	target, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Goal{}, fmt.Errorf("parsing target amount %q: %w", parts[1], err)
	}
	pct, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
	if err != nil {
		return model.Goal{}, fmt.Errorf("parsing allocation percentage %q: %w", parts[2], err)
	}

	return model.NewGoal(parts[0], target, pct), nil
}

// Parse reads goals line by line. Malformed lines are skipped and counted.
// The first numeric parse failure stops the read; goals decoded before it
// are returned together with the error.
func Parse(r io.Reader) (ParseResult, error) {
	var res ParseResult

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		g, err := ParseLine(scanner.Text())
		if errors.Is(err, ErrMalformedLine) {
			res.Skipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("line %d: %w", lineNo, err)
		}
		res.Goals = append(res.Goals, g)
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("reading goals: %w", err)
	}
	return res, nil
}

// Format writes goals in file order, one line each.
func Format(w io.Writer, goals []model.Goal) error {
	bw := bufio.NewWriter(w)
	for _, g := range goals {
		if _, err := fmt.Fprintf(bw, "%s,%s,%s\n", g.Name, g.TargetAmount.String(), g.AllocationPct.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// File stores goals at a fixed path.
type File struct {
	path string
	log  *zap.Logger
}

// NewFile returns a File store for path. An empty path means DefaultPath.
func NewFile(path string, log *zap.Logger) *File {
	if path == "" {
		path = DefaultPath
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &File{path: path, log: log}
}

// Path returns the data file location.
func (f *File) Path() string { return f.path }

// Load reads the data file. A missing file yields no goals and no error.
func (f *File) Load() ([]model.Goal, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer func() { _ = fh.Close() }()

	res, err := Parse(fh)
	if res.Skipped > 0 {
		f.log.Debug("skipped malformed goal lines", zap.String("path", f.path), zap.Int("skipped", res.Skipped))
	}
	return res.Goals, err
}

// Save overwrites the data file with goals. The write is not atomic.
func (f *File) Save(goals []model.Goal) error {
	fh, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating data file: %w", err)
	}

	if err := Format(fh, goals); err != nil {
		_ = fh.Close()
		return fmt.Errorf("writing data file: %w", err)
	}
	return fh.Close()
}
