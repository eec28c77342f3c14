package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"go.jacobcolvin.com/jsdoc/rules"
)

var (
	// ErrUnknownFormat indicates a format name that is not one of
	// [GetAllFormatStrings].
	ErrUnknownFormat = errors.New("unknown report format")
	// ErrWriteReport indicates a failure encoding or writing the report.
	ErrWriteReport = errors.New("write report")
)

// Format is an output format.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// GetAllFormatStrings returns the accepted format names.
func GetAllFormatStrings() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if !slices.Contains(GetAllFormatStrings(), string(f)) {
		return "", fmt.Errorf("%w %q, one of: %s",
			ErrUnknownFormat, s, strings.Join(GetAllFormatStrings(), ", "))
	}

	return f, nil
}

// Result holds the findings for one source file.
type Result struct {
	File     string          `json:"file"     yaml:"file"`
	Findings []rules.Finding `json:"findings" yaml:"findings"`
}

// Count returns the total number of findings across results.
func Count(results []Result) int {
	n := 0
	for _, r := range results {
		n += len(r.Findings)
	}

	return n
}

// Option configures [Write].
type Option func(*options)

type options struct {
	color   bool
	summary bool
}

// WithColor enables ANSI colour in text output.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

// WithSummary appends a closing count line to text output when any findings
// exist.
func WithSummary(enabled bool) Option {
	return func(o *options) {
		o.summary = enabled
	}
}

// Write writes the findings of results to w in the given format. Results
// without findings are omitted.
func Write(w io.Writer, format Format, results []Result, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	results = withFindings(results)

	var err error

	switch format {
	case FormatText:
		err = writeText(w, results, o)
	case FormatJSON:
		err = writeJSON(w, results)
	case FormatYAML:
		err = writeYAML(w, results)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	return nil
}

func withFindings(results []Result) []Result {
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if len(r.Findings) > 0 {
			out = append(out, r)
		}
	}

	return out
}

func writeJSON(w io.Writer, results []Result) error {
	b, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}

	b = append(b, '\n')

	_, err = w.Write(b)

	return err
}

func writeYAML(w io.Writer, results []Result) error {
	if len(results) == 0 {
		_, err := io.WriteString(w, "[]\n")

		return err
	}

	b, err := yaml.Marshal(results)
	if err != nil {
		return err
	}

	_, err = w.Write(b)

	return err
}
