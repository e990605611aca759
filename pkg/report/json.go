package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"digital.vasic.facts/pkg/fact"
)

// JSONReporter generates JSON reports from suite results.
type JSONReporter struct {
	pretty bool
}

// NewJSONReporter creates a JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(pretty bool) *JSONReporter {
	return &JSONReporter{pretty: pretty}
}

// GenerateReport creates a JSON report for a single suite.
func (r *JSONReporter) GenerateReport(
	suite *fact.Suite,
) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(suite, "", "  ")
	}
	return json.Marshal(suite)
}

// WriteReport writes a suite report to the given writer.
func (r *JSONReporter) WriteReport(
	w io.Writer,
	suite *fact.Suite,
) error {
	data, err := r.GenerateReport(suite)
	if err != nil {
		return fmt.Errorf(
			"failed to marshal suite report: %w", err,
		)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf(
			"failed to write suite report: %w", err,
		)
	}
	return nil
}

// SaveReport writes a suite report into outputDir, deriving
// the file name from the suite description.
func (r *JSONReporter) SaveReport(
	suite *fact.Suite,
	outputDir string,
) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	path := filepath.Join(
		outputDir,
		fmt.Sprintf("%s.json", slug(suite.Description)),
	)
	data, err := r.GenerateReport(suite)
	if err != nil {
		return "", fmt.Errorf(
			"failed to marshal suite report: %w", err,
		)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf(
			"failed to write suite report: %w", err,
		)
	}
	return path, nil
}

// slug converts a suite description into a file-name-safe
// token.
func slug(s string) string {
	if s == "" {
		return "suite"
	}
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
	return strings.ToLower(strings.Trim(mapped, "_"))
}
