package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"digital.vasic.facts/pkg/fact"
)

// RunSummary aggregates every suite of a run.
type RunSummary struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Suites      []SuiteSummary `json:"suites"`
	TotalSuites int            `json:"total_suites"`
	TotalFacts  int            `json:"total_facts"`
	Verified    int            `json:"verified"`
	Failed      int            `json:"failed"`
	Errored     int            `json:"errored"`
}

// SuiteSummary summarizes a single suite.
type SuiteSummary struct {
	Description string `json:"description"`
	Name        string `json:"name,omitempty"`
	Total       int    `json:"total"`
	Verified    int    `json:"verified"`
	Failed      int    `json:"failed"`
	Errored     int    `json:"errored"`
}

// AllPassed returns true when no suite recorded a failure or
// an error.
func (s *RunSummary) AllPassed() bool {
	return s.Failed == 0 && s.Errored == 0
}

// BuildRunSummary creates a run summary from suite results.
func BuildRunSummary(suites []*fact.Suite) *RunSummary {
	summary := &RunSummary{
		ID: fmt.Sprintf(
			"run_%s",
			time.Now().Format("20060102_150405"),
		),
		GeneratedAt: time.Now(),
		Suites:      make([]SuiteSummary, 0, len(suites)),
	}

	for _, suite := range suites {
		ss := SuiteSummary{
			Description: suite.Description,
			Name:        suite.Name,
			Total:       suite.Total(),
			Verified:    len(suite.Successes),
			Failed:      len(suite.Failures),
			Errored:     len(suite.Errors),
		}
		summary.Suites = append(summary.Suites, ss)
		summary.TotalSuites++
		summary.TotalFacts += ss.Total
		summary.Verified += ss.Verified
		summary.Failed += ss.Failed
		summary.Errored += ss.Errored
	}

	return summary
}

// SaveRunSummary saves the run summary to both JSON and
// Markdown files in the given output directory.
func SaveRunSummary(
	summary *RunSummary,
	outputDir string,
) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	jsonPath := filepath.Join(
		outputDir,
		fmt.Sprintf("%s.json", summary.ID),
	)
	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf(
			"failed to marshal summary: %w", err,
		)
	}
	if err := os.WriteFile(
		jsonPath, jsonData, 0644,
	); err != nil {
		return fmt.Errorf(
			"failed to write JSON summary: %w", err,
		)
	}

	mdPath := filepath.Join(
		outputDir,
		fmt.Sprintf("%s.md", summary.ID),
	)
	mdContent := generateSummaryMarkdown(summary)
	if err := os.WriteFile(
		mdPath, []byte(mdContent), 0644,
	); err != nil {
		return fmt.Errorf(
			"failed to write Markdown summary: %w", err,
		)
	}

	return nil
}

// generateSummaryMarkdown creates markdown from a run summary.
func generateSummaryMarkdown(summary *RunSummary) string {
	var sb strings.Builder

	sb.WriteString("# Facts - Run Summary\n\n")
	sb.WriteString(
		fmt.Sprintf("**Run ID:** %s\n\n", summary.ID),
	)
	sb.WriteString(
		fmt.Sprintf(
			"**Generated:** %s\n\n",
			summary.GeneratedAt.Format(time.RFC3339),
		),
	)

	sb.WriteString("## Suites\n\n")
	sb.WriteString(
		"| Suite | Facts | Verified | Failed | Errored |\n",
	)
	sb.WriteString(
		"|-------|-------|----------|--------|--------|\n",
	)

	for _, s := range summary.Suites {
		sb.WriteString(
			fmt.Sprintf(
				"| %s | %d | %d | %d | %d |\n",
				s.Description, s.Total,
				s.Verified, s.Failed, s.Errored,
			),
		)
	}

	sb.WriteString("\n## Totals\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(
		fmt.Sprintf(
			"| Suites | %d |\n", summary.TotalSuites,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Facts | %d |\n", summary.TotalFacts,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Verified | %d |\n", summary.Verified,
		),
	)
	sb.WriteString(
		fmt.Sprintf("| Failed | %d |\n", summary.Failed),
	)
	sb.WriteString(
		fmt.Sprintf("| Errored | %d |\n", summary.Errored),
	)

	sb.WriteString("\n---\n\n")
	sb.WriteString("*Generated by Facts*\n")

	return sb.String()
}
