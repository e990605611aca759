package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.facts/pkg/runner"
)

const greenBank = `
version: "1"
suites:
  - description: all green
    facts:
      - expr: two plus two
        actual: 4
        expected: 4
`

const redBank = `
version: "1"
suites:
  - description: has a failure
    facts:
      - expr: wrong
        actual: 4
        expected: 5
`

func writeBankFile(
	t *testing.T, name, content string,
) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(
		t, os.WriteFile(path, []byte(content), 0644),
	)
	return path
}

func TestRunBanks_AllGreen(t *testing.T) {
	var out bytes.Buffer
	err := runBanks(runParams{
		paths:  []string{writeBankFile(t, "g.yaml", greenBank)},
		stdout: &out,
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "all green")
	assert.Contains(t, out.String(), "1 fact verified.")
}

func TestRunBanks_FailureSetsExitStatus(t *testing.T) {
	var out bytes.Buffer
	err := runBanks(runParams{
		paths:  []string{writeBankFile(t, "r.yaml", redBank)},
		stdout: &out,
	})

	require.Error(t, err)
	var nse *runner.NonSuccessfulError
	require.ErrorAs(t, err, &nse)
	assert.Equal(t, 1, nse.Count)
	assert.Contains(t, out.String(), "wrong")
}

func TestRunBanks_WritesReports(t *testing.T) {
	outDir := t.TempDir()
	var out bytes.Buffer

	err := runBanks(runParams{
		paths:  []string{writeBankFile(t, "g.yaml", greenBank)},
		outDir: outDir,
		stdout: &out,
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "all_green.json")

	foundSummary := false
	for _, n := range names {
		if filepath.Ext(n) == ".md" {
			foundSummary = true
		}
	}
	assert.True(t, foundSummary,
		"run summary markdown should be written")
}

func TestRunBanks_MissingBank(t *testing.T) {
	var out bytes.Buffer
	err := runBanks(runParams{
		paths:  []string{"/nonexistent/bank.yaml"},
		stdout: &out,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
