package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxfootprint/footprint-calculator/internal/cli"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLIFootprintWithRateOverrides(t *testing.T) {
	out, err := runCLI(t,
		"--rates", "../testdata/example_rates.yaml",
		"footprint", "--input", "../testdata/example_form.yaml", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "councilTax,Council Tax,direct,1700.00")
}

func TestCLIOutputDir(t *testing.T) {
	dir := t.TempDir()
	out, err := runCLI(t, "footprint", "-i", "../testdata/example_form.json", "-f", "md", "-o", dir)
	require.NoError(t, err)

	path := strings.TrimSpace(strings.TrimPrefix(out, "Report written to "))
	assert.Equal(t, dir, filepath.Dir(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Household Tax Footprint")
}

func TestCLIRejectsInvalidRates(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("vat:\n  standard: 1.5\n"), 0o644))

	_, err := runCLI(t, "rates", "validate", bad)
	assert.ErrorContains(t, err, "vat.standard must be between 0 and 1")
}
