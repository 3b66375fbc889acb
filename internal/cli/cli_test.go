package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxfootprint/footprint-calculator/internal/calculation"
	"github.com/taxfootprint/footprint-calculator/internal/config"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
	"github.com/taxfootprint/footprint-calculator/internal/logging"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestFootprint_DefaultsToBuiltInForm(t *testing.T) {
	out, _, err := run(t, "", "footprint", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "total,Total,,5286.00,5286.00,0.00,100.0")
}

func TestFootprint_ReadsStdin(t *testing.T) {
	out, _, err := run(t, "income: 30000\ncouncilTaxBand: D\n", "footprint", "-i", "-", "-f", "summary")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "TAX FOOTPRINT SUMMARY"), out)
}

func TestFootprint_FormatFromEnvironment(t *testing.T) {
	t.Setenv("TAXFOOTPRINT_FORMAT", "markdown")
	out, _, err := run(t, "", "footprint")
	require.NoError(t, err)
	assert.Contains(t, out, "# Household Tax Footprint")
}

func TestFootprint_WritesReportFile(t *testing.T) {
	calculation.SetNowFunc(func() time.Time { return time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC) })
	t.Cleanup(func() { calculation.SetNowFunc(nil) })

	dir := filepath.Join(t.TempDir(), "reports")
	out, _, err := run(t, "", "footprint", "--format", "json", "--output-dir", dir)
	require.NoError(t, err)

	want := filepath.Join(dir, "tax_footprint_20251017_120000.json")
	assert.Equal(t, "Report written to "+want+"\n", out)
	assert.FileExists(t, want)
}

func TestFootprint_UnknownFormat(t *testing.T) {
	_, _, err := run(t, "", "footprint", "--format", "pdf")
	assert.ErrorContains(t, err, "unsupported report format")
}

func TestLive(t *testing.T) {
	out, _, err := run(t, `{"income":"30000"}`, "live", "-i", "-", "--format", "json")
	require.NoError(t, err)

	var live domain.LiveResult
	require.NoError(t, json.Unmarshal([]byte(out), &live))
	assert.True(t, live.TotalTax.Equal(decimal.NewFromInt(3486)), live.TotalTax.String())

	out, _, err = run(t, "", "live")
	require.NoError(t, err)
	assert.Equal(t, "No income entered yet.\n", out)

	_, _, err = run(t, "", "live", "--format", "xml")
	assert.ErrorContains(t, err, "unsupported live format")
}

func TestIncome(t *testing.T) {
	out, _, err := run(t, "", "income", "--hours", "40", "--rate", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Weekly:  £400.00")
	assert.Contains(t, out, "Annual:  £20,800.00")

	_, _, err = run(t, "", "income", "--hours", "forty")
	assert.ErrorContains(t, err, "invalid --hours")
}

func TestRates_ExportValidateAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")

	out, _, err := run(t, "", "rates", "export", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Rates written to")

	out, _, err = run(t, "", "rates", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "valid rate table for "+domain.DefaultRateTable().TaxYear)

	override := filepath.Join(t.TempDir(), "override.yaml")
	require.NoError(t, os.WriteFile(override, []byte("tax_year: \"2026/27\"\n"), 0o644))
	out, _, err = run(t, "", "--rates", override, "rates", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "tax_year: 2026/27")
}

func TestRootFlagErrors(t *testing.T) {
	_, _, err := run(t, "", "--rates", filepath.Join(t.TempDir(), "missing.yaml"), "live")
	assert.ErrorContains(t, err, "failed to read file")

	_, _, err = run(t, "", "--log-level", "chatty", "live")
	assert.ErrorContains(t, err, "invalid log level")

	_, _, err = run(t, "", "--log-format", "xml", "live")
	assert.ErrorContains(t, err, "log format must be")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "", "--log-level", "debug", "--log-format", "json", "live")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"configuration loaded"`)
	assert.Contains(t, stderr, `"command":"live"`)
}

func TestEnvFile(t *testing.T) {
	t.Setenv("TAXFOOTPRINT_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("TAXFOOTPRINT_LOG_LEVEL"))

	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("TAXFOOTPRINT_LOG_LEVEL=debug\n"), 0o644))

	_, stderr, err := run(t, "", "--env-file", envFile, "live")
	require.NoError(t, err)
	assert.Contains(t, stderr, "configuration loaded")
}

func TestServe_StopsOnCancel(t *testing.T) {
	a := &app{
		cfg:    &config.AppConfig{Addr: "127.0.0.1:0"},
		log:    logging.Discard(),
		engine: calculation.NewEngine(),
	}
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	assert.NoError(t, a.serve(ctx))
}

func TestServe_ListenError(t *testing.T) {
	a := &app{
		cfg:    &config.AppConfig{Addr: "127.0.0.1:-1"},
		log:    logging.Discard(),
		engine: calculation.NewEngine(),
	}
	assert.Error(t, a.serve(context.Background()))
}
