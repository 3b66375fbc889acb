package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/taxfootprint/footprint-calculator/internal/config"
	"github.com/taxfootprint/footprint-calculator/internal/output"
)

func newFootprintCmd(a *app) *cobra.Command {
	var input, outDir string

	cmd := &cobra.Command{
		Use:   FootprintCmdName,
		Short: FootprintCmdShort,
		Long: `Calculate the household's annual tax footprint and render a report.

Formats: ` + strings.Join(output.AvailableFormatterNames(), ", ") + `, or "all" with --output-dir.`,
		Example: `  taxfootprint footprint --input answers.yaml
  taxfootprint footprint --input answers.json --format html --output-dir reports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := readForm(cmd, input)
			if err != nil {
				return err
			}
			format := a.cfg.DefaultFormat

			report := output.NewReport(a.engine, form)
			a.log.WithFields(logrus.Fields{
				"income": report.Footprint.AnnualIncome.String(),
				"total":  report.Footprint.TotalAnnualTax.String(),
				"format": format,
			}).Info("footprint calculated")

			if outDir == "" {
				return output.Render(cmd.OutOrStdout(), report, format)
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			path, err := output.GenerateReport(report, format, outDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", `questionnaire file (YAML or JSON, "-" for stdin)`)
	cmd.Flags().StringP(config.KeyDefaultFormat, "f", "console", "report format")
	cmd.Flags().StringVarP(&outDir, "output-dir", "o", "", "write the report to a timestamped file in this directory")
	_ = a.v.BindPFlag(config.KeyDefaultFormat, cmd.Flags().Lookup(config.KeyDefaultFormat))
	return cmd
}
