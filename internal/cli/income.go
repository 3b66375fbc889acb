package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/taxfootprint/footprint-calculator/internal/calculation"
	"github.com/taxfootprint/footprint-calculator/internal/output"
)

func newIncomeCmd(a *app) *cobra.Command {
	var hours, rate string

	cmd := &cobra.Command{
		Use:     IncomeCmdName,
		Short:   IncomeCmdShort,
		Example: "  taxfootprint income --hours 37.5 --rate 12.21",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := decimal.NewFromString(hours)
			if err != nil {
				return fmt.Errorf("invalid --hours %q: %w", hours, err)
			}
			r, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("invalid --rate %q: %w", rate, err)
			}

			est := calculation.IncomeFromHours(h, r)
			a.log.WithField("annual", est.Annual.String()).Debug("income converted")
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Weekly:  %s\n", output.FormatCurrency(est.Weekly))
			fmt.Fprintf(out, "Monthly: %s\n", output.FormatCurrency(est.Monthly))
			fmt.Fprintf(out, "Annual:  %s\n", output.FormatCurrency(est.Annual))
			return nil
		},
	}

	cmd.Flags().StringVar(&hours, "hours", "0", "hours worked per week")
	cmd.Flags().StringVar(&rate, "rate", "0", "hourly rate in pounds")
	return cmd
}
