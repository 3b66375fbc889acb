package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taxfootprint/footprint-calculator/internal/config"
	"gopkg.in/yaml.v3"
)

func newRatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   RatesCmdName,
		Short: RatesCmdShort,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the active rate table as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(a.engine.Rates)
			if err != nil {
				return fmt.Errorf("failed to marshal rates: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	validate := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a rate table file without running a calculation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rates, err := config.NewRatesLoader().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid rate table for %s\n", args[0], rates.TaxYear)
			return nil
		},
	}

	export := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the active rate table to FILE as a starting point for overrides",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rates := a.engine.Rates
			if err := config.NewRatesLoader().SaveRates(&rates, args[0]); err != nil {
				return err
			}
			a.log.WithField("path", args[0]).Info("rates exported")
			fmt.Fprintf(cmd.OutOrStdout(), "Rates written to %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(show, validate, export)
	return cmd
}
