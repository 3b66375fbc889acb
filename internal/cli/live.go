package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/taxfootprint/footprint-calculator/internal/output"
)

func newLiveCmd(a *app) *cobra.Command {
	var input, format string

	cmd := &cobra.Command{
		Use:   LiveCmdName,
		Short: LiveCmdShort,
		Long: `Run the quick estimate shown while the questionnaire is being filled in.
Only the answers given so far are counted, so the figure grows as more
questions are answered. Nothing is estimated until income is known.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := readForm(cmd, input)
			if err != nil {
				return err
			}
			live := a.engine.LiveTaxPercentage(form)

			switch format {
			case "console", "text":
				_, err = cmd.OutOrStdout().Write(output.FormatLive(live))
				return err
			case "json":
				data, err := json.MarshalIndent(live, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode live estimate: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			return fmt.Errorf("unsupported live format %q: use console or json", format)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", `questionnaire file (YAML or JSON, "-" for stdin)`)
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console or json)")
	return cmd
}
