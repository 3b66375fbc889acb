// Package cli implements the taxfootprint command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/taxfootprint/footprint-calculator/internal/calculation"
	"github.com/taxfootprint/footprint-calculator/internal/config"
	"github.com/taxfootprint/footprint-calculator/internal/domain"
	"github.com/taxfootprint/footprint-calculator/internal/logging"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	v       *viper.Viper
	envFile string

	cfg    *config.AppConfig
	log    *logrus.Logger
	engine *calculation.Engine
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:           RootCmdName,
		Short:         RootCmdShort,
		Long:          RootCmdLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(config.KeyRatesFile, "", "YAML rate table overriding the built-in rates")
	pf.String(config.KeyLogLevel, "info", "log level (debug, info, warn, error)")
	pf.String(config.KeyLogFormat, "text", "log format (text or json)")
	pf.StringVar(&a.envFile, "env-file", "", "load environment variables from this file (default .env)")
	for _, key := range []string{config.KeyRatesFile, config.KeyLogLevel, config.KeyLogFormat} {
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(
		newFootprintCmd(a),
		newLiveCmd(a),
		newIncomeCmd(a),
		newRatesCmd(a),
		newServeCmd(a),
	)
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	root := NewRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

func (a *app) init(cmd *cobra.Command) error {
	var envFiles []string
	if a.envFile != "" {
		envFiles = append(envFiles, a.envFile)
	}
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return err
	}

	cfg, err := config.LoadAppConfig(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.NewWithOutput(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.log = logger

	rates, err := cfg.RateTable()
	if err != nil {
		return err
	}
	a.engine = calculation.NewEngineWithRates(rates)
	a.engine.SetLogger(logger)

	logger.WithFields(logrus.Fields{
		"command":  cmd.Name(),
		"tax_year": rates.TaxYear,
		"rates":    cfg.RatesFile,
	}).Debug("configuration loaded")
	return nil
}

// readForm loads the questionnaire at path. "-" reads stdin and an empty path
// gives an empty form, which the engine fills with defaults.
func readForm(cmd *cobra.Command, path string) (domain.FormInput, error) {
	switch path {
	case "":
		return domain.FormInput{}, nil
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return config.ParseForm(data)
	}
	return config.LoadForm(path)
}
