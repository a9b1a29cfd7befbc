package main

import (
	"errors"
	"fmt"

	"github.com/iwvelando/rent-or-own/internal/config"
	"github.com/iwvelando/rent-or-own/internal/forecast"
	"github.com/iwvelando/rent-or-own/pkg/constants"
	"github.com/iwvelando/rent-or-own/pkg/output"
	"github.com/iwvelando/rent-or-own/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAnalyzeCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run every active scenario and print the comparison",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, root)
		},
	}
	cmd.Flags().StringVar(&root.outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	return cmd
}

// loadWithLogger reads the scenario file and builds the logger it describes.
func loadWithLogger(opts *rootOptions) (*config.Configuration, *zap.Logger, error) {
	conf, err := config.LoadConfiguration(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration at %s: %w", opts.configPath, err)
	}

	logger, err := initializeLogger(conf.Logging, opts.logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return conf, logger, nil
}

func runAnalyze(cmd *cobra.Command, opts *rootOptions) error {
	const op = "main.runAnalyze"

	conf, logger, err := loadWithLogger(opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if opts.outputFormat != "" {
		outputFormat = opts.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", op),
		)
	}

	results, err := forecast.GetForecast(logger, *conf)
	if err != nil {
		logger.Error("failed to compute forecast",
			zap.String("op", op),
			zap.Error(err),
		)
		return err
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(out, results)
	case constants.OutputFormatCSV:
		output.CsvFormat(out, results)
	case constants.OutputFormatJSON:
		return output.JSONFormat(out, results)
	}
	return nil
}

func newValidateCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the scenario file without running the comparison",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, root)
		},
	}
}

func runValidate(cmd *cobra.Command, opts *rootOptions) error {
	const op = "main.runValidate"

	conf, logger, err := loadWithLogger(opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	out := cmd.OutOrStdout()
	for _, warning := range conf.ValidateConfiguration() {
		fmt.Fprintf(out, "warning: %s\n", warning)
	}

	var errs []error
	for _, scenario := range conf.ActiveScenarios() {
		if _, err := conf.ResolveScenario(scenario); err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(out, "ok: %s\n", scenario.Name)
	}
	if err := errors.Join(errs...); err != nil {
		logger.Error("configuration is invalid",
			zap.String("op", op),
			zap.Int("invalid", len(errs)),
		)
		return err
	}
	return nil
}
