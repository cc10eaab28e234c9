package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leengari/rowdb/internal/config"
	"github.com/leengari/rowdb/internal/logging"
	"github.com/leengari/rowdb/internal/registry"
	"github.com/leengari/rowdb/internal/repl"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rowdb",
	Short: "RowDB - Personal Data Table Manager",
	Long: `RowDB is an interactive console tool for managing small tabular
datasets: named tables with text columns, spreadsheet-style cell editing
(e.g. Name5, A12), ASCII table viewing, and persistence to the plain-text
.odt (Open Data Table) format.

Run without arguments to start the interactive shell.`,
	Version:       Version,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "rowdb.toml", "config file")
}

func run() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	logger, closeFn := logging.SetupLogger(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.SeqURL)
	defer closeFn()
	slog.SetDefault(logger)

	reg := registry.New(cfg.Storage.Extension)

	shell := repl.New(reg, os.Stdin, os.Stdout, Version)
	shell.Run()
	return nil
}

func printError(err error) {
	rootCmd.PrintErrf("Error: %v\n", err)
}
