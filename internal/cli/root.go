// Package cli provides the sumrank command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/wgomg/sumrank/internal/config"
	"github.com/wgomg/sumrank/internal/utils"
)

// Version is set at build time.
var Version = "0.1.0"

type app struct {
	cfg      *config.Config
	logger   *utils.Logger
	cleanup  func() error
	logLevel string
}

// NewRootCmd builds the command tree. Configuration is loaded before any
// subcommand runs.
func NewRootCmd() *cobra.Command {
	a := &app{cleanup: func() error { return nil }}

	root := &cobra.Command{
		Use:   "sumrank",
		Short: "Extractive text summarizer",
		Long: `sumrank ranks the sentences of a text with PageRank over a word-overlap
similarity graph and keeps the best third of them, in reading order.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.App.LogLevel = a.logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a.cfg = cfg
			a.logger, a.cleanup = utils.NewFileLogger(cfg.App.LogLevel, cfg.App.RawBodyLog, cfg.App.LogFile)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.cleanup()
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, error)")

	root.AddCommand(newSummarizeCmd(a))
	root.AddCommand(newRankCmd(a))
	root.AddCommand(newServeCmd(a))

	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
