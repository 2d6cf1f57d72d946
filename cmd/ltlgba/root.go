// Package main implements the ltlgba command-line front end described in
// spec.md section 6, built the way vartan/cmd/vartan builds its cobra
// command tree: a thin root command, flags bound directly to RunE closures,
// and every failure reported through a returned error rather than an
// in-handler os.Exit.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/exesaLigno/BuchiSolver/internal/config"
	"github.com/exesaLigno/BuchiSolver/internal/logging"
)

var (
	cfgPath string
	verbose bool

	cfg    config.Config
	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ltlgba",
		Short:         "Translate an LTL formula into a generalized Büchi automaton",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			cfg = loaded
			if verbose {
				cfg.Verbose = true
			}
			l, err := logging.New(cfg.Verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a TOML configuration file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	cmd.AddCommand(newTranslateCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newReportCmd())
	return cmd
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
	if logger != nil {
		logger.Error("command failed", zap.Error(err))
		_ = logger.Sync()
	}
	os.Exit(1)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fail(err)
	}
}
