package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ltlgba "github.com/exesaLigno/BuchiSolver"
	"github.com/exesaLigno/BuchiSolver/errs"
	"github.com/exesaLigno/BuchiSolver/gba"
	"github.com/exesaLigno/BuchiSolver/report"
)

// texPath applies spec.md section 6's -o extension rule: substitute .tex
// for a given .pdf, otherwise append .tex unless it's already there.
func texPath(path string) string {
	if strings.HasSuffix(path, ".pdf") {
		return strings.TrimSuffix(path, ".pdf") + ".tex"
	}
	if strings.HasSuffix(path, ".tex") {
		return path
	}
	return path + ".tex"
}

func newTranslateCmd() *cobra.Command {
	var (
		outPath     string
		reverseMask bool
		maxStates   int
	)

	cmd := &cobra.Command{
		Use:   "translate <formula>",
		Short: "Build the generalized Büchi automaton for a formula, printing it in the line-oriented ASCII format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("reverse-mask") {
				reverseMask = cfg.ReverseMask
			}
			if !cmd.Flags().Changed("max-states") {
				maxStates = cfg.MaxStates
			}

			logger.Debug("translating", zap.String("formula", args[0]), zap.Bool("reverse_mask", reverseMask))

			res, err := ltlgba.Translate(args[0], ltlgba.Options{ReversedMask: reverseMask, MaxStates: maxStates})
			if err != nil {
				return err
			}

			if outPath != "" {
				path := texPath(outPath)
				f, err := os.Create(path)
				if err != nil {
					return &errs.IOError{Op: "create", Path: path, Err: err}
				}
				defer f.Close()
				if err := report.LaTeX(f, report.Derivation{
					Source:      args[0],
					Parsed:      res.Parsed,
					Normalized:  res.Normalized,
					All:         res.Index.All,
					Definitions: res.Definitions,
				}); err != nil {
					return &errs.IOError{Op: "write", Path: path, Err: err}
				}
				logger.Info("wrote derivation", zap.String("path", path))
			}

			return gba.Encode(os.Stdout, res.Automaton)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write a LaTeX derivation to this path (.pdf is rewritten to .tex)")
	cmd.Flags().BoolVarP(&reverseMask, "reverse-mask", "r", false, "visit free-variable masks first-to-last instead of last-to-first")
	cmd.Flags().IntVar(&maxStates, "max-states", 0, "abort if enumeration would exceed this many states (0: unbounded)")
	return cmd
}
