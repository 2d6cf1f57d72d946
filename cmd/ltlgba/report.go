package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ltlgba "github.com/exesaLigno/BuchiSolver"
	"github.com/exesaLigno/BuchiSolver/errs"
	"github.com/exesaLigno/BuchiSolver/report"
)

func newReportCmd() *cobra.Command {
	var (
		outDir      string
		reverseMask bool
	)

	cmd := &cobra.Command{
		Use:   "report <formula>",
		Short: "Write Graphviz dumps of the pre/post-normalization formula and the automaton, plus a LaTeX derivation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = cfg.OutputDir
			}
			if outDir == "" {
				outDir = "."
			}
			if !cmd.Flags().Changed("reverse-mask") {
				reverseMask = cfg.ReverseMask
			}

			res, err := ltlgba.Translate(args[0], ltlgba.Options{ReversedMask: reverseMask, MaxStates: cfg.MaxStates})
			if err != nil {
				return err
			}

			files := map[string]func(f *os.File) error{
				"ltl_before_transform.dot": func(f *os.File) error { return report.Formula(f, res.Parsed) },
				"ltl_after_transform.dot":  func(f *os.File) error { return report.Formula(f, res.Normalized) },
				"automaton.dot":            func(f *os.File) error { return report.Automaton(f, res.Automaton) },
				"derivation.tex": func(f *os.File) error {
					return report.LaTeX(f, report.Derivation{
						Source:      args[0],
						Parsed:      res.Parsed,
						Normalized:  res.Normalized,
						All:         res.Index.All,
						Definitions: res.Definitions,
					})
				},
			}

			for name, write := range files {
				path := filepath.Join(outDir, name)
				f, err := os.Create(path)
				if err != nil {
					return &errs.IOError{Op: "create", Path: path, Err: err}
				}
				writeErr := write(f)
				closeErr := f.Close()
				if writeErr != nil {
					return &errs.IOError{Op: "write", Path: path, Err: writeErr}
				}
				if closeErr != nil {
					return &errs.IOError{Op: "close", Path: path, Err: closeErr}
				}
				logger.Info("wrote report file", zap.String("path", path))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "", "directory to write report files into (default: current directory)")
	cmd.Flags().BoolVarP(&reverseMask, "reverse-mask", "r", false, "visit free-variable masks first-to-last instead of last-to-first")
	return cmd
}
