package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	ltlgba "github.com/exesaLigno/BuchiSolver"
)

func newShowCmd() *cobra.Command {
	var reverseMask bool

	cmd := &cobra.Command{
		Use:   "show <formula>",
		Short: "Print the parsed and normalized formula, the subformula index, and the state count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("reverse-mask") {
				reverseMask = cfg.ReverseMask
			}
			res, err := ltlgba.Translate(args[0], ltlgba.Options{ReversedMask: reverseMask, MaxStates: cfg.MaxStates})
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)
			bold.Println("parsed:")
			fmt.Println(" ", res.Parsed)
			bold.Println("normalized:")
			fmt.Println(" ", res.Normalized)

			bold.Println("subformulas:")
			for i, f := range res.Index.All {
				fmt.Printf("  %2d: %s\n", i, f)
			}

			bold.Println("atoms:")
			for i, f := range res.Index.Atoms {
				fmt.Printf("  %2d: %s\n", i, f)
			}

			if len(res.Definitions) > 0 {
				bold.Println("nested-until definitions:")
				for i, f := range res.Definitions {
					fmt.Printf("  %2d: %s\n", i, f)
				}
			}

			bold.Println("automaton:")
			fmt.Printf("  states: %d\n", res.Automaton.StateCount())
			fmt.Printf("  initial: %v\n", res.Automaton.Initial())
			fmt.Printf("  accepting sets: %d\n", res.Automaton.AcceptingSetCount())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&reverseMask, "reverse-mask", "r", false, "visit free-variable masks first-to-last instead of last-to-first")
	return cmd
}
