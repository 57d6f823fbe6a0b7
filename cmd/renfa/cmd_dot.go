package main

import (
	"fmt"
	"os"

	"github.com/coregx/renfa/nfa"
	"github.com/coregx/renfa/syntax"
	"github.com/spf13/cobra"
)

func newDotCmd() *cobra.Command {
	var keepEpsilon bool
	var outputPath string

	cmd := &cobra.Command{
		Use:   "dot <pattern>",
		Short: "Compile a pattern and emit its automaton as Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := syntax.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			machine, err := nfa.Compile(node)
			if err != nil {
				return fmt.Errorf("compile: %w", err)
			}
			if !keepEpsilon {
				machine.RemoveEpsilons()
			}

			out := cmd.OutOrStdout()
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outputPath, err)
				}
				defer f.Close()
				out = f
			}
			if err := nfa.WriteDOT(out, machine); err != nil {
				return fmt.Errorf("write dot: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepEpsilon, "keep-epsilon", false,
		"emit the epsilon NFA without eliminating epsilon transitions")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write DOT to a file instead of stdout")
	return cmd
}
