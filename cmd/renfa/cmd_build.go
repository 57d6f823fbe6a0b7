package main

import (
	"fmt"

	"github.com/coregx/renfa/nfa"
	"github.com/coregx/renfa/syntax"
	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	var keepEpsilon bool

	cmd := &cobra.Command{
		Use:   "build <pattern>",
		Short: "Compile a pattern and print its automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			out := cmd.OutOrStdout()

			node, err := syntax.Parse(pattern)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			fmt.Fprintf(out, "expression: %s\n", node)

			machine, err := nfa.Compile(node)
			if err != nil {
				return fmt.Errorf("compile: %w", err)
			}
			fmt.Fprintf(out, "reachable states: %d\n", len(machine.Reachable()))
			fmt.Fprintln(out, machine)

			if keepEpsilon {
				return nil
			}

			machine.RemoveEpsilons()
			fmt.Fprintln(out, machine.ClosureTable())
			fmt.Fprintln(out, machine)
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepEpsilon, "keep-epsilon", false,
		"print the epsilon NFA without eliminating epsilon transitions")
	return cmd
}
