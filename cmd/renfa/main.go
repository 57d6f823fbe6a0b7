package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "renfa",
		Short: "Compile regular expressions into epsilon-free NFAs",
		Long: "renfa compiles a regular expression over the operators '*', '.', '∪' and '∩'\n" +
			"into a nondeterministic finite automaton with epsilon transitions, then\n" +
			"eliminates the epsilon transitions.",
	}

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newDotCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
