package root

import (
	"github.com/spf13/cobra"

	"github.com/typematch/booleq/cmd/eqn"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "booleq",
		Short: "Booleq computes the union of all solutions of a boolean equation system",
		Long: `A constraint-propagation engine over a boolean term algebra. Given
variables over a finite universe of values, conditional implications and
ground truths, it computes for each variable every value the variable
takes in any solution.`,
	}

	// add sub-commands
	rootCmd.AddCommand(eqn.NewEqnCommand())

	return rootCmd
}
