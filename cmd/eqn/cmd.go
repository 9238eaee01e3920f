package eqn

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/typematch/booleq/pkg/booleq"
	"github.com/typematch/booleq/pkg/booleq/solver"
)

func NewEqnCommand() *cobra.Command {
	var checkSat, trace, verbose bool
	cmd := &cobra.Command{
		Use:   "solve <path>",
		Short: "Solves an equation system given in eqn format",
		Long: `Solves an equation system given in eqn format. For instance:
# comments start with #
# variables and the values they may take share one namespace
var t
val v1 v2 v3
# an implication: the term after 'then' must hold whenever the equality holds
if t = v3 then FALSE
# a ground truth: a term that must hold unconditionally
always t = v1 | (t = v2 & (t = v2 | t = v3))

The output lists, for every variable, the set of values it takes in any
solution of the system.
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0], checkSat, trace, verbose)
		},
	}
	cmd.Flags().BoolVar(&checkSat, "check-sat", false, "also report whether the system is satisfiable at all")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the working assignment after every fixpoint pass")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging and print the registered system")
	return cmd
}

func solve(path string, checkSat, trace, verbose bool) error {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	eqnFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening eqn file (%s): %w", path, err)
	}
	defer eqnFile.Close()

	system, err := NewSystem(eqnFile)
	if err != nil {
		return fmt.Errorf("error parsing eqn file (%s): %w", path, err)
	}
	log.WithFields(logrus.Fields{
		"variables":    len(system.Variables()),
		"values":       len(system.Values()),
		"implications": len(system.Implications()),
		"truths":       len(system.Truths()),
	}).Debug("parsed system")

	// build solver
	var options []solver.Option
	if trace {
		options = append(options, solver.WithTracer(solver.LoggingTracer{Writer: os.Stderr}))
	}
	so, err := solver.New(options...)
	if err != nil {
		return err
	}
	if err := system.ApplyTo(so); err != nil {
		return fmt.Errorf("error registering system: %w", err)
	}
	if verbose {
		fmt.Fprint(os.Stderr, so.String())
	}

	// read off the union of all solutions
	assignments := so.Solve()
	variables := make([]booleq.Label, 0, len(assignments))
	for v := range assignments {
		variables = append(variables, v)
	}
	sort.Slice(variables, func(i, j int) bool { return variables[i] < variables[j] })
	for _, v := range variables {
		candidates := make([]string, 0, assignments[v].Len())
		for _, c := range sets.List(assignments[v]) {
			candidates = append(candidates, string(c))
		}
		fmt.Printf("%s = {%s}\n", v, strings.Join(candidates, ", "))
	}

	if checkSat {
		ok, err := so.Satisfiable()
		if err != nil {
			return fmt.Errorf("error checking satisfiability: %w", err)
		}
		if ok {
			fmt.Println("system is satisfiable")
		} else {
			fmt.Println("system is not satisfiable")
		}
	}

	return nil
}
