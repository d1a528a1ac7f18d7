// Package cli implements the command-line surface described by spec §6: a
// single cobra command that parses a DIMACS instance, resolves the chosen
// branching heuristic, runs the solver, and reports the verdict.
package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cdcl-sat/solver/internal/cdcl"
	"github.com/cdcl-sat/solver/internal/dimacs"
)

// ErrUnknownHeuristic is returned when --heuristics names something other
// than one of the four known heuristics.
var ErrUnknownHeuristic = errors.New("cli: unknown heuristic")

const (
	heuristicRandom    = "RandomHeuristicsSolver"
	heuristicTwoClause = "TwoClauseHeuristicSolver"
	heuristicDLIS      = "DynamicLargestIndividualSumSolver"
	heuristicJW        = "JeroslowWangOneSidedSolver"
)

// resolveHeuristic maps a --heuristics flag value to its implementation,
// using the original implementation's class names (spec §6) rather than
// inventing new ones, so scripts built against the Python tool's flag still
// resolve to the right branching strategy.
func resolveHeuristic(name string) (cdcl.Heuristic, error) {
	switch name {
	case heuristicRandom:
		return cdcl.RandomHeuristic{}, nil
	case heuristicTwoClause:
		return &cdcl.TwoClauseHeuristic{}, nil
	case heuristicDLIS:
		return cdcl.DLISHeuristic{}, nil
	case heuristicJW:
		return &cdcl.JeroslowWangHeuristic{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownHeuristic, "%q", name)
	}
}

type options struct {
	heuristics string
	filename   string
	seed       int64
	verbose    bool
}

// NewRootCommand builds the cdclsat root command.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "cdclsat",
		Short: "Solve a DIMACS CNF instance with a CDCL SAT solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.heuristics, "heuristics", "", "branching heuristic: "+
		heuristicRandom+", "+heuristicTwoClause+", "+heuristicDLIS+", or "+heuristicJW)
	flags.StringVar(&opts.filename, "filename", "", "path to the DIMACS CNF instance")
	flags.Int64Var(&opts.seed, "seed", 1, "seed for the heuristic's PRNG")
	flags.BoolVar(&opts.verbose, "verbose", false, "emit per-decision and per-conflict debug logs")

	cmd.MarkFlagRequired("heuristics")
	cmd.MarkFlagRequired("filename")

	return cmd
}

func run(opts *options) error {
	log := logrus.New()
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	heuristic, err := resolveHeuristic(opts.heuristics)
	if err != nil {
		return err
	}

	instance, err := dimacs.Parse(opts.filename)
	if err != nil {
		return errors.Wrap(err, "parsing instance")
	}

	formula := cdcl.NewFormula(instance.NumVars, instance.Clauses)
	solver := cdcl.New(formula, heuristic, opts.seed, log.WithField("filename", opts.filename))
	result := solver.Solve()

	fmt.Println(result.Status.String(), result.Decisions)

	log.WithFields(logrus.Fields{
		"filename":  opts.filename,
		"status":    result.Status.String(),
		"decisions": result.Decisions,
		"elapsed":   result.Elapsed,
		"ratio":     result.Ratio,
	}).Debug("run complete")

	return nil
}
