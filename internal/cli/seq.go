package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/kata/internal/usecase/seq"
)

func (a *app) seqCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "seq",
		Short: "List helpers (numbers are parsed as floats unless noted)",
	}

	c.AddCommand(
		a.floatsCmd("max", "Largest number", func(xs []float64) (any, error) {
			return seq.Max(xs)
		}),
		a.floatsCmd("sum", "Sum of the numbers", func(xs []float64) (any, error) {
			return seq.Sum(xs), nil
		}),
		a.floatsCmd("squares", "Square each number", func(xs []float64) (any, error) {
			return seq.Square(xs), nil
		}),
		a.floatsCmd("doubles", "Double each number", func(xs []float64) (any, error) {
			return seq.Double(xs), nil
		}),
		a.floatsCmd("cumsum", "Running totals", func(xs []float64) (any, error) {
			return seq.CumulativeSum(xs), nil
		}),
		a.wordsCmd("reverse", "Reverse the arguments", func(s []string) (any, error) {
			return seq.Reverse(s), nil
		}),
		a.wordsCmd("unique", "Drop duplicate arguments (order unspecified)", func(s []string) (any, error) {
			return seq.Unique(s), nil
		}),
		a.wordsCmd("shuffle", "Shuffle the arguments", func(s []string) (any, error) {
			return seq.Shuffle(a.ws.rnd, s), nil
		}),
		a.wordsCmd("choice", "Pick one argument at random", func(s []string) (any, error) {
			return seq.Choice(a.ws.rnd, s)
		}),
		&cobra.Command{
			Use:   "evens N...",
			Short: "Keep the even integers",
			RunE: func(cmd *cobra.Command, args []string) error {
				xs, err := parseInts(args)
				if err != nil {
					return err
				}
				return a.emit(cmd.OutOrStdout(), seq.FilterEven(xs))
			},
		},
		&cobra.Command{
			Use:   "count VALUE X...",
			Short: "Count how often VALUE appears among X...",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.emit(cmd.OutOrStdout(), seq.Count(args[1:], args[0]))
			},
		},
		&cobra.Command{
			Use:   "swap A B",
			Short: "Swap two values",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, y := seq.Swap(args[0], args[1])
				return a.emit(cmd.OutOrStdout(), []string{x, y})
			},
		},
		&cobra.Command{
			Use:   "flatten LIST...",
			Short: "Flatten comma-separated lists, e.g. 1,2 3 4,5",
			RunE: func(cmd *cobra.Command, args []string) error {
				nested := make([][]string, len(args))
				for i, arg := range args {
					nested[i] = splitList(arg)
				}
				return a.emit(cmd.OutOrStdout(), seq.Flatten(nested))
			},
		},
		&cobra.Command{
			Use:   "intersect LIST LIST",
			Short: "Values in both comma-separated lists (order unspecified)",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.emit(cmd.OutOrStdout(), seq.Intersect(splitList(args[0]), splitList(args[1])))
			},
		},
		&cobra.Command{
			Use:   "merge LIST LIST",
			Short: "Concatenate two comma-separated lists",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.emit(cmd.OutOrStdout(), seq.Merge(splitList(args[0]), splitList(args[1])))
			},
		},
	)
	return c
}

func (a *app) wordsCmd(name, short string, f func([]string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " X...",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := f(args)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), v)
		},
	}
}
