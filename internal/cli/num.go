package cli

import (
	"math/big"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kata/internal/usecase/numeric"
)

func (a *app) numCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "num",
		Short: "Arithmetic helpers",
	}

	c.AddCommand(
		a.factorialCmd(),
		a.fibCmd(),
		a.intPredicateCmd("prime", "Report whether N is prime", numeric.IsPrime),
		a.intPredicateCmd("even", "Report whether N is even", numeric.IsEven[int]),
		a.floatsCmd("avg", "Average of the given numbers", func(xs []float64) (any, error) {
			return numeric.Average(xs)
		}),
		a.floatsCmd("positive", "Report whether every number is > 0", func(xs []float64) (any, error) {
			return numeric.AllPositive(xs), nil
		}),
		a.binaryCmd("add", "Add two numbers", func(x, y float64) (any, error) {
			return numeric.Add(x, y), nil
		}),
		a.binaryCmd("divide", "Divide A by B", func(x, y float64) (any, error) {
			return numeric.Divide(x, y)
		}),
		&cobra.Command{
			Use:   "evens N",
			Short: "Even numbers in [0, N)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := parseInt(args[0])
				if err != nil {
					return err
				}
				return a.emit(cmd.OutOrStdout(), numeric.EvenNumbers(n))
			},
		},
	)
	return c
}

func (a *app) factorialCmd() *cobra.Command {
	var iterative bool

	c := &cobra.Command{
		Use:   "factorial N",
		Short: "Compute N!",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}

			f := numeric.Factorial
			if iterative {
				f = numeric.FactorialIterative
			}
			v, err := f(n)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), v)
		},
	}

	c.Flags().BoolVar(&iterative, "iterative", false, "Use the loop implementation instead of recursion")
	return c
}

func (a *app) fibCmd() *cobra.Command {
	var sequence bool

	c := &cobra.Command{
		Use:   "fib N",
		Short: "Nth Fibonacci number (zero-based: 0, 1, 1, 2, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}

			var v any
			if sequence {
				v, err = numeric.FibonacciSequence(n)
			} else {
				var term *big.Int
				term, err = numeric.Fibonacci(n)
				v = term
			}
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), v)
		},
	}

	c.Flags().BoolVar(&sequence, "seq", false, "Print the first N terms instead of the Nth")
	return c
}

func (a *app) intPredicateCmd(name, short string, pred func(int) bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " N",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), pred(n))
		},
	}
}

func (a *app) floatsCmd(name, short string, f func([]float64) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " X...",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseFloats(args)
			if err != nil {
				return err
			}
			v, err := f(xs)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), v)
		},
	}
}

func (a *app) binaryCmd(name, short string, f func(x, y float64) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseFloats(args)
			if err != nil {
				return err
			}
			v, err := f(xs[0], xs[1])
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), v)
		},
	}
}
