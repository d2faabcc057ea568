package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kata/internal/usecase/text"
)

func (a *app) textCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "text",
		Short: "String helpers (arguments are joined with single spaces)",
	}

	for _, sc := range []struct {
		name  string
		short string
		f     func(string) any
	}{
		{"capitalize", "Capitalize every word", func(s string) any { return text.CapitalizeWords(s) }},
		{"upper", "Upper-case the text", func(s string) any { return text.Upper(s) }},
		{"vowels", "Count vowels", func(s string) any { return text.CountVowels(s) }},
		{"strip", "Remove spaces", func(s string) any { return text.RemoveWhitespace(s) }},
		{"reverse", "Reverse the text", func(s string) any { return text.Reverse(s) }},
		{"palindrome", "Report whether the text reads the same backwards", func(s string) any { return text.IsPalindrome(s) }},
		{"freq", "Word frequencies", func(s string) any { return text.WordFrequencies(s) }},
		{"reverse-words", "Reverse word order", func(s string) any { return text.ReverseWords(s) }},
		{"len", "Length in characters", func(s string) any { return text.Length(s) }},
	} {
		c.AddCommand(a.stringCmd(sc.name, sc.short, sc.f))
	}

	c.AddCommand(
		&cobra.Command{
			Use:   "greet NAME...",
			Short: "Greet one or more people",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if len(args) == 1 {
					return a.emit(cmd.OutOrStdout(), text.Greet(args[0]))
				}
				return a.emit(cmd.OutOrStdout(), strings.Join(text.GreetAll(args), "\n"))
			},
		},
		&cobra.Command{
			Use:   "contains TEXT SUB",
			Short: "Report whether TEXT contains SUB",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.emit(cmd.OutOrStdout(), text.Contains(args[0], args[1]))
			},
		},
		&cobra.Command{
			Use:   "longest WORD...",
			Short: "First longest word",
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := text.LongestWord(args)
				if err != nil {
					return err
				}
				return a.emit(cmd.OutOrStdout(), w)
			},
		},
		&cobra.Command{
			Use:   "pattern N",
			Short: "Print a triangle of N rows of stars",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := parseInt(args[0])
				if err != nil {
					return err
				}
				return text.Pattern(cmd.OutOrStdout(), n)
			},
		},
	)
	return c
}

func (a *app) stringCmd(name, short string, f func(string) any) *cobra.Command {
	return &cobra.Command{
		Use:   name + " TEXT...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(cmd.OutOrStdout(), f(strings.Join(args, " ")))
		},
	}
}
