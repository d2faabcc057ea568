package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/infra/logger"
	"github.com/aalvaropc/kata/internal/ports"
	"github.com/aalvaropc/kata/internal/usecase"
)

func (a *app) reportCmd() *cobra.Command {
	var noSave bool

	c := &cobra.Command{
		Use:   "report PATH",
		Short: "Summarize the words of a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var store ports.ReportStore
			if !noSave && a.ws.reports != nil {
				store = a.ws.reports
			}

			uc := usecase.NewAnalyzeText(a.ws.files, store)
			report, id, err := uc.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if id != "" {
				logger.For("cli").Info("report.saved", "id", id, "source", report.SourcePath)
			}

			return printReport(cmd.OutOrStdout(), report, id, a.outputFormat())
		},
	}

	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the report under reports/")
	return c
}

func printReport(w io.Writer, report domain.TextReport, id string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"report_id": id,
			"report":    report,
		})
	case "pretty", "":
		printPrettyReport(w, report, id)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, r domain.TextReport, id string) {
	fmt.Fprintf(w, "Source:       %s\n", r.SourcePath)
	fmt.Fprintf(w, "Characters:   %d\n", r.Characters)
	fmt.Fprintf(w, "Words:        %d (%d unique)\n", r.Words, r.UniqueWords)
	fmt.Fprintf(w, "Vowels:       %d\n", r.Vowels)
	if r.LongestWord != "" {
		fmt.Fprintf(w, "Longest word: %s\n", r.LongestWord)
	}
	if len(r.Palindromes) > 0 {
		fmt.Fprintf(w, "Palindromes:  %v\n", r.Palindromes)
	}
	if id != "" {
		fmt.Fprintf(w, "Report ID:    %s\n", id)
	}

	if len(r.Frequencies) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Frequencies:")
	for _, word := range slices.Sorted(maps.Keys(r.Frequencies)) {
		fmt.Fprintf(w, "  %-16s %d\n", word, r.Frequencies[word])
	}
}
