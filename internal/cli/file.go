package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kata/internal/infra/logger"
)

func (a *app) fileCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "file",
		Short: "Read and write whole text files",
	}

	c.AddCommand(
		&cobra.Command{
			Use:   "read PATH",
			Short: "Print a file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				content, err := a.ws.files.ReadText(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			},
		},
		&cobra.Command{
			Use:   "write PATH TEXT...",
			Short: "Create or overwrite PATH with TEXT (written as given, no trailing newline)",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				content := strings.Join(args[1:], " ")
				if err := a.ws.files.WriteText(args[0], content); err != nil {
					return err
				}
				logger.For("cli").Info("file.written", "path", args[0], "bytes", len(content))
				return nil
			},
		},
	)
	return c
}
