package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/kata/internal/buildinfo"
	"github.com/aalvaropc/kata/internal/infra/logger"
	"github.com/aalvaropc/kata/internal/ui/tui"
)

var errorStyle = color.New(color.FgRed, color.Bold)

// skipWorkspace marks commands that must work without a loadable kata.yaml.
const skipWorkspace = "kata.skip-workspace"

func Execute() {
	a := &app{}
	cmd := a.rootCmd()
	err := cmd.Execute()
	a.close()
	if err != nil {
		errorStyle.Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

// app carries the flags and workspace shared by every subcommand.
type app struct {
	debug     bool
	workspace string
	format    string

	ws      *workspaceCtx
	cleanup func() error
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "kata",
		Short:         "kata — small numeric, list, text and file helpers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			if _, skip := c.Annotations[skipWorkspace]; skip {
				return nil
			}
			return a.setup()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(tui.Deps{
				Rand:    a.ws.rnd,
				Logger:  logger.For("tui"),
				Debug:   a.debug,
				LogPath: logger.Path(),
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable verbose logging to .kata/logs/kata.log")
	cmd.PersistentFlags().StringVarP(&a.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.PersistentFlags().StringVar(&a.format, "format", "", "Output format: pretty|json (defaults to kata.yaml output.format)")

	cmd.AddCommand(
		a.numCmd(),
		a.seqCmd(),
		a.textCmd(),
		a.fileCmd(),
		a.reportCmd(),
		a.personCmd(),
		a.soundCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func (a *app) setup() error {
	ws, err := loadWorkspace(a.workspace)
	if err != nil {
		return err
	}
	a.ws = ws

	if ws.found() {
		cleanup, lerr := logger.Setup(logger.Config{Root: ws.root, Debug: a.debug})
		if lerr == nil {
			a.cleanup = cleanup
		}
	}
	logger.L().Debug("workspace.loaded", "root", ws.root, "found", ws.found())
	return nil
}

func (a *app) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
		a.cleanup = nil
	}
}

func (a *app) outputFormat() string {
	if a.format != "" {
		return a.format
	}
	if a.ws != nil {
		return a.ws.cfg.Output.Format
	}
	return "pretty"
}

func (a *app) emit(w io.Writer, v any) error {
	return printResult(w, a.outputFormat(), v)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Annotations: map[string]string{skipWorkspace: ""},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
