// Package cmd provides the root command and CLI setup for scrub.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/scrub/internal/adapter"
	"github.com/mouse-blink/scrub/internal/controller"
	"github.com/mouse-blink/scrub/internal/domain"
	m "github.com/mouse-blink/scrub/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var ui adapter.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

var headerLinesFlag int
var outputFlag string
var verboseFlag bool
var dryRunFlag bool
var yesFlag bool
var parallelFlag int
var reportOutFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrub [paths...]",
		Short: "Remove comments from source files",
		Long: `Scrub removes // line comments and /* */ block comments from source
files while leaving every other byte untouched, including comment-looking
text inside string, character, and raw string literals.

A leading header (license banner, doc comments) can be preserved verbatim:
pass --header-lines, or let scrub detect one and confirm interactively.

With a single path, scrubbed output goes to stdout or --output. Several
paths can be scanned at once with --dry-run to get per-file comment counts.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				if !dryRunFlag {
					return fmt.Errorf("multiple paths require --dry-run")
				}

				return workflow.Estimate(domain.EstimateArgs{
					Paths:   parsePaths(args),
					Threads: parallelFlag,
				})
			}

			return workflow.Scrub(domain.ScrubArgs{
				Input:       m.Path(args[0]),
				Output:      m.Path(outputFlag),
				HeaderLines: headerLinesFlag,
				AssumeYes:   yesFlag,
				Verbose:     verboseFlag,
				DryRun:      dryRunFlag,
				Report:      m.Path(reportOutFlag),
			})
		},
	}

	cmd.Flags().IntVarP(&headerLinesFlag, "header-lines", "H", 0, "number of leading lines to preserve verbatim (0 = auto-detect)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "write scrubbed output to a file instead of stdout")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "list every removed comment and print statistics")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "scan and report without writing any output")
	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "accept a detected header without prompting")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers for multi-path dry runs")
	cmd.Flags().StringVar(&reportOutFlag, "report", "", "write a JSON report of removed comments to a file")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
