package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/scrub/internal/domain"
	m "github.com/mouse-blink/scrub/internal/model"
)

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <path>",
		Short: "Display a previously saved scrub report",
		Long:  "Display a JSON report produced by a scrub run with --report.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.View(domain.ViewArgs{Report: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
