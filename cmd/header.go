package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/scrub/internal/domain"
	m "github.com/mouse-blink/scrub/internal/model"
)

// headerCmd represents the header command.
var headerCmd = newHeaderCmd()

func newHeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "header <path>",
		Short: "Detect a preservable header without scrubbing",
		Long: `Header runs the same detection the root command uses before scrubbing
and prints the decision: how many leading lines look like a header
(license banner, doc comments) plus a bounded preview.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Preview(domain.HeaderArgs{Input: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(headerCmd)
}
