package controller

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	m "github.com/mouse-blink/scrub/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using plain text on the cobra Command's streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Out returns the command's stdout writer.
func (s *SimpleUI) Out() io.Writer {
	return s.cmd.OutOrStdout()
}

// ConfirmHeader prints the detected header preview and reads a y/N answer
// from the command's input stream. Anything that is not "y" or "yes"
// (case-insensitive) declines, as does a read failure.
func (s *SimpleUI) ConfirmHeader(_ m.Path, decision m.HeaderDecision) (bool, error) {
	s.printf("Automatically detected a header with %d lines:\n", decision.Lines)
	s.printf("\n%s\n\n", decision.Preview)
	s.printf("Should this section be treated as a header (preserve comments)? [y/N]: ")

	answer, err := bufio.NewReader(s.cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false, nil
	}

	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes", nil
}

// DisplayHeaderDecision prints a detection result without prompting.
func (s *SimpleUI) DisplayHeaderDecision(path m.Path, decision m.HeaderDecision) {
	if decision.Lines == 0 {
		s.printf("%s: no header detected\n", path)

		return
	}

	s.printf("%s: header of %d lines\n\n%s\n", path, decision.Lines, decision.Preview)
}

// DisplayHeaderApplied reports the number of preserved header lines.
func (s *SimpleUI) DisplayHeaderApplied(lines int) {
	s.eprintf("Header will be set to %d lines.\n", lines)
}

// DisplayHeaderSkipped reports a declined header detection.
func (s *SimpleUI) DisplayHeaderSkipped() {
	s.eprintf("Header detection ignored. Processing the entire file.\n")
}

// DisplayChanges lists removed comments and a statistics table on stderr,
// keeping stdout clean for the scrubbed output.
func (s *SimpleUI) DisplayChanges(report m.ScrubReport) {
	if len(report.Events) == 0 {
		s.eprintf("No comments found to remove in the processed section.\n")

		return
	}

	s.eprintf("Comments removed:\n")

	for _, ev := range report.Events {
		switch {
		case ev.Kind == m.CommentLine:
			s.eprintf("- Line %d: Removed line comment.\n", ev.StartLine)
		case ev.StartLine == ev.EndLine:
			s.eprintf("- Line %d: Removed block comment.\n", ev.StartLine)
		default:
			s.eprintf("- Lines %d-%d: Removed block comment.\n", ev.StartLine, ev.EndLine)
		}
	}

	s.eprintf("\n%s", renderStatsTable(report))
}

// DisplayDryRunSummary reports what would have been removed.
func (s *SimpleUI) DisplayDryRunSummary(report m.ScrubReport, verbose bool) {
	if verbose {
		s.eprintf("Dry run complete. No output written.\n")

		return
	}

	s.printf("Dry run complete. %d line comments and %d block comments would be removed. No output written.\n",
		report.LineComments(), report.BlockComments())
}

// DisplayOutputWritten confirms the output destination.
func (s *SimpleUI) DisplayOutputWritten(path m.Path, verbose bool) {
	if verbose {
		s.eprintf("Output written to %s\n", path)

		return
	}

	s.printf("Output written to %s\n", path)
}

// DisplayEstimation renders per-file counts as a table, sorted by path.
func (s *SimpleUI) DisplayEstimation(estimates []m.FileEstimate, err error) error {
	if err != nil {
		s.printf("estimation error: %v\n", err)

		return err
	}

	s.printf("\n%s", renderEstimateTable(estimates))

	return nil
}

// DisplayReport renders a previously saved scrub report.
func (s *SimpleUI) DisplayReport(report m.ScrubReport) {
	s.printf("Report for %s", report.Input)

	if report.Hash != "" {
		s.printf(" (sha256 %s)", report.Hash)
	}

	s.printf("\n\n%s", renderStatsTable(report))
}

// DisplayWarning prints a non-fatal warning on stderr.
func (s *SimpleUI) DisplayWarning(msg string) {
	s.eprintf("Warning: %s\n", msg)
}

func renderStatsTable(report m.ScrubReport) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Kind", "Removed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{"line comments", fmt.Sprintf("%d", report.LineComments())})
	table.Append([]string{"block comments", fmt.Sprintf("%d", report.BlockComments())})
	table.SetFooter([]string{"Total", fmt.Sprintf("%d", len(report.Events))})

	table.Render()

	return buf.String()
}

func renderEstimateTable(estimates []m.FileEstimate) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Path", "Line", "Block"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	totalLine := 0
	totalBlock := 0

	for _, est := range estimates {
		table.Append([]string{
			string(est.Path),
			fmt.Sprintf("%d", est.LineComments),
			fmt.Sprintf("%d", est.BlockComments),
		})

		totalLine += est.LineComments
		totalBlock += est.BlockComments
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(estimates)),
		fmt.Sprintf("%d", totalLine),
		fmt.Sprintf("%d", totalBlock),
	})

	table.Render()

	return buf.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) eprintf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
