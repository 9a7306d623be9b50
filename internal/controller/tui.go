package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/scrub/internal/model"
	"golang.org/x/term"
)

var (
	tuiInfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	tuiWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// TUI implements UI using Bubble Tea for the interactive parts and styled
// text for the rest. It is selected when stdout is a terminal.
type TUI struct {
	output io.Writer
	errOut io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output, errOut io.Writer) *TUI {
	return &TUI{output: output, errOut: errOut}
}

// Out returns the writer scrubbed output goes to.
func (t *TUI) Out() io.Writer {
	return t.output
}

// ConfirmHeader runs an interactive prompt showing the detected header in a
// scrollable preview. Declining or quitting leaves the file fully scanned.
func (t *TUI) ConfirmHeader(path m.Path, decision m.HeaderDecision) (bool, error) {
	model := newConfirmModel(string(path), decision.Lines, decision.Preview)

	// Seed the terminal size so the first frame renders correctly.
	if f, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			model.width = width
			model.height = height
			model.preview.Width = width - 4
		}
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output))

	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("header confirmation: %w", err)
	}

	result, ok := final.(confirmModel)
	if !ok {
		return false, nil
	}

	return result.answered && result.accepted, nil
}

// DisplayHeaderDecision prints a detection result without prompting.
func (t *TUI) DisplayHeaderDecision(path m.Path, decision m.HeaderDecision) {
	if decision.Lines == 0 {
		_, _ = fmt.Fprintf(t.output, "%s: no header detected\n", path)

		return
	}

	title := fmt.Sprintf("%s: header of %d lines", path, decision.Lines)
	_, _ = fmt.Fprintf(t.output, "%s\n\n%s\n", tuiInfoStyle.Render(title), decision.Preview)
}

// DisplayHeaderApplied reports the number of preserved header lines.
func (t *TUI) DisplayHeaderApplied(lines int) {
	_, _ = fmt.Fprintln(t.errOut, tuiInfoStyle.Render(fmt.Sprintf("Header will be set to %d lines.", lines)))
}

// DisplayHeaderSkipped reports a declined header detection.
func (t *TUI) DisplayHeaderSkipped() {
	_, _ = fmt.Fprintln(t.errOut, tuiInfoStyle.Render("Header detection ignored. Processing the entire file."))
}

// DisplayChanges lists removed comments and a statistics table on stderr.
func (t *TUI) DisplayChanges(report m.ScrubReport) {
	if len(report.Events) == 0 {
		_, _ = fmt.Fprintln(t.errOut, "No comments found to remove in the processed section.")

		return
	}

	_, _ = fmt.Fprintln(t.errOut, tuiInfoStyle.Render("Comments removed:"))

	for _, ev := range report.Events {
		switch {
		case ev.Kind == m.CommentLine:
			_, _ = fmt.Fprintf(t.errOut, "- Line %d: Removed line comment.\n", ev.StartLine)
		case ev.StartLine == ev.EndLine:
			_, _ = fmt.Fprintf(t.errOut, "- Line %d: Removed block comment.\n", ev.StartLine)
		default:
			_, _ = fmt.Fprintf(t.errOut, "- Lines %d-%d: Removed block comment.\n", ev.StartLine, ev.EndLine)
		}
	}

	_, _ = fmt.Fprintf(t.errOut, "\n%s", renderStatsTable(report))
}

// DisplayDryRunSummary reports what would have been removed.
func (t *TUI) DisplayDryRunSummary(report m.ScrubReport, verbose bool) {
	if verbose {
		_, _ = fmt.Fprintln(t.errOut, "Dry run complete. No output written.")

		return
	}

	_, _ = fmt.Fprintf(t.output, "Dry run complete. %d line comments and %d block comments would be removed. No output written.\n",
		report.LineComments(), report.BlockComments())
}

// DisplayOutputWritten confirms the output destination.
func (t *TUI) DisplayOutputWritten(path m.Path, verbose bool) {
	msg := fmt.Sprintf("Output written to %s", path)
	if verbose {
		_, _ = fmt.Fprintln(t.errOut, msg)

		return
	}

	_, _ = fmt.Fprintln(t.output, tuiInfoStyle.Render(msg))
}

// DisplayEstimation renders per-file counts as a table.
func (t *TUI) DisplayEstimation(estimates []m.FileEstimate, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "estimation error: %v\n", err)

		return err
	}

	_, _ = fmt.Fprintf(t.output, "\n%s", renderEstimateTable(estimates))

	return nil
}

// DisplayReport renders a previously saved scrub report.
func (t *TUI) DisplayReport(report m.ScrubReport) {
	title := fmt.Sprintf("Report for %s", report.Input)
	if report.Hash != "" {
		title = fmt.Sprintf("%s (sha256 %s)", title, report.Hash)
	}

	_, _ = fmt.Fprintf(t.output, "%s\n\n%s", tuiInfoStyle.Render(title), renderStatsTable(report))
}

// DisplayWarning prints a non-fatal warning on stderr.
func (t *TUI) DisplayWarning(msg string) {
	_, _ = fmt.Fprintln(t.errOut, tuiWarnStyle.Render("Warning: "+msg))
}
