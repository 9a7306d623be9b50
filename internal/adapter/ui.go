package adapter

import (
	"io"

	m "github.com/mouse-blink/scrub/internal/model"
)

// UI defines the interface for user interaction around scrubbing.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Out is the writer scrubbed output goes to when no output file is set.
	Out() io.Writer

	// ConfirmHeader shows the detected header and asks whether it should be
	// preserved verbatim.
	ConfirmHeader(path m.Path, decision m.HeaderDecision) (bool, error)

	// DisplayHeaderDecision prints a detection result without asking.
	DisplayHeaderDecision(path m.Path, decision m.HeaderDecision)

	// DisplayHeaderApplied reports the number of lines that will be copied
	// verbatim; DisplayHeaderSkipped reports a declined detection.
	DisplayHeaderApplied(lines int)
	DisplayHeaderSkipped()

	// DisplayChanges lists every removed comment plus a statistics table.
	DisplayChanges(report m.ScrubReport)

	// DisplayDryRunSummary reports what a dry run would have removed.
	DisplayDryRunSummary(report m.ScrubReport, verbose bool)

	// DisplayOutputWritten confirms where scrubbed output landed.
	DisplayOutputWritten(path m.Path, verbose bool)

	// DisplayEstimation renders per-file comment counts for a multi-path
	// dry run, or the error that interrupted it.
	DisplayEstimation(estimates []m.FileEstimate, err error) error

	// DisplayReport renders a previously saved scrub report.
	DisplayReport(report m.ScrubReport)

	// DisplayWarning prints a non-fatal warning.
	DisplayWarning(msg string)
}
