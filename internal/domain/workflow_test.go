package domain

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/scrub/internal/adapter"
	uimocks "github.com/mouse-blink/scrub/internal/adapter/mocks"
	m "github.com/mouse-blink/scrub/internal/model"
)

func writeTempFile(t *testing.T, name, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return m.Path(path)
}

func newTestWorkflow(t *testing.T) (Workflow, *uimocks.MockUI) {
	t.Helper()

	ui := uimocks.NewMockUI(t)
	wf := NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewReportStore(), ui)

	return wf, ui
}

func TestWorkflow_Scrub_WritesFilteredFile(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	input := writeTempFile(t, "input.rs", "// banner\n// banner\nlet x = 1; // tail\n/* b */ let y = 2;\n")
	output := m.Path(filepath.Join(t.TempDir(), "out.rs"))

	ui.On("DisplayOutputWritten", output, false).Return()

	err := wf.Scrub(ScrubArgs{Input: input, Output: output, HeaderLines: 2})
	require.NoError(t, err)

	got, err := os.ReadFile(string(output))
	require.NoError(t, err)
	require.Equal(t, "// banner\n// banner\nlet x = 1; \n let y = 2;\n", string(got))
}

func TestWorkflow_Scrub_StdoutWhenNoOutputFile(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	input := writeTempFile(t, "input.rs", "let x = 1; // tail\n")

	var buf bytes.Buffer

	ui.On("Out").Return(&buf)

	err := wf.Scrub(ScrubArgs{Input: input, HeaderLines: 1})
	require.NoError(t, err)
	require.Equal(t, "let x = 1; // tail\n", buf.String(), "the whole single-line file was header")
}

func TestWorkflow_Scrub_DryRunWritesNothing(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	input := writeTempFile(t, "input.rs", "let x = 1; /* b */\nlet y = 2; // gone\n")
	output := m.Path(filepath.Join(t.TempDir(), "out.rs"))

	ui.On("DisplayDryRunSummary", mock.MatchedBy(func(report m.ScrubReport) bool {
		return report.LineComments() == 1 && report.BlockComments() == 1
	}), false).Return()

	err := wf.Scrub(ScrubArgs{Input: input, Output: output, DryRun: true})
	require.NoError(t, err)

	_, statErr := os.Stat(string(output))
	require.True(t, os.IsNotExist(statErr), "dry run must not create the output file")
}

func TestWorkflow_Scrub_HeaderConfirmed(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	input := writeTempFile(t, "input.rs", "// banner one\n// banner two\nfn main() {} // trailing\n")

	var buf bytes.Buffer

	ui.On("Out").Return(&buf)
	ui.On("ConfirmHeader", input, mock.MatchedBy(func(d m.HeaderDecision) bool {
		return d.Lines == 2
	})).Return(true, nil)
	ui.On("DisplayHeaderApplied", 2).Return()

	err := wf.Scrub(ScrubArgs{Input: input})
	require.NoError(t, err)
	require.Equal(t, "// banner one\n// banner two\nfn main() {} \n", buf.String())
}

func TestWorkflow_Scrub_HeaderDeclined(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	input := writeTempFile(t, "input.rs", "// banner one\n// banner two\nfn main() {}\n")

	var buf bytes.Buffer

	ui.On("Out").Return(&buf)
	ui.On("ConfirmHeader", input, mock.Anything).Return(false, nil)
	ui.On("DisplayHeaderSkipped").Return()

	err := wf.Scrub(ScrubArgs{Input: input})
	require.NoError(t, err)
	require.Equal(t, "fn main() {}\n", buf.String(), "declined banner comments are scrubbed away")
}

func TestWorkflow_Scrub_AssumeYesSkipsPrompt(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	input := writeTempFile(t, "input.rs", "// banner\nfn main() {}\n")

	var buf bytes.Buffer

	ui.On("Out").Return(&buf)
	ui.On("DisplayHeaderApplied", 1).Return()

	err := wf.Scrub(ScrubArgs{Input: input, AssumeYes: true})
	require.NoError(t, err)
	require.Equal(t, "// banner\nfn main() {}\n", buf.String())
	ui.AssertNotCalled(t, "ConfirmHeader", mock.Anything, mock.Anything)
}

func TestWorkflow_Scrub_VerboseDisplaysChanges(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	input := writeTempFile(t, "input.rs", "let x = 1; // one\nlet y = /* two */ 2;\n")

	var buf bytes.Buffer

	ui.On("Out").Return(&buf)
	ui.On("DisplayChanges", mock.MatchedBy(func(report m.ScrubReport) bool {
		return len(report.Events) == 2
	})).Return()

	err := wf.Scrub(ScrubArgs{Input: input, Verbose: true})
	require.NoError(t, err)
}

func TestWorkflow_Scrub_SavesReport(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	input := writeTempFile(t, "input.rs", "let x = 1; // one\n")
	reportPath := m.Path(filepath.Join(t.TempDir(), "report.json"))

	var buf bytes.Buffer

	ui.On("Out").Return(&buf)

	err := wf.Scrub(ScrubArgs{Input: input, Report: reportPath})
	require.NoError(t, err)

	saved, err := adapter.NewReportStore().Load(reportPath)
	require.NoError(t, err)
	require.Equal(t, input, saved.Input)
	require.NotEmpty(t, saved.Hash)
	require.Len(t, saved.Events, 1)
	require.Equal(t, m.CommentLine, saved.Events[0].Kind)
}

func TestWorkflow_Scrub_MissingInput(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	err := wf.Scrub(ScrubArgs{Input: m.Path(filepath.Join(t.TempDir(), "absent.rs"))})
	require.Error(t, err)
}

func TestWorkflow_Scrub_DirectoryInput(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	err := wf.Scrub(ScrubArgs{Input: m.Path(t.TempDir())})
	require.Error(t, err)
}

func TestWorkflow_Estimate_CountsPerFile(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	first := writeTempFile(t, "a.rs", "// one\n// two\nlet x = 1;\n")
	second := writeTempFile(t, "b.rs", "/* block */ let y = 2;\n")

	ui.On("DisplayEstimation", mock.MatchedBy(func(estimates []m.FileEstimate) bool {
		if len(estimates) != 2 {
			return false
		}

		return estimates[0].LineComments == 2 && estimates[0].BlockComments == 0 &&
			estimates[1].LineComments == 0 && estimates[1].BlockComments == 1
	}), nil).Return(nil)

	err := wf.Estimate(EstimateArgs{Paths: []m.Path{first, second}, Threads: 2})
	require.NoError(t, err)
}

func TestWorkflow_Estimate_MissingFile(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	ui.On("DisplayEstimation", mock.Anything, mock.MatchedBy(func(err error) bool {
		return err != nil
	})).Return(nil)

	err := wf.Estimate(EstimateArgs{Paths: []m.Path{m.Path(filepath.Join(t.TempDir(), "absent.rs"))}})
	require.NoError(t, err)
}

func TestWorkflow_Preview_DisplaysDecision(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	input := writeTempFile(t, "input.rs", "// banner\nfn main() {}\n")

	ui.On("DisplayHeaderDecision", input, mock.MatchedBy(func(d m.HeaderDecision) bool {
		return d.Lines == 1
	})).Return()

	require.NoError(t, wf.Preview(HeaderArgs{Input: input}))
}

func TestWorkflow_View_RoundTrip(t *testing.T) {
	wf, ui := newTestWorkflow(t)

	reportPath := m.Path(filepath.Join(t.TempDir(), "report.json"))
	report := m.ScrubReport{
		Input:  "some.rs",
		Events: []m.CommentEvent{{StartLine: 3, EndLine: 7, Kind: m.CommentBlock}},
	}
	require.NoError(t, adapter.NewReportStore().Save(reportPath, report))

	ui.On("DisplayReport", report).Return()

	require.NoError(t, wf.View(ViewArgs{Report: reportPath}))
}

func TestWorkflow_View_MissingReport(t *testing.T) {
	wf, _ := newTestWorkflow(t)

	err := wf.View(ViewArgs{Report: m.Path(filepath.Join(t.TempDir(), "absent.json"))})
	require.Error(t, err)
}

// brokenWriteCloser fails every write and records whether it was closed.
type brokenWriteCloser struct {
	closed bool
}

func (b *brokenWriteCloser) Write([]byte) (int, error) {
	return 0, errors.New("no space left on device")
}

func (b *brokenWriteCloser) Close() error {
	b.closed = true

	return nil
}

// brokenCreateAdapter hands out a fixed writer for Create and delegates
// everything else to the real filesystem adapter.
type brokenCreateAdapter struct {
	adapter.SourceFSAdapter
	sink *brokenWriteCloser
}

func (a *brokenCreateAdapter) Create(m.Path) (io.WriteCloser, error) {
	return a.sink, nil
}

func TestWorkflow_Scrub_ClosesOutputOnWriteError(t *testing.T) {
	sink := &brokenWriteCloser{}
	ui := uimocks.NewMockUI(t)
	wf := NewWorkflow(
		&brokenCreateAdapter{SourceFSAdapter: adapter.NewLocalSourceFSAdapter(), sink: sink},
		adapter.NewReportStore(),
		ui,
	)

	// Enough body to overflow the write buffer so the failing writer is hit
	// mid-stream rather than at the final flush.
	input := writeTempFile(t, "input.rs", "// banner\n"+strings.Repeat("let x = 1; // tail\n", 1024))

	err := wf.Scrub(ScrubArgs{Input: input, Output: "out.rs", HeaderLines: 1})
	require.Error(t, err)
	require.True(t, sink.closed, "output file must be closed when scrubbing fails")
}
