package domain

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/scrub/internal/adapter"
	m "github.com/mouse-blink/scrub/internal/model"
)

// ScrubArgs configures a single-file scrub.
type ScrubArgs struct {
	Input       m.Path
	Output      m.Path // empty means stdout
	HeaderLines int    // 0 means auto-detect and ask
	AssumeYes   bool   // accept a detected header without prompting
	Verbose     bool
	DryRun      bool
	Report      m.Path // when set, persist a JSON report here
}

// EstimateArgs configures a multi-file dry run.
type EstimateArgs struct {
	Paths   []m.Path
	Threads int
}

// HeaderArgs configures a header detection preview.
type HeaderArgs struct {
	Input m.Path
}

// ViewArgs configures display of a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the interface for scrubbing operations.
type Workflow interface {
	Scrub(args ScrubArgs) error
	Estimate(args EstimateArgs) error
	Preview(args HeaderArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	reports   adapter.ReportStore
	ui        adapter.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, reports adapter.ReportStore, ui adapter.UI) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		reports:   reports,
		ui:        ui,
	}
}

// Scrub removes comments from a single input file. Header handling runs
// first: an explicit -H count is copied verbatim, otherwise detection runs
// and the user confirms. The remainder streams through the scanner one
// line at a time with a single threaded StreamState.
func (w *workflow) Scrub(args ScrubArgs) error {
	info, err := w.fsAdapter.FileInfo(args.Input)
	if err != nil {
		return fmt.Errorf("input file %s: %w", args.Input, err)
	}

	if info.IsDir() {
		return fmt.Errorf("input path %s is not a file", args.Input)
	}

	headerLines := args.HeaderLines
	if headerLines == 0 {
		headerLines, err = w.resolveHeader(args)
		if err != nil {
			return err
		}
	}

	in, err := w.fsAdapter.Open(args.Input)
	if err != nil {
		return fmt.Errorf("open input file %s: %w", args.Input, err)
	}
	defer in.Close()

	out, finish, cleanup, err := w.openOutput(args)
	if err != nil {
		return err
	}
	defer cleanup()

	reader := bufio.NewReader(in)

	headerCopied, err := copyHeader(reader, out, headerLines)
	if err != nil {
		return err
	}

	events, err := scrubStream(reader, out, headerCopied)
	if err != nil {
		return err
	}

	if err := finish(); err != nil {
		return err
	}

	report := m.ScrubReport{Input: args.Input, Events: events}

	if args.Report != "" {
		if err := w.saveReport(args.Report, &report); err != nil {
			return err
		}
	}

	if args.Verbose {
		w.ui.DisplayChanges(report)
	}

	switch {
	case args.DryRun:
		w.ui.DisplayDryRunSummary(report, args.Verbose)
	case args.Output != "":
		w.ui.DisplayOutputWritten(args.Output, args.Verbose)
	}

	return nil
}

// Estimate scans every path without writing output and reports per-file
// comment counts. Files are processed concurrently with a bounded worker
// count.
func (w *workflow) Estimate(args EstimateArgs) error {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	estimates := make([]m.FileEstimate, len(args.Paths))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, path := range args.Paths {
		g.Go(func() error {
			estimate, err := w.estimateFile(path)
			if err != nil {
				return err
			}

			estimates[i] = estimate

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return w.ui.DisplayEstimation(nil, err)
	}

	return w.ui.DisplayEstimation(estimates, nil)
}

// Preview runs header detection only and displays the decision.
func (w *workflow) Preview(args HeaderArgs) error {
	in, err := w.fsAdapter.Open(args.Input)
	if err != nil {
		return fmt.Errorf("open input file %s: %w", args.Input, err)
	}
	defer in.Close()

	decision, err := DetectHeader(in)
	if err != nil {
		return fmt.Errorf("header detection for %s: %w", args.Input, err)
	}

	w.ui.DisplayHeaderDecision(args.Input, decision)

	return nil
}

// View loads and displays a previously saved scrub report.
func (w *workflow) View(args ViewArgs) error {
	report, err := w.reports.Load(args.Report)
	if err != nil {
		return err
	}

	w.ui.DisplayReport(report)

	return nil
}

// resolveHeader detects a header and asks the user whether to keep it.
// Detection failures are non-fatal: scrubbing proceeds over the whole file.
func (w *workflow) resolveHeader(args ScrubArgs) (int, error) {
	in, err := w.fsAdapter.Open(args.Input)
	if err != nil {
		w.ui.DisplayWarning(fmt.Sprintf("header detection failed: %v", err))

		return 0, nil
	}
	defer in.Close()

	decision, err := DetectHeader(in)
	if err != nil {
		w.ui.DisplayWarning(fmt.Sprintf("header detection failed: %v", err))

		return 0, nil
	}

	if decision.Lines == 0 {
		return 0, nil
	}

	accepted := args.AssumeYes
	if !accepted {
		accepted, err = w.ui.ConfirmHeader(args.Input, decision)
		if err != nil {
			return 0, err
		}
	}

	if !accepted {
		w.ui.DisplayHeaderSkipped()

		return 0, nil
	}

	w.ui.DisplayHeaderApplied(decision.Lines)

	return decision.Lines, nil
}

// openOutput picks the destination writer: nothing for a dry run, a
// created file for -o, the UI's stdout otherwise. The returned finish
// function flushes and closes whatever was opened; the returned cleanup
// must be deferred so the file is also closed when scrubbing fails
// before finish runs.
func (w *workflow) openOutput(args ScrubArgs) (io.Writer, func() error, func(), error) {
	noop := func() {}

	if args.DryRun {
		return io.Discard, func() error { return nil }, noop, nil
	}

	if args.Output == "" {
		return w.ui.Out(), func() error { return nil }, noop, nil
	}

	file, err := w.fsAdapter.Create(args.Output)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create output file %s: %w", args.Output, err)
	}

	buffered := bufio.NewWriter(file)

	finish := func() error {
		if err := buffered.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}

		if err := file.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}

		return nil
	}

	cleanup := func() { _ = file.Close() }

	return buffered, finish, cleanup, nil
}

func (w *workflow) estimateFile(path m.Path) (m.FileEstimate, error) {
	in, err := w.fsAdapter.Open(path)
	if err != nil {
		return m.FileEstimate{}, fmt.Errorf("open input file %s: %w", path, err)
	}
	defer in.Close()

	events, err := scrubStream(bufio.NewReader(in), io.Discard, 0)
	if err != nil {
		return m.FileEstimate{}, err
	}

	report := m.ScrubReport{Input: path, Events: events}

	return m.FileEstimate{
		Path:          path,
		LineComments:  report.LineComments(),
		BlockComments: report.BlockComments(),
	}, nil
}

func (w *workflow) saveReport(path m.Path, report *m.ScrubReport) error {
	hash, err := w.fsAdapter.HashFile(report.Input)
	if err == nil {
		report.Hash = hash
	}

	if err := w.reports.Save(path, *report); err != nil {
		return err
	}

	return nil
}

// copyHeader writes up to headerLines lines verbatim and returns how many
// were actually copied (the file may be shorter than the requested header).
func copyHeader(reader *bufio.Reader, out io.Writer, headerLines int) (int, error) {
	copied := 0

	for range headerLines {
		line, err := reader.ReadString('\n')
		if line != "" {
			if _, werr := io.WriteString(out, line); werr != nil {
				return copied, fmt.Errorf("write header line: %w", werr)
			}

			copied++
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return copied, fmt.Errorf("read header line: %w", err)
		}
	}

	return copied, nil
}

// scrubStream scans the remaining lines through a fresh StreamState,
// writing filtered output and collecting events. Line numbers continue
// from the copied header so events report positions in the original file.
func scrubStream(reader *bufio.Reader, out io.Writer, startLine int) ([]m.CommentEvent, error) {
	var events []m.CommentEvent

	var state m.StreamState

	lineNum := startLine

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lineNum++

			filtered, lineEvents := ScanLine(line, lineNum, &state)
			if _, werr := io.WriteString(out, filtered); werr != nil {
				return events, fmt.Errorf("write processed line: %w", werr)
			}

			events = append(events, lineEvents...)
		}

		if err == io.EOF {
			return events, nil
		}

		if err != nil {
			return events, fmt.Errorf("read line for processing: %w", err)
		}
	}
}
