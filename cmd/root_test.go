package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/scrub/internal/domain"
	domainmocks "github.com/mouse-blink/scrub/internal/domain/mocks"
	m "github.com/mouse-blink/scrub/internal/model"
)

func newTestRootCmd(mockWorkflow domain.Workflow, t *testing.T) func() {
	t.Helper()

	originalWorkflow := workflow
	workflow = mockWorkflow

	return func() { workflow = originalWorkflow }
}

func TestRootCmd_ScrubsSingleInput(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	defer newTestRootCmd(mockWorkflow, t)()

	mockWorkflow.On("Scrub", mock.MatchedBy(func(args domain.ScrubArgs) bool {
		return args.Input == m.Path("input.rs") && args.Output == "" && args.HeaderLines == 0
	})).Return(nil)

	cmd.SetArgs([]string{"input.rs"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRootCmd_FlagsReachScrubArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	defer newTestRootCmd(mockWorkflow, t)()

	mockWorkflow.On("Scrub", mock.MatchedBy(func(args domain.ScrubArgs) bool {
		return args.HeaderLines == 6 &&
			args.Output == m.Path("out.rs") &&
			args.Verbose &&
			args.DryRun &&
			args.AssumeYes &&
			args.Report == m.Path("report.json")
	})).Return(nil)

	cmd.SetArgs([]string{
		"input.rs",
		"-H", "6",
		"-o", "out.rs",
		"-v",
		"--dry-run",
		"-y",
		"--report", "report.json",
	})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRootCmd_MultiplePathsRequireDryRun(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	defer newTestRootCmd(mockWorkflow, t)()

	cmd.SetArgs([]string{"a.rs", "b.rs"})
	require.Error(t, cmd.Execute())
}

func TestRootCmd_MultiplePathsDryRunEstimates(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	defer newTestRootCmd(mockWorkflow, t)()

	mockWorkflow.On("Estimate", mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return len(args.Paths) == 2 &&
			args.Paths[0] == m.Path("a.rs") &&
			args.Paths[1] == m.Path("b.rs") &&
			args.Threads == 3
	})).Return(nil)

	cmd.SetArgs([]string{"a.rs", "b.rs", "--dry-run", "-p", "3"})
	require.NoError(t, cmd.Execute())

	mockWorkflow.AssertExpectations(t)
}

func TestRootCmd_RequiresAtLeastOnePath(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	require.Error(t, cmd.Execute())
}

func TestParsePaths(t *testing.T) {
	paths := parsePaths([]string{"a.rs", "b.rs"})
	require.Equal(t, []m.Path{"a.rs", "b.rs"}, paths)
}
