package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("6")).
				Bold(true).
				Padding(0, 1)

	confirmPreviewStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(0, 1)

	confirmHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8"))

	confirmYesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	confirmNoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// confirmModel is the Bubble Tea model for the header confirmation prompt:
// a scrollable preview of the detected header plus a yes/no question.
type confirmModel struct {
	path     string
	lines    int
	preview  viewport.Model
	question string

	accepted bool
	answered bool

	width  int
	height int
}

func newConfirmModel(path string, lines int, previewText string) confirmModel {
	vp := viewport.New(80, previewHeight(previewText))
	vp.SetContent(previewText)

	return confirmModel{
		path:     path,
		lines:    lines,
		preview:  vp,
		question: "Should this section be treated as a header (preserve comments)?",
	}
}

func previewHeight(text string) int {
	h := strings.Count(text, "\n") + 1
	if h > 12 {
		h = 12
	}

	return h
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = msg.Width - 4

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y", "enter":
			m.accepted = true
			m.answered = true

			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.accepted = false
			m.answered = true

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)

	return m, cmd
}

func (m confirmModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Detected a header with %d lines in %s", m.lines, m.path)
	b.WriteString(confirmTitleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(confirmPreviewStyle.Render(m.preview.View()))
	b.WriteString("\n\n")
	b.WriteString(m.question)
	b.WriteString(" ")
	b.WriteString(confirmYesStyle.Render("[y]es"))
	b.WriteString(" / ")
	b.WriteString(confirmNoStyle.Render("[N]o"))
	b.WriteString("\n")
	b.WriteString(confirmHelpStyle.Render("↑/↓ scroll preview · y accept · n decline"))
	b.WriteString("\n")

	return b.String()
}
