package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmModel_AcceptKeys(t *testing.T) {
	for _, key := range []string{"y", "Y"} {
		t.Run(key, func(t *testing.T) {
			model := newConfirmModel("input.rs", 3, "// banner")

			updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})

			result, ok := updated.(confirmModel)
			if !ok {
				t.Fatalf("Update returned %T, want confirmModel", updated)
			}

			if !result.answered || !result.accepted {
				t.Fatalf("after %q: answered=%v accepted=%v, want both true", key, result.answered, result.accepted)
			}

			if cmd == nil {
				t.Fatal("accept key returned nil cmd, want quit")
			}
		})
	}
}

func TestConfirmModel_EnterAccepts(t *testing.T) {
	model := newConfirmModel("input.rs", 3, "// banner")

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	result := updated.(confirmModel)
	if !result.answered || !result.accepted {
		t.Fatalf("after enter: answered=%v accepted=%v, want both true", result.answered, result.accepted)
	}

	if cmd == nil {
		t.Fatal("enter returned nil cmd, want quit")
	}
}

func TestConfirmModel_DeclineKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("n")},
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}

	for _, key := range keys {
		t.Run(key.String(), func(t *testing.T) {
			model := newConfirmModel("input.rs", 3, "// banner")

			updated, cmd := model.Update(key)

			result := updated.(confirmModel)
			if !result.answered || result.accepted {
				t.Fatalf("after %q: answered=%v accepted=%v, want answered and declined", key.String(), result.answered, result.accepted)
			}

			if cmd == nil {
				t.Fatal("decline key returned nil cmd, want quit")
			}
		})
	}
}

func TestConfirmModel_ScrollDoesNotAnswer(t *testing.T) {
	model := newConfirmModel("input.rs", 15, strings.Repeat("// line\n", 30))

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyDown})

	result := updated.(confirmModel)
	if result.answered {
		t.Fatal("scroll key answered the prompt")
	}
}

func TestConfirmModel_WindowSizeResizesPreview(t *testing.T) {
	model := newConfirmModel("input.rs", 3, "// banner")

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	result := updated.(confirmModel)
	if result.preview.Width != 56 {
		t.Fatalf("preview width = %d, want 56", result.preview.Width)
	}
}

func TestConfirmModel_ViewShowsQuestion(t *testing.T) {
	model := newConfirmModel("input.rs", 3, "// banner")

	view := model.View()

	for _, want := range []string{"3 lines", "input.rs", "banner", "header"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() = %q, missing %q", view, want)
		}
	}
}

func TestPreviewHeight_Capped(t *testing.T) {
	if got := previewHeight("one\ntwo"); got != 2 {
		t.Fatalf("previewHeight = %d, want 2", got)
	}

	if got := previewHeight(strings.Repeat("x\n", 40)); got != 12 {
		t.Fatalf("previewHeight = %d, want cap of 12", got)
	}
}
