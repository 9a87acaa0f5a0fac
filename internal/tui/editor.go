package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// editor is one pane's text buffer. The focused editor is drawn in the pane
// text colour, the others dimmed.
type editor struct {
	id PaneID
	ta textarea.Model
}

func newEditor(id PaneID, text, placeholder string) editor {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.EndOfBufferCharacter = ' '
	ta.Placeholder = placeholder
	// PEM keys and long claim sets blow straight through the defaults.
	ta.CharLimit = 0
	ta.MaxHeight = 0

	e := editor{id: id, ta: ta}
	e.applyTheme()
	e.ta.SetValue(text)
	e.ta.Blur()
	return e
}

// applyTheme rebuilds the textarea styles from the current palette.
func (e *editor) applyTheme() {
	text := lipgloss.NewStyle().Foreground(paneTextColor)
	dim := lipgloss.NewStyle().Foreground(paneDimColor)

	e.ta.FocusedStyle = textarea.Style{
		Base:        lipgloss.NewStyle(),
		CursorLine:  text,
		EndOfBuffer: dim,
		Placeholder: dim,
		Prompt:      text,
		Text:        text,
	}
	e.ta.BlurredStyle = textarea.Style{
		Base:        lipgloss.NewStyle(),
		CursorLine:  dim,
		EndOfBuffer: dim,
		Placeholder: dim.Faint(true),
		Prompt:      dim,
		Text:        dim,
	}

	// Focus/Blur repoint the textarea at the style it renders with.
	if e.ta.Focused() {
		e.ta.Focus()
	} else {
		e.ta.Blur()
	}
}

func (e *editor) SetSize(w, h int) {
	e.ta.SetWidth(w)
	e.ta.SetHeight(h)
}

func (e *editor) Focus() tea.Cmd {
	return e.ta.Focus()
}

func (e *editor) Blur() {
	e.ta.Blur()
}

func (e editor) Focused() bool {
	return e.ta.Focused()
}

func (e editor) Value() string {
	return e.ta.Value()
}

// Update forwards msg to the textarea and reports whether the text changed.
// An unfocused textarea ignores keys.
func (e *editor) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := e.ta.Value()
	var cmd tea.Cmd
	e.ta, cmd = e.ta.Update(msg)
	return e.ta.Value() != before, cmd
}

func (e editor) View() string {
	return e.ta.View()
}
