package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// helpPane renders the key reference over the pane area, with scrolling.
type helpPane struct {
	viewport viewport.Model
	width    int
	height   int
}

func newHelpPane() helpPane {
	vp := viewport.New(0, 0)
	vp.SetContent("")
	return helpPane{viewport: vp}
}

func (hp *helpPane) SetSize(w, h int) {
	hp.width = max(0, w)
	hp.height = max(0, h)
	hp.viewport.Width = hp.width
	hp.viewport.Height = hp.height
}

func (hp *helpPane) SetContent(content string) {
	hp.viewport.SetContent(content)
	hp.viewport.GotoTop()
}

func (hp *helpPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			hp.viewport.LineDown(1)
		case "k", "up":
			hp.viewport.LineUp(1)
		case "pgdown", " ":
			hp.viewport.ViewDown()
		case "pgup":
			hp.viewport.ViewUp()
		case "G", "end":
			hp.viewport.GotoBottom()
		case "g", "home":
			hp.viewport.GotoTop()
		default:
			hp.viewport, cmd = hp.viewport.Update(msg)
		}
	default:
		hp.viewport, cmd = hp.viewport.Update(msg)
	}
	return cmd
}

func (hp *helpPane) View() string {
	return hp.viewport.View()
}

func helpTable(width int, title string, sections []helpSection) string {
	if width <= 0 {
		width = 80
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Foreground(accentColor).Bold(true).Render(title))
	lines = append(lines, "")

	maxKey := 0
	for _, s := range sections {
		for _, it := range s.items {
			if l := len(it.key); l > maxKey {
				maxKey = l
			}
		}
	}

	keyW := min(max(maxKey+2, 14), 32)
	if keyW > width-10 {
		keyW = max(10, width-10)
	}
	descW := max(0, width-2-keyW)

	keyStyle := lipgloss.NewStyle().Foreground(accentColor).Width(keyW)
	descStyle := lipgloss.NewStyle().Foreground(textColor).Width(descW)
	secStyle := lipgloss.NewStyle().Bold(true).Foreground(textColor)

	for _, s := range sections {
		lines = append(lines, secStyle.Render(s.title))
		for _, it := range s.items {
			lines = append(lines, "  "+keyStyle.Render(truncateEnd(it.key, keyW))+descStyle.Render(it.desc))
		}
		lines = append(lines, "")
	}

	lines = append(lines, lipgloss.NewStyle().Foreground(dimColor).Render("Press f1 or esc to close"))
	return strings.Join(lines, "\n")
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

// truncateEnd cuts s to w cells, marking the cut with an ellipsis.
func truncateEnd(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, "…")
}
