package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// paneFrame is one box in the vertical stack.
type paneFrame struct {
	id     PaneID
	height int    // rows including both borders
	label  string // title, drawn into the top border
	// suffix follows the label in its own style (the Valid/Invalid marker).
	suffix      string
	suffixStyle lipgloss.Style
	body        []string
}

// renderStack draws frames top to bottom with shared horizontal borders:
//
//	┌ Header ──┐
//	│          │
//	├ Claims ──┤
//	│          │
//	├ Key ─────┤
//	│          │
//	└──────────┘
//
// A border row shared by two panes takes the focused pane's colour if
// either of them is focused. Output is exactly totalW x totalH.
func renderStack(totalW, totalH int, frames []paneFrame, focused PaneID) string {
	if totalW <= 0 || totalH <= 0 || len(frames) == 0 {
		return ""
	}
	innerW := max(0, totalW-2)

	borderStyle := func(active bool, id PaneID) lipgloss.Style {
		if active {
			return paneBorderActiveStyle(id)
		}
		return paneBorderInactiveStyle
	}

	var out []string
	for i, f := range frames {
		active := f.id == focused

		edgeActive, edgeID := active, f.id
		if !active && i > 0 && frames[i-1].id == focused {
			edgeActive, edgeID = true, frames[i-1].id
		}
		left, right := "├", "┤"
		if i == 0 {
			left, right = "┌", "┐"
		}
		out = append(out, padWidth(titleRow(f, active, borderStyle(edgeActive, edgeID), left, right, innerW), totalW))

		side := borderStyle(active, f.id).Render("│")
		for _, l := range padLines(f.body, max(0, f.height-2), innerW) {
			out = append(out, padWidth(side+l+side, totalW))
		}
	}

	last := frames[len(frames)-1]
	bottom := borderStyle(last.id == focused, last.id).Render("└" + strings.Repeat("─", innerW) + "┘")
	out = append(out, padWidth(bottom, totalW))

	out = padExact(out, totalH)
	return strings.Join(out, "\n")
}

func titleRow(f paneFrame, active bool, edge lipgloss.Style, left, right string, innerW int) string {
	labelStyle := paneHeaderInactiveStyle
	if active {
		labelStyle = paneHeaderActiveStyle(f.id)
	}

	raw := f.label + f.suffix
	fit := fitLabelRaw(raw, innerW)
	var title string
	if fit == raw {
		title = labelStyle.Render(f.label) + f.suffixStyle.Render(f.suffix)
	} else {
		title = labelStyle.Render(fit)
	}

	fill := max(0, innerW-lipgloss.Width(fit))
	return edge.Render(left) + title + edge.Render(strings.Repeat("─", fill)+right)
}

func fitLabelRaw(label string, innerW int) string {
	if innerW <= 0 {
		return ""
	}
	if lipgloss.Width(label) <= innerW {
		return label
	}
	r := []rune(label)
	for len(r) > 0 && lipgloss.Width(string(r)) > innerW {
		r = r[:len(r)-1]
	}
	return string(r)
}

func padLines(lines []string, height int, width int) []string {
	lines = padExact(lines, height)
	out := make([]string, 0, height)
	for _, l := range lines {
		out = append(out, padWidth(l, width))
	}
	return out
}

func padExact(lines []string, height int) []string {
	if height < 0 {
		height = 0
	}
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func padWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	// Truncate rather than wrap: a wrapped row would shift every row below it.
	s = ansi.Truncate(s, width, "")
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
