package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colours. ApplyTheme overwrites all of these.
	accentColor    = lipgloss.Color("#7aa2f7")
	dimColor       = lipgloss.Color("#565f89")
	textColor      = lipgloss.Color("#c0caf5")
	paneTextColor  = lipgloss.Color("#c0caf5")
	paneDimColor   = lipgloss.Color("#565f89")
	bgColor        = lipgloss.Color("#1a1b26")
	inactiveBorder = lipgloss.Color("#3b4261")
	successColor   = lipgloss.Color("#9ece6a")
	errorColor     = lipgloss.Color("#f7768e")

	// Per-pane accents, used for the focused pane's frame and title.
	headerColor    = lipgloss.Color("#fb015b")
	claimsColor    = lipgloss.Color("#d63aff")
	signatureColor = lipgloss.Color("#00b9f1")

	// Status bar
	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 1)

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	statusDescStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	successStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)

	paneBorderInactiveStyle = lipgloss.NewStyle().
				Foreground(inactiveBorder)
	paneHeaderInactiveStyle = lipgloss.NewStyle().
				Foreground(dimColor)
)

func paneAccent(p PaneID) lipgloss.Color {
	switch p {
	case PaneHeader:
		return headerColor
	case PaneClaims:
		return claimsColor
	default:
		return signatureColor
	}
}

// Active frames are bold as well as coloured so focus does not rely on hue.
func paneBorderActiveStyle(p PaneID) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(paneAccent(p)).Bold(true)
}

func paneHeaderActiveStyle(p PaneID) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(paneAccent(p)).Bold(true)
}
