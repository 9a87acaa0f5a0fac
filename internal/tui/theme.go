package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour palette for the TUI. Each field maps to a
// semantic role used throughout the UI.
type Theme struct {
	Name string

	// Core palette
	Accent         lipgloss.Color
	Dim            lipgloss.Color
	Text           lipgloss.Color
	PaneText       lipgloss.Color // optional override for pane content text
	PaneDim        lipgloss.Color // optional override for unfocused pane text
	Bg             lipgloss.Color
	InactiveBorder lipgloss.Color
	Success        lipgloss.Color
	Error          lipgloss.Color

	// Pane accents
	Header    lipgloss.Color
	Claims    lipgloss.Color
	Signature lipgloss.Color
}

// The default is Tokyo Night with the classic jwt.io section colours
// (header red-magenta, claims purple, key cyan).
var themeDefault = Theme{
	Name:           "default",
	Accent:         lipgloss.Color("#7aa2f7"), // blue
	Dim:            lipgloss.Color("#565f89"),
	Text:           lipgloss.Color("#c0caf5"),
	Bg:             lipgloss.Color("#1a1b26"),
	InactiveBorder: lipgloss.Color("#3b4261"),
	Success:        lipgloss.Color("#9ece6a"),
	Error:          lipgloss.Color("#f7768e"),
	Header:         lipgloss.Color("#fb015b"),
	Claims:         lipgloss.Color("#d63aff"),
	Signature:      lipgloss.Color("#00b9f1"),
}

// GitHub/Primer variants use the Primer functional fg colours; the pane
// accents come from the same scale so they sit with the rest of the palette.
var themeGitHubDark = Theme{
	Name:           "github-dark",
	Accent:         lipgloss.Color("#4493f8"),
	Dim:            lipgloss.Color("#9198a1"),
	Text:           lipgloss.Color("#f0f6fc"),
	Bg:             lipgloss.Color("#0d1117"),
	InactiveBorder: lipgloss.Color("#3d444d"),
	Success:        lipgloss.Color("#3fb950"),
	Error:          lipgloss.Color("#f85149"),
	Header:         lipgloss.Color("#f778ba"),
	Claims:         lipgloss.Color("#ab7df8"),
	Signature:      lipgloss.Color("#4493f8"),
}

// High contrast: Valid/Invalid are also spelled out in the key pane title,
// so red/green is never the only signal.
var themeGitHubDarkHighContrast = Theme{
	Name:           "github-dark-high-contrast",
	Accent:         lipgloss.Color("#74b9ff"),
	Dim:            lipgloss.Color("#b7bdc8"),
	Text:           lipgloss.Color("#ffffff"),
	PaneText:       lipgloss.Color("#f7f056"), // bright yellow on black
	PaneDim:        lipgloss.Color("#b7bdc8"),
	Bg:             lipgloss.Color("#010409"),
	InactiveBorder: lipgloss.Color("#b7bdc8"),
	Success:        lipgloss.Color("#2bd853"),
	Error:          lipgloss.Color("#ff9492"),
	Header:         lipgloss.Color("#ff9bce"),
	Claims:         lipgloss.Color("#dbb7ff"),
	Signature:      lipgloss.Color("#74b9ff"),
}

// Terminal-adaptive theme using ANSI base colours.
var themeTerminal = Theme{
	Name:           "terminal",
	Accent:         lipgloss.Color("11"), // bright yellow
	Dim:            lipgloss.Color("7"),
	Text:           lipgloss.Color("15"),
	Bg:             lipgloss.Color("0"),
	InactiveBorder: lipgloss.Color("8"),
	Success:        lipgloss.Color("10"),
	Error:          lipgloss.Color("9"),
	Header:         lipgloss.Color("9"),
	Claims:         lipgloss.Color("13"),
	Signature:      lipgloss.Color("14"),
}

// ThemeByName returns a named theme. Empty means the high-contrast theme;
// unknown names fall back to default.
func ThemeByName(name string) Theme {
	switch name {
	case "github-dark":
		return themeGitHubDark
	case "github-dark-high-contrast", "":
		return themeGitHubDarkHighContrast
	case "terminal":
		return themeTerminal
	default:
		return themeDefault
	}
}

// ApplyTheme sets the package-level colour and style variables from a Theme.
func ApplyTheme(t Theme) {
	accentColor = t.Accent
	dimColor = t.Dim
	textColor = t.Text
	paneTextColor = t.Text
	paneDimColor = t.Dim
	if string(t.PaneText) != "" {
		paneTextColor = t.PaneText
	}
	if string(t.PaneDim) != "" {
		paneDimColor = t.PaneDim
	}
	bgColor = t.Bg
	inactiveBorder = t.InactiveBorder
	successColor = t.Success
	errorColor = t.Error
	headerColor = t.Header
	claimsColor = t.Claims
	signatureColor = t.Signature

	statusBarStyle = lipgloss.NewStyle().
		Foreground(textColor).
		Padding(0, 1)
	statusKeyStyle = lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true)
	statusDescStyle = lipgloss.NewStyle().
		Foreground(dimColor)

	successStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle = lipgloss.NewStyle().Foreground(errorColor)
	paneBorderInactiveStyle = lipgloss.NewStyle().
		Foreground(inactiveBorder)
	paneHeaderInactiveStyle = lipgloss.NewStyle().
		Foreground(dimColor)
}

// ThemeNames returns the available theme names in cycling order.
func ThemeNames() []string {
	return []string{
		"default",
		"github-dark",
		"github-dark-high-contrast",
		"terminal",
	}
}
