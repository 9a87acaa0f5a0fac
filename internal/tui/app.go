package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nickromney/jwtinspect/internal/config"
	"github.com/nickromney/jwtinspect/internal/logger"
	"github.com/nickromney/jwtinspect/internal/token"
)

// Model is the root Bubbletea model for the TUI.
//
// Exactly one of the three editors is focused at any time. Only the
// decoding key pane feeds validation; header and claims edits are never
// re-encoded or checked.
type Model struct {
	tok  *token.Token
	keys keyMap

	// Panes
	header    editor
	claims    editor
	signature signaturePane
	helpPane  helpPane

	// State
	focused       PaneID
	width, height int
	showHelp      bool
	themeName     string
	configPath    string
	statusMsg     string
	statusIsErr   bool
}

// New builds the model for tok. Focus starts on the decoding key pane.
func New(tok *token.Token, cfg config.Config) Model {
	theme := ThemeByName(cfg.Theme)
	ApplyTheme(theme)

	cfgPath, err := config.Path()
	if err != nil || strings.TrimSpace(cfgPath) == "" {
		cfgPath = "~/.config/jwtinspect/config.yml"
	} else if home, herr := os.UserHomeDir(); herr == nil && strings.HasPrefix(cfgPath, home+string(filepath.Separator)) {
		cfgPath = "~" + strings.TrimPrefix(cfgPath, home)
	}

	m := Model{
		tok:        tok,
		keys:       newKeyMap(cfg.Keys),
		header:     newEditor(PaneHeader, tok.HeaderJSON, ""),
		claims:     newEditor(PaneClaims, tok.ClaimsJSON, ""),
		signature:  newSignaturePane(tok),
		helpPane:   newHelpPane(),
		focused:    PaneSignature,
		themeName:  theme.Name,
		configPath: cfgPath,
	}
	m.signature.Focus()
	return m
}

// WithKey returns m with key loaded into the decoding key pane and checked
// once, as if it had been pasted.
func (m Model) WithKey(key string) Model {
	m.signature.preload(key)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textarea.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.updateWindowSize(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)

	case StatusMsg:
		m.statusMsg = msg.Text
		m.statusIsErr = msg.IsErr
		if msg.IsErr {
			logger.Warn("status", "msg", msg.Text)
		}
		return m, nil
	}

	// Cursor blink, clipboard paste results and friends.
	_, cmd := m.updateFocused(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderPanes(), m.renderStatusBar())
}

// Valid is the current signature result shown in the decoding key pane.
func (m Model) Valid() bool {
	return m.signature.valid
}

// Focused is the pane that receives typed input.
func (m Model) Focused() PaneID {
	return m.focused
}

// FocusArea moves input focus to p, dimming the previously focused pane.
// The returned command starts the cursor blink; it is nil when p already
// has focus.
func (m *Model) FocusArea(p PaneID) tea.Cmd {
	return m.focusArea(p)
}

// ProcessInput hands msg to the focused pane and reports whether the pane
// consumed it (the text changed, or a valid/invalid mark was applied).
func (m *Model) ProcessInput(msg tea.KeyMsg) bool {
	consumed, _ := m.processInput(msg)
	return consumed
}

func (m Model) updateWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layoutPanes()
	if m.showHelp {
		m.helpPane.SetContent(m.helpText())
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help traps keys until closed; ctrl+c still quits.
	if m.showHelp {
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case msg.String() == "esc", key.Matches(msg, m.keys.Help):
			m.showHelp = false
			return m, nil
		}
		return m, m.helpPane.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.FocusHeader):
		return m, m.focusArea(PaneHeader)

	case key.Matches(msg, m.keys.FocusClaims):
		return m, m.focusArea(PaneClaims)

	case key.Matches(msg, m.keys.FocusSignature):
		return m, m.focusArea(PaneSignature)

	case key.Matches(msg, m.keys.NextPane):
		return m, m.focusArea(m.focused.Next())

	case key.Matches(msg, m.keys.PrevPane):
		return m, m.focusArea(m.focused.Prev())

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.helpPane.SetContent(m.helpText())
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme()
		m.statusMsg = ""
		m.statusIsErr = false
		return m, nil

	case key.Matches(msg, m.keys.SaveTheme):
		return m, m.saveThemeCmd()
	}

	_, cmd := m.processInput(msg)
	return m, cmd
}

func (m *Model) focusArea(p PaneID) tea.Cmd {
	if p == m.focused {
		return nil
	}
	m.editorFor(m.focused).Blur()
	logger.Debug("focus", "from", m.focused.String(), "to", p.String())
	m.focused = p
	m.statusMsg = ""
	m.statusIsErr = false
	return m.editorFor(p).Focus()
}

func (m *Model) processInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.focused == PaneSignature {
		switch {
		case key.Matches(msg, m.keys.MarkValid):
			m.signature.markValid()
			return true, nil
		case key.Matches(msg, m.keys.MarkInvalid):
			m.signature.markInvalid()
			return true, nil
		}
	}

	consumed, cmd := m.updateFocused(msg)
	if !consumed {
		logger.Debug("input not consumed", "pane", m.focused.String(), "key", msg.String())
	}
	return consumed, cmd
}

// updateFocused routes msg to the focused pane. Only the decoding key pane
// re-validates on change.
func (m *Model) updateFocused(msg tea.Msg) (bool, tea.Cmd) {
	if m.focused == PaneSignature {
		return m.signature.Update(msg)
	}
	return m.editorFor(m.focused).Update(msg)
}

func (m *Model) editorFor(p PaneID) *editor {
	switch p {
	case PaneHeader:
		return &m.header
	case PaneClaims:
		return &m.claims
	default:
		return &m.signature.editor
	}
}

func (m *Model) cycleTheme() {
	names := ThemeNames()
	idx := 0
	for i, name := range names {
		if name == m.themeName {
			idx = i
			break
		}
	}
	m.themeName = names[(idx+1)%len(names)]
	ApplyTheme(ThemeByName(m.themeName))

	m.header.applyTheme()
	m.claims.applyTheme()
	m.signature.applyTheme()
	if m.showHelp {
		m.helpPane.SetContent(m.helpText())
	}
}

func (m Model) saveThemeCmd() tea.Cmd {
	theme := m.themeName
	cfgPathDisp := m.configPath
	return func() tea.Msg {
		if _, err := config.SaveTheme(theme); err != nil {
			return StatusMsg{Text: "Failed to save theme: " + err.Error(), IsErr: true}
		}

		note := ""
		if strings.TrimSpace(os.Getenv(config.EnvPrefix+"_THEME")) != "" {
			note = " (" + config.EnvPrefix + "_THEME overrides)"
		}
		return StatusMsg{Text: "Saved theme to " + cfgPathDisp + note}
	}
}

func (m Model) renderPanes() string {
	// We reserve 1 line for the status bar.
	gridW := m.width
	gridH := max(0, m.height-1)

	if m.showHelp {
		return renderStack(gridW, gridH, []paneFrame{{
			id:     m.focused,
			height: gridH,
			label:  " Help (f1/esc to close) ",
			body:   strings.Split(m.helpPane.View(), "\n"),
		}}, m.focused)
	}

	headerH, claimsH, sigH := paneHeights(gridH)

	suffixStyle := errorStyle.Bold(true)
	if m.signature.valid {
		suffixStyle = successStyle.Bold(true)
	}

	frames := []paneFrame{
		{
			id:     PaneHeader,
			height: headerH,
			label:  fmt.Sprintf(" Header (%s) ", m.keys.FocusHeader.Help().Key),
			body:   strings.Split(m.header.View(), "\n"),
		},
		{
			id:     PaneClaims,
			height: claimsH,
			label:  fmt.Sprintf(" Claims (%s) ", m.keys.FocusClaims.Help().Key),
			body:   strings.Split(m.claims.View(), "\n"),
		},
		{
			id:          PaneSignature,
			height:      sigH,
			label:       fmt.Sprintf(" Decoding Key (%s) - ", m.keys.FocusSignature.Help().Key),
			suffix:      m.signature.status() + " ",
			suffixStyle: suffixStyle,
			body:        strings.Split(m.signature.View(), "\n"),
		},
	}
	return renderStack(gridW, gridH, frames, m.focused)
}

func (m Model) renderStatusBar() string {
	var parts []string

	add := func(key, desc string) {
		parts = append(parts,
			statusKeyStyle.Render(key)+" "+statusDescStyle.Render(desc))
	}

	k := m.keys
	add(k.FocusHeader.Help().Key+"/"+k.FocusClaims.Help().Key+"/"+k.FocusSignature.Help().Key, "pane")
	if m.focused == PaneSignature {
		add(k.MarkValid.Help().Key+"/"+k.MarkInvalid.Help().Key, "mark")
	}
	add("f1", "help")
	add("f2", "theme")
	add("esc", "quit")

	left := strings.Join(parts, "  ")

	rightParts := []string{
		statusDescStyle.Render("alg: ") + statusKeyStyle.Render(m.tok.Alg.String()),
	}
	if m.signature.checked {
		rightParts = append(rightParts, statusDescStyle.Render("key: ")+statusKeyStyle.Render(m.signature.keyKind.String()))
	}
	rightParts = append(rightParts, statusDescStyle.Render("theme: ")+statusKeyStyle.Render(m.themeName))
	if m.statusMsg != "" {
		if m.statusIsErr {
			rightParts = append(rightParts, errorStyle.Render(m.statusMsg))
		} else {
			rightParts = append(rightParts, successStyle.Render(m.statusMsg))
		}
	}
	right := strings.Join(rightParts, "  ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	return padWidth(statusBarStyle.Render(left+strings.Repeat(" ", gap)+right), m.width)
}

func (m Model) helpText() string {
	k := m.keys
	item := func(b key.Binding) helpItem {
		return helpItem{key: b.Help().Key, desc: b.Help().Desc}
	}

	sections := []helpSection{
		{
			title: "Panes",
			items: []helpItem{
				item(k.FocusHeader),
				item(k.FocusClaims),
				item(k.FocusSignature),
				{key: "tab/shift+tab", desc: "next/previous pane"},
			},
		},
		{
			title: "Decoding key",
			items: []helpItem{
				{key: "type/paste", desc: "edit the key; the signature is re-checked on every change"},
				item(k.MarkValid),
				item(k.MarkInvalid),
				{key: "", desc: "A mark holds until the next edit."},
				{key: "accepts", desc: m.tok.Alg.KeyHint()},
			},
		},
		{
			title: "General",
			items: []helpItem{
				item(k.Help),
				item(k.Theme),
				item(k.SaveTheme),
				{key: "esc/^c", desc: "quit"},
			},
		},
		{
			title: "Config",
			items: []helpItem{
				{key: "file", desc: m.configPath},
				{key: "env", desc: config.EnvPrefix + "_THEME, " + config.EnvPrefix + "_KEYS_FOCUS_HEADER, ..."},
			},
		},
	}

	title := fmt.Sprintf("jwtinspect: %s token", m.tok.Alg)
	return helpTable(max(0, m.width-2), title, sections)
}
