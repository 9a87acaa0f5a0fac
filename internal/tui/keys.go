package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/nickromney/jwtinspect/internal/config"
)

// keyMap holds the global commands. They are matched before a key reaches
// the focused text area, so anything bound here never edits a buffer.
type keyMap struct {
	Quit           key.Binding
	FocusHeader    key.Binding
	FocusClaims    key.Binding
	FocusSignature key.Binding
	NextPane       key.Binding
	PrevPane       key.Binding
	MarkValid      key.Binding
	MarkInvalid    key.Binding
	Help           key.Binding
	Theme          key.Binding
	SaveTheme      key.Binding
}

func newKeyMap(k config.KeysConfig) keyMap {
	bind := func(name, help string) key.Binding {
		return key.NewBinding(key.WithKeys(name), key.WithHelp(caret(name), help))
	}
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		FocusHeader:    bind(k.FocusHeader, "edit header"),
		FocusClaims:    bind(k.FocusClaims, "edit claims"),
		FocusSignature: bind(k.FocusSignature, "edit decoding key"),
		NextPane:       bind("tab", "next pane"),
		PrevPane:       bind("shift+tab", "previous pane"),
		MarkValid:      bind(k.MarkValid, "mark valid"),
		MarkInvalid:    bind(k.MarkInvalid, "mark invalid"),
		Help:           bind("f1", "help"),
		Theme:          bind("f2", "cycle theme"),
		SaveTheme:      bind("f3", "save theme"),
	}
}

// caret renders "ctrl+h" as "^h"; other key names pass through.
func caret(name string) string {
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok && rest != "" {
		return "^" + rest
	}
	return name
}
