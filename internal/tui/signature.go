package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nickromney/jwtinspect/internal/logger"
	"github.com/nickromney/jwtinspect/internal/token"
)

// signaturePane is the editable decoding key. It owns the validation
// result shown in its title.
//
// valid is whatever the last rule said: a validation run or a manual
// mark. A mark sticks only until the next edit re-validates.
type signaturePane struct {
	editor
	tok     *token.Token
	valid   bool
	keyKind token.KeyKind
	checked bool // false until the first validation run
}

func newSignaturePane(tok *token.Token) signaturePane {
	return signaturePane{
		editor: newEditor(PaneSignature, "", tok.Alg.KeyHint()),
		tok:    tok,
	}
}

// preload fills the buffer (e.g. from --key-file) and validates once.
func (s *signaturePane) preload(key string) {
	s.ta.SetValue(key)
	s.validate()
}

func (s *signaturePane) validate() {
	key := token.ResolveKey(s.tok.Alg, []byte(s.Value()))
	s.valid = token.Validate(s.tok, key)
	s.keyKind = key.Kind
	s.checked = true
	logger.Debug("signature checked",
		"alg", s.tok.Alg.String(),
		"key_kind", key.Kind.String(),
		"key_bytes", len(s.Value()),
		"valid", s.valid,
	)
}

func (s *signaturePane) markValid() {
	s.valid = true
	logger.Debug("signature marked valid")
}

func (s *signaturePane) markInvalid() {
	s.valid = false
	logger.Debug("signature marked invalid")
}

// Update edits the key and re-validates when the text changed. Cursor
// movement leaves the current result (including a manual mark) alone.
func (s *signaturePane) Update(msg tea.Msg) (bool, tea.Cmd) {
	changed, cmd := s.editor.Update(msg)
	if changed {
		s.validate()
	}
	return changed, cmd
}

func (s signaturePane) status() string {
	if s.valid {
		return "Valid"
	}
	return "Invalid"
}
