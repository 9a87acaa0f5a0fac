package tui

// StatusMsg sets a temporary status message in the status bar.
type StatusMsg struct {
	Text  string
	IsErr bool
}
