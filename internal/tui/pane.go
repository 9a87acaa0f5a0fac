package tui

// PaneID identifies which pane is focused.
type PaneID int

const (
	PaneHeader PaneID = iota
	PaneClaims
	PaneSignature
	paneCount // sentinel for wrapping
)

func (p PaneID) Next() PaneID {
	return (p + 1) % paneCount
}

func (p PaneID) Prev() PaneID {
	return (p - 1 + paneCount) % paneCount
}

func (p PaneID) String() string {
	switch p {
	case PaneHeader:
		return "Header"
	case PaneClaims:
		return "Claims"
	case PaneSignature:
		return "Decoding Key"
	default:
		return "?"
	}
}
