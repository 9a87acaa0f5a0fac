package tui

// Vertical split for header / claims / decoding key. Claims take the rest.
const (
	headerPct    = 20
	signaturePct = 20
)

// paneHeights splits totalH rows between the three stacked panes. Each
// height includes the pane's top and bottom border rows, and neighbours
// share one border row, so for totalH >= 4:
//
//	headerH + claimsH + sigH - 2 == totalH
//
// Panes get at least one content row when there is room for it.
func paneHeights(totalH int) (headerH, claimsH, sigH int) {
	if totalH <= 0 {
		return 0, 0, 0
	}

	units := totalH + 2 // shared borders counted once per pane
	minH := 2
	if units >= 9 {
		minH = 3
	}
	if units < 3*minH {
		// Too small for three frames; the renderer truncates.
		return minH, max(0, units-2*minH), minH
	}

	headerH = max(minH, units*headerPct/100)
	sigH = max(minH, units*signaturePct/100)
	claimsH = units - headerH - sigH
	return headerH, claimsH, sigH
}

// layoutPanes pushes inner sizes (borders excluded) down to the editors.
func (m *Model) layoutPanes() {
	// We reserve 1 line for the status bar.
	gridW := m.width
	gridH := max(0, m.height-1)
	innerW := max(1, gridW-2)

	headerH, claimsH, sigH := paneHeights(gridH)
	m.header.SetSize(innerW, max(1, headerH-2))
	m.claims.SetSize(innerW, max(1, claimsH-2))
	m.signature.SetSize(innerW, max(1, sigH-2))
	m.helpPane.SetSize(max(0, gridW-2), max(0, gridH-2))
}
