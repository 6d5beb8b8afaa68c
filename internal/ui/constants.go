// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across screens.
const (
	// ScrollMargin is the number of rows to keep visible above/below the cursor.
	ScrollMargin = 2

	// HeaderHeight is the space for a screen title plus its separator.
	HeaderHeight = 2

	// FooterHeight is the space for the key hint line.
	FooterHeight = 1

	// ScreenOverhead is the vertical space not available to a screen body.
	ScreenOverhead = HeaderHeight + FooterHeight

	// CellWidth is the width of one grid cell in the folder contents screen.
	CellWidth = 24

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 10
)
