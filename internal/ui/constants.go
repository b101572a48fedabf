// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// HeaderHeight is the masthead line plus the section bar.
	HeaderHeight = 2

	// FooterHeight is the status line under the page.
	FooterHeight = 1

	// ControlsHeight is the dots and prev/next row in flip mode.
	ControlsHeight = 1

	// ChromeHeight is the total vertical overhead of the full layout.
	ChromeHeight = HeaderHeight + FooterHeight + ControlsHeight

	// PageMargin is the horizontal padding on each side of a page.
	PageMargin = 2

	// MinPageWidth is the narrowest width pages are laid out at.
	MinPageWidth = 20

	// SectionGap is the number of blank lines between sections in scroll mode.
	SectionGap = 1
)
