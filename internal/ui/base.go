package ui

// Base provides common UI component functionality for size management.
// Embed this in component models to get standard methods automatically.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    pages []Page
//	}
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// ContentWidth returns the width left for page content after margins,
// never less than MinPageWidth.
func (b Base) ContentWidth(wrap int) int {
	w := b.width - 2*PageMargin
	if wrap > 0 && w > wrap {
		w = wrap
	}
	return max(w, MinPageWidth)
}

// ContentHeight returns available height after subtracting overhead.
func (b Base) ContentHeight(overhead int) int {
	return max(b.height-overhead, 1)
}
