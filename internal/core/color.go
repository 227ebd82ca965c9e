package core

import "fmt"

// RGB is a 24-bit color used for filled field cells and screen backgrounds.
// The zero value is black and is never used as a "no color" marker; emptiness
// is tracked separately by the owners of a cell.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a "#rrggbb" string, the form lipgloss accepts.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorGameOver is the background of the game over banner.
var ColorGameOver = RGB{R: 200, G: 0, B: 0}
