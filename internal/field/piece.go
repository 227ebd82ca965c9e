package field

import "github.com/vovakirdan/blockfall/internal/shapes"

// Piece is the active piece: a kind, a rotation index and the anchor of its
// bounding box (top-left, in field coordinates). The anchor may point outside
// the grid while a move is being probed.
type Piece struct {
	Kind     shapes.Kind
	Rotation int
	X, Y     int
}

// SpawnX is the anchor column of a freshly spawned piece.
const SpawnX = Width/2 - 2

// Spawn returns a new piece of the given kind at rotation 0, anchored at the
// top of the field.
func Spawn(kind shapes.Kind) Piece {
	return Piece{Kind: kind, Rotation: 0, X: SpawnX, Y: 0}
}

// Fill returns the cell value the piece paints with.
func (p Piece) Fill() Cell {
	return Filled(p.Kind.Color())
}

// Cells returns the field coordinates of every occupied cell of the piece.
func (p Piece) Cells() [][2]int {
	cells := make([][2]int, 0, 4)
	p.each(func(x, y int) {
		cells = append(cells, [2]int{x, y})
	})
	return cells
}

// each calls fn with the field coordinates of every occupied cell.
func (p Piece) each(fn func(x, y int)) {
	w, h := p.Kind.Dimensions(p.Rotation)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if p.Kind.Occupied(p.Rotation, x, y) {
				fn(p.X+x, p.Y+y)
			}
		}
	}
}
