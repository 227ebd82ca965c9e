// Package field implements the play field: the grid of settled cells and the
// geometric rules for placing, moving and locking the active piece.
package field

import (
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

// Field dimensions. They are part of the engine's contract, not configuration.
const (
	Width  = 10
	Height = 20
)

// bounds covers every addressable cell of the grid.
var bounds = core.NewRect(0, 0, Width, Height)

// Cell is a single grid cell: empty, or filled with the color of the piece
// that settled there.
type Cell struct {
	Filled bool
	Color  core.RGB
}

// Empty is the value of an unoccupied cell.
var Empty = Cell{}

// Filled returns a cell painted with color c.
func Filled(c core.RGB) Cell {
	return Cell{Filled: true, Color: c}
}

// Grid is the row-major cell array; row 0 is the top.
// It is a value type so that assigning it takes a snapshot.
type Grid [Height][Width]Cell

// Field owns the grid of settled cells.
type Field struct {
	grid Grid
}

// New creates an empty field.
func New() *Field {
	return &Field{}
}

// Reset empties every cell.
func (f *Field) Reset() {
	f.grid = Grid{}
}

// Snapshot returns a copy of the grid.
func (f *Field) Snapshot() Grid {
	return f.grid
}

// Cell returns the cell at (x, y). Out-of-bounds coordinates read as Empty.
func (f *Field) Cell(x, y int) Cell {
	if !bounds.Contains(x, y) {
		return Empty
	}
	return f.grid[y][x]
}

// Set writes c at (x, y). Out-of-bounds coordinates are ignored.
func (f *Field) Set(x, y int, c Cell) {
	if !bounds.Contains(x, y) {
		return
	}
	f.grid[y][x] = c
}

// RowFull reports whether row y has no empty cell.
func (f *Field) RowFull(y int) bool {
	for _, c := range f.grid[y] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// Stamp writes fill into every in-bounds cell covered by the piece.
// Occupied piece cells that fall outside the grid are skipped, so probing
// positions never panics. Stamp with the piece color paints it, with Empty
// erases it.
func (f *Field) Stamp(p Piece, fill Cell) {
	p.each(func(x, y int) {
		if bounds.Contains(x, y) {
			f.grid[y][x] = fill
		}
	})
}

// Collides reports whether any occupied cell of the piece lies outside the
// grid or on top of a filled cell.
func (f *Field) Collides(p Piece) bool {
	hit := false
	p.each(func(x, y int) {
		if hit {
			return
		}
		if !bounds.Contains(x, y) || f.grid[y][x].Filled {
			hit = true
		}
	})
	return hit
}

// TryShift moves the piece dx columns, reverting if the new position
// collides. Reports whether the move was kept.
func (f *Field) TryShift(p *Piece, dx int) bool {
	if dx == 0 {
		return true
	}
	p.X += dx
	if f.Collides(*p) {
		p.X -= dx
		return false
	}
	return true
}

// TryRotate advances the piece one rotation, reverting if the new
// orientation collides. Reports whether the rotation was kept.
func (f *Field) TryRotate(p *Piece) bool {
	p.Rotation = shapes.NextRotation(p.Rotation)
	if f.Collides(*p) {
		p.Rotation = shapes.PrevRotation(p.Rotation)
		return false
	}
	return true
}

// Descend moves the piece down one row. If that collides the step is undone
// and the piece is reported locked. With hardDrop the step repeats until the
// piece locks, so a hard drop always returns true.
// Descend never paints the piece; callers do that once it is locked.
func (f *Field) Descend(p *Piece, hardDrop bool) (locked bool) {
	for {
		p.Y++
		if f.Collides(*p) {
			p.Y--
			return true
		}
		if !hardDrop {
			return false
		}
	}
}

// ClearFullLines removes full rows and returns how many were found.
//
// Rows are scanned once, top to bottom. For each full row i, rows 0..i-1 are
// shifted down by one in place. Row 0 keeps whatever it held before the shift;
// it is not reset to empty.
func (f *Field) ClearFullLines() int {
	cleared := 0
	for i := 0; i < Height; i++ {
		if !f.RowFull(i) {
			continue
		}
		for r := i - 1; r >= 0; r-- {
			f.grid[r+1] = f.grid[r]
		}
		cleared++
	}
	return cleared
}
