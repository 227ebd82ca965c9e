// Package shapes holds the immutable catalog of piece kinds.
// Each kind carries four hand-authored rotation bitmaps; rotations are never
// computed at runtime.
package shapes

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Kind identifies one of the seven pieces.
type Kind int

const (
	KindI Kind = iota
	KindL
	KindJ
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of piece kinds in the catalog.
const KindCount = 7

// Rotations is the number of authored orientations per kind.
const Rotations = 4

// Shape is the catalog entry for a kind. Bitmap rows are stored top to
// bottom; within a row bit 0 is the rightmost column of the bounding box.
type Shape struct {
	Name    string
	Width   int // canonical (rotation 0) width
	Height  int // canonical (rotation 0) height
	Color   core.RGB
	Bitmaps [Rotations][]uint8
}

var catalog = [KindCount]Shape{
	KindI: {
		Name: "I", Width: 4, Height: 4,
		Color: core.RGB{R: 20, G: 162, B: 236},
		Bitmaps: [Rotations][]uint8{
			{0b0100, 0b0100, 0b0100, 0b0100},
			{0b0000, 0b1111, 0b0000, 0b0000},
			{0b0010, 0b0010, 0b0010, 0b0010},
			{0b0000, 0b0000, 0b1111, 0b0000},
		},
	},
	KindL: {
		Name: "L", Width: 3, Height: 3,
		Color: core.RGB{R: 62, G: 68, B: 206},
		Bitmaps: [Rotations][]uint8{
			{0b010, 0b010, 0b011},
			{0b000, 0b111, 0b100},
			{0b110, 0b010, 0b010},
			{0b001, 0b111, 0b000},
		},
	},
	KindJ: {
		Name: "J", Width: 3, Height: 3,
		Color: core.RGB{R: 255, G: 0, B: 255},
		Bitmaps: [Rotations][]uint8{
			{0b010, 0b010, 0b110},
			{0b100, 0b111, 0b000},
			{0b011, 0b010, 0b010},
			{0b000, 0b111, 0b001},
		},
	},
	KindO: {
		Name: "O", Width: 2, Height: 2,
		Color: core.RGB{R: 254, G: 199, B: 18},
		Bitmaps: [Rotations][]uint8{
			{0b11, 0b11},
			{0b11, 0b11},
			{0b11, 0b11},
			{0b11, 0b11},
		},
	},
	// S and Z reuse one bitmap for rotations {0,2} and another for {1,3}.
	KindS: {
		Name: "S", Width: 3, Height: 3,
		Color: core.RGB{R: 36, G: 176, B: 77},
		Bitmaps: [Rotations][]uint8{
			{0b000, 0b011, 0b110},
			{0b010, 0b011, 0b001},
			{0b000, 0b011, 0b110},
			{0b010, 0b011, 0b001},
		},
	},
	KindT: {
		Name: "T", Width: 3, Height: 3,
		Color: core.RGB{R: 162, G: 71, B: 164},
		Bitmaps: [Rotations][]uint8{
			{0b010, 0b111, 0b000},
			{0b010, 0b011, 0b010},
			{0b000, 0b111, 0b010},
			{0b010, 0b110, 0b010},
		},
	},
	KindZ: {
		Name: "Z", Width: 3, Height: 3,
		Color: core.RGB{R: 238, G: 32, B: 36},
		Bitmaps: [Rotations][]uint8{
			{0b110, 0b011, 0b000},
			{0b001, 0b011, 0b010},
			{0b110, 0b011, 0b000},
			{0b001, 0b011, 0b010},
		},
	},
}

// Kinds returns every kind in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, KindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

// Lookup returns the catalog entry for k.
// Panics on an unknown kind: that is a programming error.
func Lookup(k Kind) Shape {
	if !k.Valid() {
		panic(fmt.Sprintf("shapes: invalid kind %d", int(k)))
	}
	return catalog[k]
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return catalog[k].Name
}

// ParseKind resolves a single-letter kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(catalog[k].Name, s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("shapes: unknown kind %q", s)
}

// Color returns the display color of the kind.
func (k Kind) Color() core.RGB {
	return Lookup(k).Color
}

// Dimensions returns the bounding box of the kind in the given rotation.
// Rotations 0 and 2 report the canonical size; 1 and 3 report it swapped.
func (k Kind) Dimensions(rot int) (w, h int) {
	s := Lookup(k)
	switch rot {
	case 0, 2:
		return s.Width, s.Height
	case 1, 3:
		return s.Height, s.Width
	default:
		panic(fmt.Sprintf("shapes: invalid rotation %d", rot))
	}
}

// Occupied reports whether cell (x, y) of the rotation's bounding box is
// part of the piece. Coordinates outside the box panic.
func (k Kind) Occupied(rot, x, y int) bool {
	w, h := k.Dimensions(rot)
	if x < 0 || x >= w || y < 0 || y >= h {
		panic(fmt.Sprintf("shapes: cell (%d, %d) outside %dx%d box of %s", x, y, w, h, k))
	}
	return catalog[k].Bitmaps[rot][y]&(1<<(w-1-x)) != 0
}

// NextRotation returns the rotation index after r, wrapping modulo 4.
func NextRotation(r int) int {
	return (r + 1) % Rotations
}

// PrevRotation returns the rotation index before r, wrapping modulo 4.
func PrevRotation(r int) int {
	return (r + Rotations - 1) % Rotations
}
