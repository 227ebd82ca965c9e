package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensionsSwapOnOddRotations(t *testing.T) {
	for _, k := range Kinds() {
		w0, h0 := k.Dimensions(0)
		w1, h1 := k.Dimensions(1)
		w2, h2 := k.Dimensions(2)
		w3, h3 := k.Dimensions(3)

		assert.Equal(t, [2]int{w0, h0}, [2]int{w2, h2}, "%s: rotations 0 and 2", k)
		assert.Equal(t, [2]int{w1, h1}, [2]int{w3, h3}, "%s: rotations 1 and 3", k)
		assert.Equal(t, [2]int{h0, w0}, [2]int{w1, h1}, "%s: rotation 1 swaps rotation 0", k)
	}
}

func TestBoundingBoxSizes(t *testing.T) {
	tests := []struct {
		kind Kind
		w, h int
	}{
		{KindI, 4, 4},
		{KindO, 2, 2},
		{KindT, 3, 3},
		{KindS, 3, 3},
		{KindZ, 3, 3},
		{KindJ, 3, 3},
		{KindL, 3, 3},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			w, h := tc.kind.Dimensions(0)
			assert.Equal(t, tc.w, w)
			assert.Equal(t, tc.h, h)
		})
	}
}

func TestOBitmapsIdentical(t *testing.T) {
	o := Lookup(KindO)
	for r := 1; r < Rotations; r++ {
		assert.Equal(t, o.Bitmaps[0], o.Bitmaps[r], "rotation %d", r)
	}
}

func TestSZReuseBitmaps(t *testing.T) {
	for _, k := range []Kind{KindS, KindZ} {
		s := Lookup(k)
		assert.Equal(t, s.Bitmaps[0], s.Bitmaps[2], "%s 0/2", k)
		assert.Equal(t, s.Bitmaps[1], s.Bitmaps[3], "%s 1/3", k)
		assert.NotEqual(t, s.Bitmaps[0], s.Bitmaps[1], "%s 0/1", k)
	}
}

func TestEveryRotationHasFourCells(t *testing.T) {
	for _, k := range Kinds() {
		for r := 0; r < Rotations; r++ {
			w, h := k.Dimensions(r)
			count := 0
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if k.Occupied(r, x, y) {
						count++
					}
				}
			}
			assert.Equal(t, 4, count, "%s rotation %d", k, r)
		}
	}
}

func TestOccupiedBitOrder(t *testing.T) {
	// I rotation 0 is 0b0100 on every row: column 1 from the left.
	for y := 0; y < 4; y++ {
		assert.False(t, KindI.Occupied(0, 0, y))
		assert.True(t, KindI.Occupied(0, 1, y))
		assert.False(t, KindI.Occupied(0, 2, y))
		assert.False(t, KindI.Occupied(0, 3, y))
	}

	// L rotation 0 bottom row is 0b011: columns 1 and 2.
	assert.False(t, KindL.Occupied(0, 0, 2))
	assert.True(t, KindL.Occupied(0, 1, 2))
	assert.True(t, KindL.Occupied(0, 2, 2))

	// I rotation 1 is the horizontal bar on row 1.
	for x := 0; x < 4; x++ {
		assert.True(t, KindI.Occupied(1, x, 1))
		assert.False(t, KindI.Occupied(1, x, 0))
	}
}

func TestOccupiedOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { KindT.Occupied(0, 3, 0) })
	assert.Panics(t, func() { KindT.Occupied(0, 0, -1) })
	assert.Panics(t, func() { KindO.Occupied(0, 2, 0) })
	assert.Panics(t, func() { KindT.Occupied(4, 0, 0) })
}

func TestLookupInvalidKindPanics(t *testing.T) {
	assert.Panics(t, func() { Lookup(Kind(KindCount)) })
	assert.Panics(t, func() { Lookup(Kind(-1)) })
}

func TestRotationArithmetic(t *testing.T) {
	for r := 0; r < Rotations; r++ {
		assert.Equal(t, r, PrevRotation(NextRotation(r)))
		assert.Equal(t, r, NextRotation(PrevRotation(r)))
	}
	assert.Equal(t, 0, NextRotation(3))
	assert.Equal(t, 3, PrevRotation(0))
}

func TestColors(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range Kinds() {
		hex := k.Color().Hex()
		if prev, ok := seen[hex]; ok {
			t.Errorf("%s and %s share color %s", prev, k, hex)
		}
		seen[hex] = k
	}
	assert.Equal(t, "#14a2ec", KindI.Color().Hex())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind("t")
	require.NoError(t, err)
	assert.Equal(t, KindT, got)

	_, err = ParseKind("X")
	assert.Error(t, err)
}
