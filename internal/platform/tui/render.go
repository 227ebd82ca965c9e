package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/field"
)

// Board layout constants
const (
	brickCell   = "[ ]"
	emptyCell   = " . "
	cellWidth   = len(brickCell)
	boardWidth  = field.Width*cellWidth + 2 // cells plus side borders
	boardHeight = field.Height + 2
	panelX      = boardWidth + 2
	gameOverStr = "GAME OVER"

	// ScreenWidth and ScreenHeight are the size of the drawn board area.
	ScreenWidth  = panelX + 12
	ScreenHeight = boardHeight
)

var boardRect = core.NewRect(0, 0, boardWidth, boardHeight)

// DrawBoard draws the field, the score panel and, when over is set, the
// game over banner into dst.
func DrawBoard(dst *core.Screen, grid field.Grid, score int, over bool) {
	dst.DrawBox(boardRect)

	for y, row := range grid {
		for x, c := range row {
			sx := 1 + x*cellWidth
			sy := 1 + y
			if c.Filled {
				dst.DrawTextBg(sx, sy, brickCell, c.Color)
			} else {
				dst.DrawText(sx, sy, emptyCell)
			}
		}
	}

	dst.DrawText(panelX, 1, "Score:")
	dst.DrawText(panelX, 2, fmt.Sprintf("%06d", score))

	if over {
		dst.DrawTextCentered(boardRect, boardHeight/2, " "+gameOverStr+" ", core.ColorGameOver)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same background to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	plain := lipgloss.NewStyle()
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with same background
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.HasBg != start.HasBg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style := plain
			if start.HasBg {
				style = lipgloss.NewStyle().Background(lipgloss.Color(start.Bg.Hex()))
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
