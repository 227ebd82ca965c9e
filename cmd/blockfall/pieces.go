package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/shapes"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show the piece catalog",
	Long:  `Shows every piece kind with its color, bounding box and four rotations.`,
	Args:  cobra.NoArgs,
	Run:   runPieces,
}

func runPieces(cmd *cobra.Command, args []string) {
	fmt.Println("Pieces:")
	fmt.Println()

	for _, k := range shapes.Kinds() {
		w, h := k.Dimensions(0)
		fmt.Printf("  %s  %s  %dx%d\n", k, k.Color().Hex(), w, h)
		fmt.Println(renderRotations(k))
	}
}

// renderRotations draws the four rotations of k side by side.
func renderRotations(k shapes.Kind) string {
	brick := lipgloss.NewStyle().Background(lipgloss.Color(k.Color().Hex())).Render("[]")

	blocks := make([]string, 0, shapes.Rotations)
	for rot := 0; rot < shapes.Rotations; rot++ {
		w, h := k.Dimensions(rot)
		rows := make([]string, h)
		for y := 0; y < h; y++ {
			var sb strings.Builder
			for x := 0; x < w; x++ {
				if k.Occupied(rot, x, y) {
					sb.WriteString(brick)
				} else {
					sb.WriteString(" .")
				}
			}
			rows[y] = sb.String()
		}
		blocks = append(blocks, lipgloss.NewStyle().MarginLeft(4).Render(strings.Join(rows, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}
