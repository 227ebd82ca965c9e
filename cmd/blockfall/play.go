package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round in the terminal.

Controls (defaults, see 'blockfall config'):
  Left/Right - Move
  Up         - Rotate
  Down       - Drop
  Ctrl+Q     - Quit

Examples:
  blockfall play
  blockfall play --seed 42 --log-file /tmp/blockfall.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The board needs room for the field, the score panel and the help line
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w < tui.ScreenWidth || h < tui.ScreenHeight+1 {
			return fmt.Errorf("terminal too small: need %dx%d, have %dx%d", tui.ScreenWidth, tui.ScreenHeight+1, w, h)
		}
	}

	out, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	res, err := tui.Run(appConfig.Runtime(flagSeed), tui.NewKeyMap(appConfig.Controls), logger)
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	logger.Info("round finished", "score", res.Score, "pieces", res.Stats.Pieces, "lines", res.Stats.Lines)
	fmt.Printf("Score: %06d\n", res.Score)
	return nil
}
