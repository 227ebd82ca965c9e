package round

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/field"
)

// Input supplies pending player actions. Poll must not block; it returns
// everything queued since the previous call.
type Input interface {
	Poll() []core.Action
}

// Renderer displays the round. GameOver is called once when the round ends
// by a spawn collision and blocks until the player acknowledges it.
type Renderer interface {
	Frame(grid field.Grid)
	Score(score int)
	GameOver(score int)
}

// Clock paces sub-frames.
type Clock interface {
	Wait(d time.Duration)
}

// SleepClock waits in real time.
type SleepClock struct{}

// Wait sleeps for d.
func (SleepClock) Wait(d time.Duration) {
	time.Sleep(d)
}

// NopClock returns immediately; used for headless simulation and tests.
type NopClock struct{}

// Wait does nothing.
func (NopClock) Wait(time.Duration) {}

// NopRenderer discards all output.
type NopRenderer struct{}

func (NopRenderer) Frame(field.Grid) {}
func (NopRenderer) Score(int)        {}
func (NopRenderer) GameOver(int)     {}
