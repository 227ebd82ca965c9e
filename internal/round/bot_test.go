package round

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

func TestRandomInputNeverQuits(t *testing.T) {
	bot := NewRandomInput(1, 0.5, 0.5)
	seen := make(map[core.Action]bool)
	for i := 0; i < 2000; i++ {
		for _, a := range bot.Poll() {
			seen[a] = true
		}
	}

	assert.False(t, seen[core.ActionQuit])
	assert.True(t, seen[core.ActionMoveLeft])
	assert.True(t, seen[core.ActionMoveRight])
	assert.True(t, seen[core.ActionRotate])
	assert.True(t, seen[core.ActionForceDown])
}

func TestRandomInputSilent(t *testing.T) {
	bot := NewRandomInput(1, 0, 0)
	for i := 0; i < 100; i++ {
		assert.Empty(t, bot.Poll())
	}
}

// A bot round always terminates in game over and keeps the field consistent.
func TestBotRoundIsDeterministic(t *testing.T) {
	play := func() (State, int, Stats) {
		ctrl := New(testConfig, shapes.NewRandSource(9), NewRandomInput(9, 0.3, 0.1), NopRenderer{}, NopClock{})
		state := ctrl.RunTicks(100000)
		return state, ctrl.Score(), ctrl.Stats()
	}

	s1, score1, stats1 := play()
	s2, score2, stats2 := play()

	assert.Equal(t, StateGameOver, s1)
	assert.Equal(t, s1, s2)
	assert.Equal(t, score1, score2)
	assert.Equal(t, stats1, stats2)
	assert.Positive(t, stats1.Pieces)
}
