package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldActions(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected InputFrame
	}{
		{"empty batch", nil, InputFrame{}},
		{"single left", []Action{ActionMoveLeft}, InputFrame{Move: -1}},
		{"last move wins right", []Action{ActionMoveLeft, ActionMoveRight}, InputFrame{Move: 1}},
		{"last move wins left", []Action{ActionMoveRight, ActionRotate, ActionMoveLeft}, InputFrame{Move: -1, Rotate: true}},
		{"independent flags", []Action{ActionForceDown, ActionRotate, ActionQuit}, InputFrame{Rotate: true, ForceDown: true, Quit: true}},
		{"none is ignored", []Action{ActionNone, ActionNone}, InputFrame{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FoldActions(tc.actions))
		})
	}
}

func TestInputFrameChanged(t *testing.T) {
	assert.False(t, InputFrame{}.Changed())
	assert.False(t, InputFrame{ForceDown: true, Quit: true}.Changed())
	assert.True(t, InputFrame{Move: 1}.Changed())
	assert.True(t, InputFrame{Rotate: true}.Changed())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "MoveLeft", ActionMoveLeft.String())
	assert.Equal(t, "ForceDown", ActionForceDown.String())
	assert.Equal(t, "Unknown", Action(99).String())
}

func TestRuntimeConfigSubFrame(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, int64(25), cfg.SubFrame().Milliseconds())

	cfg.MoveRate = 0
	assert.Equal(t, cfg.TickPeriod, cfg.SubFrame())
}
