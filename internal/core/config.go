package core

import "time"

// RuntimeConfig contains the timing parameters a round is driven by.
// Field size is fixed and is deliberately not part of this struct.
type RuntimeConfig struct {
	TickPeriod time.Duration // Duration of one gravity tick
	MoveRate   int           // Sub-frames (input polls) per tick
	Seed       int64         // RNG seed for piece draws
}

// DefaultConfig returns a RuntimeConfig with the classic pacing:
// one gravity step every 500ms with 20 input polls in between.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickPeriod: 500 * time.Millisecond,
		MoveRate:   20,
		Seed:       0, // 0 means use current time in platform layer
	}
}

// SubFrame returns the wait between two input polls.
func (c RuntimeConfig) SubFrame() time.Duration {
	if c.MoveRate <= 0 {
		return c.TickPeriod
	}
	return c.TickPeriod / time.Duration(c.MoveRate)
}
