// Package round drives a single game: it polls input, moves the active piece,
// applies gravity, locks pieces, clears rows, keeps the score and detects the
// end of the round.
package round

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/field"
	"github.com/vovakirdan/blockfall/internal/shapes"
)

// State is the controller's position in the round state machine.
type State int

const (
	// StateFalling means an active piece is under player control.
	StateFalling State = iota
	// StateLocked is held only while a settled piece is being processed;
	// a tick never ends in it.
	StateLocked
	// StateGameOver is reached when a newly spawned piece collides.
	StateGameOver
	// StateQuit is reached when the player asks to leave.
	StateQuit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateLocked:
		return "locked"
	case StateGameOver:
		return "game over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Stats counts what happened during a round.
type Stats struct {
	Ticks  int // Gravity ticks processed
	Pieces int // Pieces locked into the field
	Lines  int // Rows cleared
}

// Controller runs one round. It is not safe for concurrent use; the
// platform layer owns it from a single goroutine.
type Controller struct {
	cfg      core.RuntimeConfig
	field    *field.Field
	piece    field.Piece
	state    State
	score    int
	stats    Stats
	rng      shapes.RandomSource
	input    Input
	renderer Renderer
	clock    Clock
	logger   *log.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for round events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// WithField makes the round start on an existing field.
func WithField(f *field.Field) Option {
	return func(c *Controller) {
		c.field = f
	}
}

// New creates a controller and spawns the first piece.
// The first piece starts at rotation 1; every later piece starts at 0.
func New(cfg core.RuntimeConfig, rng shapes.RandomSource, in Input, r Renderer, clk Clock, opts ...Option) *Controller {
	c := &Controller{
		cfg:      cfg,
		field:    field.New(),
		rng:      rng,
		input:    in,
		renderer: r,
		clock:    clk,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.piece = field.Spawn(shapes.RandomKind(c.rng))
	c.piece.Rotation = 1
	c.state = StateFalling
	c.logger.Debug("round started", "piece", c.piece.Kind, "tick", c.cfg.TickPeriod, "move_rate", c.cfg.MoveRate)
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Score returns the accumulated score.
func (c *Controller) Score() int {
	return c.score
}

// Stats returns the round counters.
func (c *Controller) Stats() Stats {
	return c.stats
}

// Piece returns the active piece.
func (c *Controller) Piece() field.Piece {
	return c.piece
}

// Field returns the play field.
func (c *Controller) Field() *field.Field {
	return c.field
}

// Run ticks until the round leaves the falling state and returns the final state.
func (c *Controller) Run() State {
	for c.Tick() == StateFalling {
	}
	return c.state
}

// RunTicks ticks at most n times and returns the state reached.
func (c *Controller) RunTicks(n int) State {
	for i := 0; i < n && c.state == StateFalling; i++ {
		c.Tick()
	}
	return c.state
}

// Tick processes one gravity period: up to MoveRate input sub-frames followed
// by one vertical step.
func (c *Controller) Tick() State {
	if c.state != StateFalling {
		return c.state
	}
	c.stats.Ticks++
	c.renderer.Score(c.score)

	changed := true
	hardDrop := false
	for i := 0; i < c.cfg.MoveRate; i++ {
		c.field.Stamp(c.piece, c.piece.Fill())
		if changed {
			c.renderer.Frame(c.field.Snapshot())
		}
		c.clock.Wait(c.cfg.SubFrame())
		c.field.Stamp(c.piece, field.Empty)

		in := core.FoldActions(c.input.Poll())
		if in.Quit {
			c.state = StateQuit
			c.logger.Info("round quit", "score", c.score, "ticks", c.stats.Ticks)
			return c.state
		}
		changed = in.Changed()
		c.apply(in)

		if in.ForceDown {
			hardDrop = true
			break
		}
	}

	locked := c.field.Descend(&c.piece, hardDrop)
	c.field.Stamp(c.piece, c.piece.Fill())
	c.renderer.Frame(c.field.Snapshot())

	if locked {
		c.lock()
	}
	return c.state
}

// apply tries the horizontal move and the rotation independently; each is
// reverted on its own if it collides.
func (c *Controller) apply(in core.InputFrame) {
	c.field.TryShift(&c.piece, in.Move)
	if in.Rotate {
		c.field.TryRotate(&c.piece)
	}
}

// lock handles a settled piece (already painted): clear rows, score, and
// spawn the next piece.
func (c *Controller) lock() {
	c.state = StateLocked

	lines := c.field.ClearFullLines()
	points := ScoreFor(lines)
	c.score += points
	c.stats.Pieces++
	c.stats.Lines += lines
	c.logger.Debug("piece locked", "piece", c.piece.Kind, "x", c.piece.X, "y", c.piece.Y, "lines", lines, "points", points)

	c.piece = field.Spawn(shapes.RandomKind(c.rng))
	if c.field.Collides(c.piece) {
		c.state = StateGameOver
		c.logger.Info("game over", "score", c.score, "pieces", c.stats.Pieces, "lines", c.stats.Lines)
		c.renderer.GameOver(c.score)
		return
	}

	c.state = StateFalling
	c.logger.Debug("piece spawned", "piece", c.piece.Kind)
}
