package round

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/core"
)

// RandomInput is a seeded bot that mashes keys. It never quits, so a round
// driven by it ends only by game over or by a tick cap.
type RandomInput struct {
	rng      *rand.Rand
	moveProb float64
	dropProb float64
}

// NewRandomInput creates a bot. moveProb is the chance of a move or rotation
// per poll, dropProb the chance of a hard drop per poll.
func NewRandomInput(seed int64, moveProb, dropProb float64) *RandomInput {
	return &RandomInput{
		rng:      rand.New(rand.NewSource(seed)),
		moveProb: moveProb,
		dropProb: dropProb,
	}
}

var botMoves = [...]core.Action{core.ActionMoveLeft, core.ActionMoveRight, core.ActionRotate}

// Poll returns zero or more random actions.
func (r *RandomInput) Poll() []core.Action {
	var out []core.Action
	if r.rng.Float64() < r.moveProb {
		out = append(out, botMoves[r.rng.Intn(len(botMoves))])
	}
	if r.rng.Float64() < r.dropProb {
		out = append(out, core.ActionForceDown)
	}
	return out
}
