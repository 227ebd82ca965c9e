package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/field"
)

// FrameMsg carries a snapshot of the field to the view.
type FrameMsg struct {
	Grid field.Grid
}

// ScoreMsg carries the current score to the view.
type ScoreMsg int

// GameOverMsg tells the view the round ended by a spawn collision.
type GameOverMsg struct {
	Score int
}

// RoundEndedMsg is sent once the controller has returned.
type RoundEndedMsg struct {
	Quit  bool
	Score int
}

// Bridge connects the round controller, running on its own goroutine, with
// the Bubble Tea program. It is the controller's Input and Renderer.
type Bridge struct {
	actions chan core.Action
	ack     chan struct{}
	done    chan struct{}
	once    sync.Once
	send    func(tea.Msg)
}

// NewBridge creates a bridge that buffers up to size pending actions.
func NewBridge(size int) *Bridge {
	return &Bridge{
		actions: make(chan core.Action, size),
		ack:     make(chan struct{}, 1),
		done:    make(chan struct{}),
		send:    func(tea.Msg) {},
	}
}

// Attach sets the function used to deliver messages to the program,
// normally (*tea.Program).Send.
func (b *Bridge) Attach(send func(tea.Msg)) {
	b.send = send
}

// Push queues an action for the next poll. Actions beyond the buffer are
// dropped rather than blocking the UI.
func (b *Bridge) Push(a core.Action) {
	select {
	case b.actions <- a:
	default:
	}
}

// Poll drains every queued action without blocking.
func (b *Bridge) Poll() []core.Action {
	var out []core.Action
	for {
		select {
		case a := <-b.actions:
			out = append(out, a)
		default:
			return out
		}
	}
}

// Frame forwards a field snapshot to the view.
func (b *Bridge) Frame(g field.Grid) {
	b.send(FrameMsg{Grid: g})
}

// Score forwards the score to the view.
func (b *Bridge) Score(s int) {
	b.send(ScoreMsg(s))
}

// GameOver shows the game over banner and blocks until the player
// acknowledges it or the program shuts down.
func (b *Bridge) GameOver(s int) {
	b.send(GameOverMsg{Score: s})
	select {
	case <-b.ack:
	case <-b.done:
	}
}

// Acknowledge releases a pending GameOver call.
func (b *Bridge) Acknowledge() {
	select {
	case b.ack <- struct{}{}:
	default:
	}
}

// Close releases any blocked GameOver call for good.
func (b *Bridge) Close() {
	b.once.Do(func() {
		close(b.done)
	})
}
