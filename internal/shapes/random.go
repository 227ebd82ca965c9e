package shapes

import (
	"fmt"
	"math/rand"
	"sync"
)

// RandomSource supplies piece kinds. It is passed in by the caller so that
// rounds can be replayed deterministically.
type RandomSource interface {
	NextKind() Kind
}

// RandomKind draws the next kind from src.
// A source that returns a kind outside the catalog is a programming error.
func RandomKind(src RandomSource) Kind {
	k := src.NextKind()
	if !k.Valid() {
		panic(fmt.Sprintf("shapes: random source returned invalid kind %d", int(k)))
	}
	return k
}

// RandSource draws kinds uniformly from a seeded math/rand generator.
type RandSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandSource creates a uniform source with the given seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// NextKind returns a uniformly chosen kind.
func (r *RandSource) NextKind() Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Kind(r.rng.Intn(KindCount))
}

// Sequence replays a fixed list of kinds, wrapping around at the end.
type Sequence struct {
	kinds []Kind
	pos   int
}

// NewSequence creates a cycling source. Panics when kinds is empty.
func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		panic("shapes: empty sequence")
	}
	return &Sequence{kinds: kinds}
}

// ParseSequence builds a Sequence from letters such as "IOTSZJL".
func ParseSequence(s string) (*Sequence, error) {
	if s == "" {
		return nil, fmt.Errorf("shapes: empty sequence")
	}
	kinds := make([]Kind, 0, len(s))
	for _, r := range s {
		k, err := ParseKind(string(r))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return NewSequence(kinds...), nil
}

// NextKind returns the next kind in the sequence.
func (s *Sequence) NextKind() Kind {
	k := s.kinds[s.pos]
	s.pos = (s.pos + 1) % len(s.kinds)
	return k
}
