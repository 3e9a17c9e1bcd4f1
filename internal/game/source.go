package game

import "math/rand"

// Source supplies the random draws a round consumes.
type Source interface {
	// Bool returns a fair binary choice.
	Bool() bool
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// RandSource is a seeded pseudo-random Source.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a Source whose sequence is fixed by seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandSource) Bool() bool       { return s.rng.Intn(2) == 0 }
func (s *RandSource) Float64() float64 { return s.rng.Float64() }
