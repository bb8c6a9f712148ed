package mazegen

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrTooSmall indicates a maze dimension below the allowed minimum.
var ErrTooSmall = errors.New("mazegen: maze too small")

// ErrNeedRandSource indicates that no *rand.Rand was configured
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("mazegen: rng is required")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("mazegen: probability out of range")

// config aggregates all generator knobs. It is built once per Generate call.
type config struct {
	// RNG for every random choice; nil means "not configured".
	rng *rand.Rand
	// Chance of opening each remaining inner wall after carving.
	loopChance float64
	// error recorded by an option, surfaced by Generate
	err error
}

// Option customizes Generate.
type Option func(*config)

// newConfig applies all options in order; last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:        nil,
		loopChance: 0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand provides an explicit RNG.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mazegen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLoopChance sets the probability of opening each inner wall left after
// carving. Values outside [0, 1] surface as ErrInvalidProbability.
func WithLoopChance(p float64) Option {
	return func(c *config) {
		if p < 0 || p > 1 {
			c.err = fmt.Errorf("%w: loop chance %v", ErrInvalidProbability, p)
			return
		}
		c.loopChance = p
	}
}
