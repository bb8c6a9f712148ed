package relax

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/turnmaze/statespace"
)

// Infinity is the cost of a vertex that has not been reached.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by Relax.
var (
	// ErrNilSpace indicates that a nil *statespace.Space was passed to Relax.
	ErrNilSpace = errors.New("relax: space is nil")

	// ErrBadStart indicates that the start vertex is not part of the space.
	ErrBadStart = errors.New("relax: start vertex is blocked or out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("relax: invalid option supplied")

	// ErrBadMaxCost indicates that WithMaxCost received a negative value.
	ErrBadMaxCost = errors.New("relax: MaxCost must be non-negative")
)

// Worklist selects the order in which improved vertices are processed.
type Worklist int

const (
	// PriorityQueue expands vertices in increasing cost order.
	PriorityQueue Worklist = iota
	// Stack expands the most recently improved vertex first.
	Stack
)

// String returns "heap" or "stack".
func (w Worklist) String() string {
	switch w {
	case PriorityQueue:
		return "heap"
	case Stack:
		return "stack"
	default:
		return fmt.Sprintf("Worklist(%d)", int(w))
	}
}

// ParseWorklist accepts "heap", "pq", "priority" or "stack".
func ParseWorklist(s string) (Worklist, error) {
	switch s {
	case "heap", "pq", "priority":
		return PriorityQueue, nil
	case "stack", "lifo":
		return Stack, nil
	}
	return 0, fmt.Errorf("%w: unknown worklist %q", ErrOptionViolation, s)
}

// Options configures a Relax run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Worklist picks the processing order. Default PriorityQueue.
	Worklist Worklist

	// MaxCost caps exploration; costlier vertices stay at Infinity.
	// Default Infinity (no cap).
	MaxCost int64

	// OnImprove is called every time a vertex's known cost strictly drops.
	OnImprove func(v statespace.Vertex, cost int64)

	// OnSettle is called when a vertex is taken from the worklist and its
	// outgoing edges are relaxed.
	OnSettle func(v statespace.Vertex, cost int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Relax.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - context.Background()
//   - PriorityQueue worklist
//   - MaxCost = Infinity
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Worklist:  PriorityQueue,
		MaxCost:   Infinity,
		OnImprove: func(statespace.Vertex, int64) {},
		OnSettle:  func(statespace.Vertex, int64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorklist selects the processing order. Unknown values surface as
// ErrOptionViolation when Relax is invoked.
func WithWorklist(w Worklist) Option {
	return func(o *Options) {
		switch w {
		case PriorityQueue, Stack:
			o.Worklist = w
		default:
			o.err = fmt.Errorf("%w: unknown worklist %d", ErrOptionViolation, int(w))
		}
	}
}

// WithMaxCost leaves vertices costing more than max unreached.
// Panics on a negative value.
func WithMaxCost(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxCost.Error())
	}
	return func(o *Options) {
		o.MaxCost = max
	}
}

// WithOnImprove registers a callback run on every strict cost improvement.
func WithOnImprove(fn func(v statespace.Vertex, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}

// WithOnSettle registers a callback run when a vertex is expanded.
func WithOnSettle(fn func(v statespace.Vertex, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Stats counts the work done by one Relax run.
type Stats struct {
	Pops         int // items taken from the worklist
	Stale        int // popped items whose cost had already been beaten
	Pushes       int // items inserted into the worklist
	Improvements int // strict decreases of a vertex cost
}
