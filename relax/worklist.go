package relax

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/turnmaze/statespace"
)

// item is a worklist entry: a vertex and the cost it had when pushed.
// Entries whose cost has since been beaten are stale and skipped on pop.
type item struct {
	v    statespace.Vertex
	cost int64
}

// worklist abstracts the processing order of improved vertices.
type worklist interface {
	push(it item)
	pop() (item, bool)
	size() int
}

// heapWorklist is a min-heap ordered by cost with lazy decrease-key:
// improved vertices are pushed again and old entries ignored when popped.
type heapWorklist struct {
	h *heap.Heap[item]
}

func newHeapWorklist() *heapWorklist {
	return &heapWorklist{h: heap.New[item](func(a, b item) bool { return a.cost < b.cost })}
}

func (w *heapWorklist) push(it item)      { w.h.Push(it) }
func (w *heapWorklist) pop() (item, bool) { return w.h.Pop() }
func (w *heapWorklist) size() int         { return w.h.Size() }

// stackWorklist processes the most recently improved vertex first.
type stackWorklist struct {
	s *stack.Stack[item]
}

func newStackWorklist() *stackWorklist {
	return &stackWorklist{s: stack.New[item]()}
}

func (w *stackWorklist) push(it item) { w.s.Push(it) }

func (w *stackWorklist) pop() (item, bool) {
	if w.s.Size() == 0 {
		return item{}, false
	}
	return w.s.Pop(), true
}

func (w *stackWorklist) size() int { return w.s.Size() }

func newWorklist(kind Worklist) worklist {
	if kind == Stack {
		return newStackWorklist()
	}
	return newHeapWorklist()
}
