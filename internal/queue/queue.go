// Package queue implements a FIFO worklist of rule indices used for graph walks.
// Every index enters the worklist at most once.
package queue

import "github.com/ekw/ruleparse/internal/ints"

const minSize = 3

// Worklist is a ring buffer of non-negative ints with a set of already queued items.
type Worklist struct {
	items      []int
	size       int
	head, tail int
	seen       ints.Set
}

func New(items ...int) *Worklist {
	result := &Worklist{
		items: make([]int, minSize+1),
		size:  minSize,
	}
	for _, item := range items {
		result.Push(item)
	}
	return result
}

func (w *Worklist) IsEmpty() bool {
	return w.head == w.tail
}

// Push appends item unless it was pushed before; reports whether it was appended.
func (w *Worklist) Push(item int) bool {
	if !w.seen.Insert(item) {
		return false
	}

	w.items[w.tail] = item
	w.tail = (w.tail + 1) & w.size
	if w.tail == w.head {
		w.grow()
	}
	return true
}

// Pop removes and returns the oldest item.
func (w *Worklist) Pop() (int, bool) {
	if w.head == w.tail {
		return 0, false
	}

	result := w.items[w.head]
	w.head = (w.head + 1) & w.size
	return result, true
}

func (w *Worklist) grow() {
	items := make([]int, (w.size+1)<<1)
	copy(items, w.items[w.head:])
	if w.head > 0 {
		copy(items[w.size+1-w.head:], w.items[0:w.head])
	}
	w.head = 0
	w.tail = w.size + 1
	w.size = w.size + w.tail
	w.items = items
}
