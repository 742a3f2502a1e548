package scheme

import (
	"github.com/ekw/ruleparse/internal/queue"
)

// UnresolvedFrom returns unresolved forward declarations reachable from h, in breadth-first order.
// Matching h never reports UnresolvedForwardError if the result is empty.
func (s *Scheme) UnresolvedFrom(h Handle) ([]Handle, error) {
	if e := s.check(); e != nil {
		return nil, e
	}
	if e := s.checkHandle(h, "inspected rule"); e != nil {
		return nil, e
	}

	var result []Handle
	w := queue.New(h.index)
	for !w.IsEmpty() {
		i, _ := w.Pop()
		r := &s.rules[i]
		if r.kind == ForwardKind {
			result = append(result, Handle{s, i})
			continue
		}

		for _, c := range r.childIndexes() {
			w.Push(c)
		}
	}
	return result, nil
}
