package scheme

import (
	"fmt"

	"github.com/ekw/ruleparse"
	"github.com/ekw/ruleparse/internal/ints"
)

// fail poisons the scheme with e.
func (s *Scheme) fail(e *ruleparse.Error) (Handle, error) {
	s.poison(e)
	return Handle{}, e
}

// add allocates a slot, populates it, and only then sets its kind.
func (s *Scheme) add(kind Kind, fill func(r *rule)) (Handle, error) {
	i, e := s.allocate()
	if e != nil {
		return Handle{}, e
	}

	r := &s.rules[i]
	fill(r)
	r.kind = kind
	return Handle{s, i}, nil
}

func (s *Scheme) checkHandle(h Handle, what string) *ruleparse.Error {
	if h.IsNull() {
		return nullRuleError(what)
	}
	if h.scheme != s {
		return foreignRuleError(what)
	}
	return nil
}

// Alphabet creates a rule matching any single character of chars.
// An empty alphabet never matches.
func (s *Scheme) Alphabet(chars string) (Handle, error) {
	if e := s.check(); e != nil {
		return Handle{}, e
	}

	return s.add(AlphabetKind, func(r *rule) {
		r.text = chars
		r.chars = ints.FromChars(chars)
	})
}

// String creates a rule matching literal exactly.
func (s *Scheme) String(literal string) (Handle, error) {
	if e := s.check(); e != nil {
		return Handle{}, e
	}

	return s.add(StringKind, func(r *rule) {
		r.text = literal
	})
}

// Sequence creates a rule matching all children one after another.
func (s *Scheme) Sequence(children ...Handle) (Handle, error) {
	return s.list(SequenceKind, children)
}

// OptionList creates a rule matching the first child that matches.
func (s *Scheme) OptionList(children ...Handle) (Handle, error) {
	return s.list(OptionListKind, children)
}

func (s *Scheme) list(kind Kind, children []Handle) (Handle, error) {
	if e := s.check(); e != nil {
		return Handle{}, e
	}

	if len(children) == 0 {
		return s.fail(emptyListError(kind))
	}

	indexes := make([]int, len(children))
	for i, c := range children {
		if e := s.checkHandle(c, fmt.Sprintf("child #%d of %s rule", i, kind)); e != nil {
			return s.fail(e)
		}

		indexes[i] = c.index
	}

	return s.add(kind, func(r *rule) {
		r.children = indexes
	})
}

// Optional creates a rule matching child or, if child does not match, an empty string.
func (s *Scheme) Optional(child Handle) (Handle, error) {
	if e := s.check(); e != nil {
		return Handle{}, e
	}

	if e := s.checkHandle(child, "child of optional rule"); e != nil {
		return s.fail(e)
	}

	return s.add(OptionalKind, func(r *rule) {
		r.child = child.index
	})
}

// Repeat creates an unbounded repeat rule, required means at least one repetition.
func (s *Scheme) Repeat(required bool, child Handle) (Handle, error) {
	min := 0
	if required {
		min = 1
	}
	return s.RepeatBounds(min, Unbounded, child)
}

// RepeatBounds creates a rule matching child greedily from min to max times.
func (s *Scheme) RepeatBounds(min, max int, child Handle) (Handle, error) {
	if e := s.check(); e != nil {
		return Handle{}, e
	}

	if min < 0 || max < min {
		return s.fail(invalidBoundsError(min, max))
	}
	if e := s.checkHandle(child, "child of repeat rule"); e != nil {
		return s.fail(e)
	}

	return s.add(RepeatKind, func(r *rule) {
		r.child = child.index
		r.minReps = min
		r.maxReps = max
	})
}

// Forward declares a rule that will be defined later with Resolve.
// The handle can be used as a child right away.
func (s *Scheme) Forward() (Handle, error) {
	if e := s.check(); e != nil {
		return Handle{}, e
	}

	h, e := s.add(ForwardKind, func(r *rule) {
		r.wasForward = true
	})
	if e == nil {
		s.unresolved++
	}
	return h, e
}

// Resolve copies definition rule into forward declaration slot and returns definition.
// Rules holding forward as a child match as if they held definition.
// The forward handle keeps reporting WasForward.
func (s *Scheme) Resolve(forward, definition Handle) (Handle, error) {
	if e := s.check(); e != nil {
		return Handle{}, e
	}

	if e := s.checkHandle(forward, "forward rule"); e != nil {
		return s.fail(e)
	}

	fr := &s.rules[forward.index]
	if fr.kind != ForwardKind {
		return s.fail(notForwardError(s.id(forward.index), fr.kind))
	}

	if e := s.checkHandle(definition, "forward rule definition"); e != nil {
		return s.fail(e)
	}

	def := s.rules[definition.index]
	if def.kind == ForwardKind {
		return s.fail(selfResolveError(s.id(forward.index), s.id(definition.index)))
	}

	if def.children != nil {
		def.children = append([]int(nil), def.children...)
	}
	def.wasForward = true
	*fr = def
	s.unresolved--
	return definition, nil
}

// Rule returns h and drops e, allowing builder calls to be nested:
//
//	s.Sequence(s.Rule(s.String("0x")), s.Rule(s.Alphabet("0123456789abcdef")))
//
// A failed builder poisons the scheme, so the error is not lost: any later call
// on the scheme returns it.
func (s *Scheme) Rule(h Handle, e error) Handle {
	return h
}
