package scheme

import (
	"strings"

	"github.com/ekw/ruleparse"
)

// Result describes a match. Input prefix input[Start : Start+Length] matched if OK is set.
// Length is measured in bytes.
type Result struct {
	OK     bool
	Start  int
	Length int
}

// Text returns matched part of input or empty string if there is no match.
func (r Result) Text(input string) string {
	if !r.OK {
		return ""
	}
	return input[r.Start : r.Start+r.Length]
}

// Match matches the rule against a prefix of input.
// Choice is ordered and repetition is greedy; once a child rule matches,
// its match is never reconsidered.
// An error is returned for the null handle, for a poisoned scheme and when the depth limit is exceeded.
// An unresolved forward declaration fails its own branch only; the first one reached
// is reported as UnresolvedForwardError together with a valid Result.
// The scheme is not changed in any case.
func (h Handle) Match(input string) (Result, error) {
	s := h.scheme
	if s == nil {
		return Result{}, nullRuleError("matched rule")
	}
	if s.err != nil {
		return Result{}, s.err
	}

	m := matcher{scheme: s, input: input, maxDepth: s.opts.MaxMatchDepth, unresolved: -1}
	length, ok, e := m.match(h.index, 0, 0)
	if e != nil {
		return Result{}, e
	}

	res := Result{OK: ok, Length: length}
	if m.unresolved >= 0 {
		id := s.id(m.unresolved)
		if s.opts.Logger != nil {
			s.opts.Logger.Printf("unresolved forward declaration %s reached while matching", id)
		}
		return res, unresolvedForwardError(id)
	}
	return res, nil
}

// MatchAll tells whether the rule matches the whole input.
func (h Handle) MatchAll(input string) (bool, error) {
	res, e := h.Match(input)
	return res.OK && res.Length == len(input), e
}

type matcher struct {
	scheme   *Scheme
	input    string
	maxDepth int

	// first unresolved forward declaration reached, -1 if none
	unresolved int
}

// match matches rule at pos and returns matched length.
func (m *matcher) match(index, pos, depth int) (int, bool, *ruleparse.Error) {
	if m.maxDepth > 0 && depth > m.maxDepth {
		return 0, false, matchDepthError(m.maxDepth)
	}

	r := &m.scheme.rules[index]
	switch r.kind {
	case AlphabetKind:
		size, ok := r.chars.Match(m.input[pos:])
		if ok {
			return size, true, nil
		}
		return 0, false, nil

	case StringKind:
		if strings.HasPrefix(m.input[pos:], r.text) {
			return len(r.text), true, nil
		}
		return 0, false, nil

	case SequenceKind:
		total := 0
		for _, c := range r.children {
			length, ok, e := m.match(c, pos+total, depth+1)
			if e != nil || !ok {
				return 0, false, e
			}
			total += length
		}
		return total, true, nil

	case OptionListKind:
		for _, c := range r.children {
			length, ok, e := m.match(c, pos, depth+1)
			if e != nil || ok {
				return length, ok, e
			}
		}
		return 0, false, nil

	case OptionalKind:
		length, ok, e := m.match(r.child, pos, depth+1)
		if e != nil {
			return 0, false, e
		}
		if !ok {
			return 0, true, nil
		}
		return length, true, nil

	case RepeatKind:
		return m.repeat(r, pos, depth)

	case ForwardKind:
		if m.unresolved < 0 {
			m.unresolved = index
		}
		return 0, false, nil

	default:
		return 0, false, nullRuleError("rule " + m.scheme.id(index) + " contents")
	}
}

func (m *matcher) repeat(r *rule, pos, depth int) (int, bool, *ruleparse.Error) {
	total := 0
	reps := 0
	for reps < r.maxReps {
		length, ok, e := m.match(r.child, pos+total, depth+1)
		if e != nil {
			return 0, false, e
		}
		if !ok {
			break
		}

		if length == 0 {
			// matching is pure, every further repetition would match empty string too
			reps = r.maxReps
			break
		}

		total += length
		reps++
	}

	if reps < r.minReps {
		return 0, false, nil
	}
	return total, true, nil
}
