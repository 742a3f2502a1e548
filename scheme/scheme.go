/*
Package scheme defines rule schemes: containers owning all rules of a grammar.

Rules are built by Scheme methods and referenced by handles. A rule may use any previously built
rule as a child; a rule that must refer to itself or to a rule not built yet is first declared
with Forward and later resolved with Resolve. Resolution overwrites the forward declaration slot,
so every rule already holding its handle sees the definition.

Any construction error poisons the scheme: its rules are discarded, and every subsequent call
on the scheme or on any handle it issued returns the same error. Callers need to check
the error of each builder call only if they want to stop early; the error of the last call is
enough to tell whether the whole grammar is valid.

A scheme is not safe for concurrent use.
*/
package scheme

import (
	"github.com/ekw/ruleparse"
)

// Scheme owns rule storage for one grammar.
type Scheme struct {
	rules      []rule
	unresolved int
	err        *ruleparse.Error
	opts       Options
}

// New creates an empty scheme with default options.
func New() *Scheme {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates an empty scheme.
// The scheme is created poisoned with InvalidOptionsError if opts are not valid.
func NewWithOptions(opts Options) *Scheme {
	s := &Scheme{opts: opts.withDefaults()}
	if e := opts.validate(); e != nil {
		s.poison(e)
		return s
	}

	s.rules = make([]rule, 0, s.opts.InitialCapacity)
	return s
}

// Free discards all rules. The scheme stays poisoned afterwards.
func (s *Scheme) Free() {
	if s == nil {
		return
	}

	s.rules = nil
	s.unresolved = 0
	if s.err == nil {
		s.err = freedError()
	}
}

// Err returns nil for a usable scheme or the error that poisoned it.
func (s *Scheme) Err() error {
	if e := s.check(); e != nil {
		return e
	}
	return nil
}

// IsPoisoned tells whether the scheme is freed, nil or failed.
func (s *Scheme) IsPoisoned() bool {
	return s.check() != nil
}

// Len returns the number of rule slots in use.
func (s *Scheme) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Cap returns the number of rule slots reserved.
func (s *Scheme) Cap() int {
	if s == nil {
		return 0
	}
	return cap(s.rules)
}

// Unresolved returns the number of forward declarations not resolved yet.
func (s *Scheme) Unresolved() int {
	if s == nil {
		return 0
	}
	return s.unresolved
}

// Options returns effective scheme options.
func (s *Scheme) Options() Options {
	if s == nil {
		return DefaultOptions()
	}
	return s.opts
}

func (s *Scheme) check() *ruleparse.Error {
	if s == nil {
		return nilSchemeError()
	}
	return s.err
}

// poison discards the storage and makes e the permanent scheme state.
func (s *Scheme) poison(e *ruleparse.Error) {
	s.rules = nil
	s.unresolved = 0
	s.err = e
	if s.opts.Logger != nil {
		s.opts.Logger.Printf("rule scheme poisoned: %s", e.Message)
	}
}

// allocate reserves an untyped slot. Storage grows geometrically,
// existing handles stay valid since they hold slot indexes.
func (s *Scheme) allocate() (int, *ruleparse.Error) {
	if e := s.check(); e != nil {
		return -1, e
	}

	if s.opts.MaxRules > 0 && len(s.rules) >= s.opts.MaxRules {
		e := allocationError(s.opts.MaxRules)
		s.poison(e)
		return -1, e
	}

	s.rules = append(s.rules, rule{})
	return len(s.rules) - 1, nil
}
