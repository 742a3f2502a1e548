package scheme

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ekw/ruleparse/internal/ints"
)

// Kind is a rule variant.
type Kind int

const (
	// NoKind marks an allocated slot that is not populated yet.
	NoKind Kind = iota
	// AlphabetKind matches a single character from a set.
	AlphabetKind
	// StringKind matches a literal.
	StringKind
	// SequenceKind matches all children one after another.
	SequenceKind
	// OptionListKind matches the first matching child.
	OptionListKind
	// OptionalKind matches its child or nothing.
	OptionalKind
	// RepeatKind matches its child a bounded number of times, greedily.
	RepeatKind
	// ForwardKind is a forward declaration that is not resolved yet.
	ForwardKind
)

var kindNames = [...]string{
	NoKind:         "untyped",
	AlphabetKind:   "alphabet",
	StringKind:     "string",
	SequenceKind:   "sequence",
	OptionListKind: "option list",
	OptionalKind:   "optional",
	RepeatKind:     "repeat",
	ForwardKind:    "forward",
}

// String returns the variant name used in messages.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Unbounded is the maximum number of repetitions of open-ended repeat rules.
const Unbounded = math.MaxInt

// rule is a slot of scheme rule storage. Child rules are referenced by slot index.
type rule struct {
	kind       Kind
	wasForward bool

	// alphabet characters or string literal
	text  string
	chars *ints.Chars

	// sequence and option list children
	children []int

	// optional and repeat child
	child            int
	minReps, maxReps int
}

func (r *rule) childIndexes() []int {
	switch r.kind {
	case SequenceKind, OptionListKind:
		return r.children
	case OptionalKind, RepeatKind:
		return []int{r.child}
	default:
		return nil
	}
}

// Handle refers to a rule stored in a scheme.
// A handle refers to the same slot for the whole scheme lifetime,
// resolving a forward declaration changes slot contents but not the handle.
// Zero value is the null handle. Handles are comparable.
type Handle struct {
	scheme *Scheme
	index  int
}

// IsNull tells whether h is the zero Handle.
func (h Handle) IsNull() bool {
	return h.scheme == nil
}

// Scheme returns the scheme that issued the handle or nil for the null handle.
func (h Handle) Scheme() *Scheme {
	return h.scheme
}

// Index returns rule slot index or -1 for the null handle.
func (h Handle) Index() int {
	if h.scheme == nil {
		return -1
	}
	return h.index
}

func (h Handle) get() *rule {
	if h.scheme == nil || h.scheme.err != nil {
		return nil
	}
	return &h.scheme.rules[h.index]
}

// Kind returns current rule variant, NoKind for the null handle or a poisoned scheme.
func (h Handle) Kind() Kind {
	r := h.get()
	if r == nil {
		return NoKind
	}
	return r.kind
}

// WasForward tells whether the rule was created by Scheme.Forward, resolved or not.
func (h Handle) WasForward() bool {
	r := h.get()
	return r != nil && r.wasForward
}

// ID returns short identifier used by scheme dumps, "NULL" for the null handle
// and empty string when the scheme is poisoned.
func (h Handle) ID() string {
	if h.scheme == nil {
		return "NULL"
	}
	if h.scheme.err != nil {
		return ""
	}
	return h.scheme.id(h.index)
}

// String returns the rule identifier, same as ID.
func (h Handle) String() string {
	return h.ID()
}

func (s *Scheme) id(index int) string {
	width := len(strconv.FormatInt(int64(len(s.rules)), 16))
	return fmt.Sprintf("0x%0*X", width, index)
}
