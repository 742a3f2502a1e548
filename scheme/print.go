package scheme

import (
	"fmt"
	"io"
	"strings"

	"github.com/ekw/ruleparse/internal/ints"
)

type printer struct {
	w        io.Writer
	s        *Scheme
	indent   string
	maxDepth int
	expanded ints.Set
	err      error
}

func (p *printer) printf(format string, params ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, params...)
	}
}

// Print writes scheme summary and a line for each rule slot.
func (s *Scheme) Print(w io.Writer) error {
	p := &printer{w: w, s: s}
	if e := s.check(); e != nil {
		p.printf("Scheme has error: %s\n", e.Message)
		return p.err
	}

	p.printf("Scheme has %d/%d rule slots filled.\n", len(s.rules), cap(s.rules))
	if s.unresolved > 0 {
		p.printf("Scheme has %d unresolved forward-declared rules.\n", s.unresolved)
	}
	for i := range s.rules {
		p.printRule(i, 0)
	}
	return p.err
}

// PrintRule writes rule h and its descendants up to maxDepth levels deep,
// each level is indented with one more indent string.
// A rule is expanded at most once per call, further references show just its line.
func (s *Scheme) PrintRule(w io.Writer, h Handle, maxDepth int, indent string) error {
	p := &printer{w: w, s: s, indent: indent, maxDepth: maxDepth}
	if e := s.check(); e != nil {
		p.printf("Scheme has error: %s\n", e.Message)
		return p.err
	}
	if e := s.checkHandle(h, "printed rule"); e != nil {
		return e
	}

	p.printRule(h.index, 0)
	return p.err
}

func (p *printer) printRule(index, depth int) {
	r := &p.s.rules[index]
	p.printf("%s%s: ", strings.Repeat(p.indent, depth), p.s.id(index))
	if r.wasForward {
		p.printf("(forward) ")
	}

	switch r.kind {
	case AlphabetKind:
		p.printf("Alphabet(%q)", r.text)
	case StringKind:
		p.printf("String(%q)", r.text)
	case SequenceKind:
		p.printf("Sequence(%s)", p.ids(r.children))
	case OptionListKind:
		p.printf("OptionList(%s)", p.ids(r.children))
	case OptionalKind:
		p.printf("Optional(%s)", p.s.id(r.child))
	case RepeatKind:
		max := "*"
		if r.maxReps != Unbounded {
			max = fmt.Sprint(r.maxReps)
		}
		p.printf("Repeat(%d..%s, %s)", r.minReps, max, p.s.id(r.child))
	case ForwardKind:
		p.printf("Unresolved Forward Declaration")
	default:
		p.printf("Unknown Rule Type")
	}
	p.printf("\n")

	if depth >= p.maxDepth || !p.expanded.Insert(index) {
		return
	}

	for _, c := range r.childIndexes() {
		p.printRule(c, depth+1)
	}
}

func (p *printer) ids(indexes []int) string {
	ids := make([]string, len(indexes))
	for i, index := range indexes {
		ids[i] = p.s.id(index)
	}
	return strings.Join(ids, ", ")
}
