package scheme

import (
	"errors"
	"strings"
	"testing"

	. "github.com/ekw/ruleparse/internal/test"
)

func integerScheme(t *testing.T, resolve bool) (*Scheme, Handle) {
	must := builder(t)
	s := New()
	digit := must(s.Alphabet("01"))
	intLit := must(s.Forward())
	def := must(s.OptionList(must(s.Sequence(digit, intLit)), digit))
	if resolve {
		must(s.Resolve(intLit, def))
	}
	return s, intLit
}

func TestPrintScheme(t *testing.T) {
	s, _ := integerScheme(t, false)
	var b strings.Builder
	ExpectNoError(t, s.Print(&b))
	ExpectString(t, `Scheme has 4/100 rule slots filled.
Scheme has 1 unresolved forward-declared rules.
0x0: Alphabet("01")
0x1: (forward) Unresolved Forward Declaration
0x2: Sequence(0x0, 0x1)
0x3: OptionList(0x2, 0x0)
`, b.String())

	s, _ = integerScheme(t, true)
	b.Reset()
	ExpectNoError(t, s.Print(&b))
	ExpectString(t, `Scheme has 4/100 rule slots filled.
0x0: Alphabet("01")
0x1: (forward) OptionList(0x2, 0x0)
0x2: Sequence(0x0, 0x1)
0x3: OptionList(0x2, 0x0)
`, b.String())
}

func TestPrintRuleDeep(t *testing.T) {
	s, intLit := integerScheme(t, true)
	var b strings.Builder
	ExpectNoError(t, s.PrintRule(&b, intLit, 5, "  "))
	ExpectString(t, `0x1: (forward) OptionList(0x2, 0x0)
  0x2: Sequence(0x0, 0x1)
    0x0: Alphabet("01")
    0x1: (forward) OptionList(0x2, 0x0)
  0x0: Alphabet("01")
`, b.String())

	b.Reset()
	ExpectNoError(t, s.PrintRule(&b, intLit, 1, "--"))
	ExpectString(t, `0x1: (forward) OptionList(0x2, 0x0)
--0x2: Sequence(0x0, 0x1)
--0x0: Alphabet("01")
`, b.String())
}

func TestPrintVariants(t *testing.T) {
	must := builder(t)
	s := New()
	q := must(s.String(`say "hi"`))
	must(s.Optional(q))
	must(s.Repeat(true, q))
	must(s.RepeatBounds(2, 4, q))
	for i := 0; i < 12; i++ {
		must(s.Alphabet("x"))
	}

	var b strings.Builder
	ExpectNoError(t, s.Print(&b))
	lines := strings.Split(b.String(), "\n")
	ExpectString(t, `0x00: String("say \"hi\"")`, lines[1])
	ExpectString(t, `0x01: Optional(0x00)`, lines[2])
	ExpectString(t, `0x02: Repeat(1..*, 0x00)`, lines[3])
	ExpectString(t, `0x03: Repeat(2..4, 0x00)`, lines[4])
	ExpectString(t, `0x0F: Alphabet("x")`, lines[16])
}

func TestPrintPoisoned(t *testing.T) {
	s := New()
	a, _ := s.Alphabet("a")
	s.Sequence()

	var b strings.Builder
	ExpectNoError(t, s.Print(&b))
	ExpectString(t, "Scheme has error: sequence rule requires at least one child rule\n", b.String())

	b.Reset()
	ExpectNoError(t, s.PrintRule(&b, a, 3, " "))
	Assert(t, strings.HasPrefix(b.String(), "Scheme has error: "), "unexpected output %q", b.String())
}

func TestPrintRuleErrors(t *testing.T) {
	s, _ := integerScheme(t, true)
	var b strings.Builder
	ExpectErrorCode(t, NullRuleError, s.PrintRule(&b, Handle{}, 1, " "))

	other, _ := integerScheme(t, true)
	a, _ := other.Alphabet("a")
	ExpectErrorCode(t, ForeignRuleError, s.PrintRule(&b, a, 1, " "))
	ExpectNoError(t, s.Err())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestPrintWriteError(t *testing.T) {
	s, _ := integerScheme(t, true)
	e := s.Print(failingWriter{})
	Assert(t, e == errWrite, "expecting write error, got %v", e)
}
