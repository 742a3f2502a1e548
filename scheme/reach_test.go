package scheme

import (
	"testing"

	. "github.com/ekw/ruleparse/internal/test"
)

func TestUnresolvedFrom(t *testing.T) {
	must := builder(t)
	s := New()
	a := must(s.Alphabet("a"))
	f1 := must(s.Forward())
	f2 := must(s.Forward())
	root := must(s.Sequence(a, must(s.Optional(f1)), must(s.OptionList(f2, a))))

	hs, e := s.UnresolvedFrom(root)
	ExpectNoError(t, e)
	ExpectInt(t, 2, len(hs))
	Assert(t, hs[0] == f1 && hs[1] == f2, "expecting [%s %s], got %v", f1, f2, hs)

	must(s.Resolve(f1, root))
	hs, e = s.UnresolvedFrom(root)
	ExpectNoError(t, e)
	ExpectInt(t, 1, len(hs))
	Assert(t, hs[0] == f2, "expecting %s, got %s", f2, hs[0])

	hs, e = s.UnresolvedFrom(a)
	ExpectNoError(t, e)
	ExpectInt(t, 0, len(hs))

	must(s.Resolve(f2, must(s.Repeat(false, f1))))
	hs, e = s.UnresolvedFrom(root)
	ExpectNoError(t, e)
	ExpectInt(t, 0, len(hs))
}

func TestUnresolvedFromErrors(t *testing.T) {
	s := New()
	_, e := s.UnresolvedFrom(Handle{})
	ExpectErrorCode(t, NullRuleError, e)
	ExpectNoError(t, s.Err())

	s.Free()
	_, e = s.UnresolvedFrom(Handle{})
	ExpectErrorCode(t, FreedError, e)
}
