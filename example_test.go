package ruleparse_test

import (
	"errors"
	"fmt"

	"github.com/ekw/ruleparse"
	"github.com/ekw/ruleparse/scheme"
)

func Example() {
	s := scheme.New()
	defer s.Free()

	name, _ := s.Repeat(true, s.Rule(s.Alphabet("abcdefghijklmnopqrstuvwxyz")))
	space, _ := s.Repeat(false, s.Rule(s.String(" ")))
	sep, _ := s.Sequence(space, s.Rule(s.String("=")), space)
	value, _ := s.Repeat(false, s.Rule(s.Alphabet("abcdefghijklmnopqrstuvwxyz0123456789")))
	assignment, e := s.Sequence(name, sep, value)
	if e != nil {
		fmt.Println(e)
		return
	}

	for _, input := range []string{"foo = bar", "foo=", "foo bar", "= bar"} {
		ok, e := assignment.MatchAll(input)
		fmt.Printf("%q: %v %v\n", input, ok, e)
	}

	_, e = s.Optional(scheme.Handle{})
	var re *ruleparse.Error
	if errors.As(e, &re) {
		fmt.Println(re.Class() == ruleparse.SchemeErrors, re.Code == scheme.NullRuleError, re)
	}

	_, e = assignment.Match("foo = bar")
	fmt.Println(e)
	// Output:
	// "foo = bar": true <nil>
	// "foo=": true <nil>
	// "foo bar": false <nil>
	// "= bar": false <nil>
	// true true child of optional rule is null
	// child of optional rule is null
}
