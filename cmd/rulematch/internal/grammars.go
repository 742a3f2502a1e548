// Package internal builds sample grammars for rulematch.
package internal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ekw/ruleparse/scheme"
)

const (
	letters   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	hexDigits = digits + "abcdefABCDEF"
)

type grammarFunc func(s *scheme.Scheme) scheme.Handle

var grammars = map[string]grammarFunc{
	"word":   word,
	"code":   code,
	"int":    integer,
	"hex":    hex,
	"bin":    binary,
	"exp":    exponential,
	"number": number,
}

// Names returns sorted grammar names.
func Names() []string {
	result := make([]string, 0, len(grammars))
	for name := range grammars {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Build creates a new scheme containing named grammar and returns the grammar root rule.
func Build(name string) (*scheme.Scheme, scheme.Handle, error) {
	f := grammars[name]
	if f == nil {
		return nil, scheme.Handle{}, fmt.Errorf("unknown grammar %q, expecting one of: %s", name, strings.Join(Names(), ", "))
	}

	s := scheme.New()
	root := f(s)
	if e := s.Err(); e != nil {
		return nil, scheme.Handle{}, e
	}

	unresolved, e := s.UnresolvedFrom(root)
	if e == nil && len(unresolved) > 0 {
		e = fmt.Errorf("grammar %q has unresolved rules: %v", name, unresolved)
	}
	if e != nil {
		s.Free()
		return nil, scheme.Handle{}, e
	}

	return s, root, nil
}

// word: one or more letters, defined recursively.
func word(s *scheme.Scheme) scheme.Handle {
	abc := s.Rule(s.Alphabet(letters))
	w := s.Rule(s.Forward())
	s.Rule(s.Resolve(w, s.Rule(s.OptionList(s.Rule(s.Sequence(abc, w)), abc))))
	return w
}

// code: a letter or digit, then a digit, then a letter, e.g. "A1b" or "71x".
func code(s *scheme.Scheme) scheme.Handle {
	abc := s.Rule(s.Alphabet(letters))
	num := s.Rule(s.Alphabet(digits))
	return s.Rule(s.Sequence(s.Rule(s.OptionList(abc, num)), num, abc))
}

func signedInteger(s *scheme.Scheme) scheme.Handle {
	sign := s.Rule(s.Optional(s.Rule(s.Alphabet("+-"))))
	return s.Rule(s.Sequence(sign, s.Rule(s.Repeat(true, s.Rule(s.Alphabet(digits))))))
}

func integer(s *scheme.Scheme) scheme.Handle {
	return signedInteger(s)
}

func prefixed(s *scheme.Scheme, prefix, chars string) scheme.Handle {
	p := s.Rule(s.OptionList(s.Rule(s.String(prefix)), s.Rule(s.String(strings.ToUpper(prefix)))))
	return s.Rule(s.Sequence(p, s.Rule(s.Repeat(true, s.Rule(s.Alphabet(chars))))))
}

func hex(s *scheme.Scheme) scheme.Handle {
	return prefixed(s, "0x", hexDigits)
}

func binary(s *scheme.Scheme) scheme.Handle {
	return prefixed(s, "0b", "01")
}

// exponential: signed integer with optional fraction and optional exponent, e.g. "-1.5e+10".
func exponential(s *scheme.Scheme) scheme.Handle {
	ds := s.Rule(s.Repeat(true, s.Rule(s.Alphabet(digits))))
	fraction := s.Rule(s.Optional(s.Rule(s.Sequence(s.Rule(s.String(".")), ds))))
	exponent := s.Rule(s.Optional(s.Rule(s.Sequence(s.Rule(s.Alphabet("eE")), signedInteger(s)))))
	return s.Rule(s.Sequence(signedInteger(s), fraction, exponent))
}

// number: prefixed forms go first, otherwise "0" of "0x1f" would be taken for a decimal number.
func number(s *scheme.Scheme) scheme.Handle {
	return s.Rule(s.OptionList(hex(s), binary(s), exponential(s)))
}
