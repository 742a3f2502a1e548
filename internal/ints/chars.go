package ints

import "unicode/utf8"

// Chars is an alphabet character set.
// Valid UTF-8 sequences are stored as runes, bytes that do not start a valid sequence
// are stored apart, so an invalid byte never matches U+FFFD or another invalid byte.
type Chars struct {
	runes Set
	bytes Set
}

// decode returns the first character of s: a rune key or, for an invalid byte, the byte itself.
func decode(s string) (key, size int, invalid bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return int(s[0]), 1, true
	}
	return int(r), size, false
}

// FromChars creates a set containing every character of s.
func FromChars(s string) *Chars {
	result := &Chars{}
	for len(s) > 0 {
		key, size, invalid := decode(s)
		if invalid {
			result.bytes.Add(key)
		} else {
			result.runes.Add(key)
		}
		s = s[size:]
	}
	return result
}

// Match reports whether the first character of s is in the set and returns its length in bytes.
func (c *Chars) Match(s string) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}

	key, size, invalid := decode(s)
	if invalid {
		return size, c.bytes.Contains(key)
	}
	return size, c.runes.Contains(key)
}
