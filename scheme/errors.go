package scheme

import (
	"github.com/ekw/ruleparse"
)

// Scheme error codes; each of them except FreedError poisons the scheme it was reported by.
const (
	// the scheme has been freed
	FreedError = ruleparse.SchemeErrors + iota
	// method called on nil *Scheme
	NilSchemeError
	// the scheme cannot store one more rule
	AllocationError
	// a required rule handle is null
	NullRuleError
	// a sequence or an option list without child rules
	EmptyListError
	// a rule handle issued by another scheme
	ForeignRuleError
	// repetition bounds are negative or inverted
	InvalidBoundsError
	// resolving something that is not an unresolved forward declaration
	NotForwardError
	// resolving a forward declaration to an unresolved forward declaration
	SelfResolveError
	// negative option value
	InvalidOptionsError
)

// Matching error codes; these never poison the scheme.
const (
	// matching reached a forward declaration that was never resolved
	UnresolvedForwardError = ruleparse.MatchErrors + iota
	// matching nested deeper than Options.MaxMatchDepth
	MatchDepthError
)

func freedError() *ruleparse.Error {
	return ruleparse.FormatError(FreedError, "scheme has been freed")
}

func nilSchemeError() *ruleparse.Error {
	return ruleparse.FormatError(NilSchemeError, "scheme is nil")
}

func allocationError(limit int) *ruleparse.Error {
	return ruleparse.FormatError(AllocationError, "cannot allocate rule: scheme is limited to %d rules", limit)
}

func nullRuleError(what string) *ruleparse.Error {
	return ruleparse.FormatError(NullRuleError, "%s is null", what)
}

func emptyListError(kind Kind) *ruleparse.Error {
	return ruleparse.FormatError(EmptyListError, "%s rule requires at least one child rule", kind)
}

func foreignRuleError(what string) *ruleparse.Error {
	return ruleparse.FormatError(ForeignRuleError, "%s belongs to another scheme", what)
}

func invalidBoundsError(min, max int) *ruleparse.Error {
	return ruleparse.FormatError(InvalidBoundsError, "invalid repetition bounds %d..%d", min, max)
}

func notForwardError(id string, kind Kind) *ruleparse.Error {
	return ruleparse.FormatError(NotForwardError,
		"rule %s is not an unresolved forward declaration (%s), a forward declaration can be resolved only once", id, kind)
}

func selfResolveError(forward, definition string) *ruleparse.Error {
	return ruleparse.FormatError(SelfResolveError,
		"cannot resolve forward declaration %s to unresolved forward declaration %s", forward, definition)
}

func invalidOptionsError(name string, value int) *ruleparse.Error {
	return ruleparse.FormatError(InvalidOptionsError, "invalid %s option value %d", name, value)
}

func unresolvedForwardError(id string) *ruleparse.Error {
	return ruleparse.FormatError(UnresolvedForwardError,
		"rule %s is a forward declaration that has not been resolved, resolve every forward declaration before matching", id)
}

func matchDepthError(limit int) *ruleparse.Error {
	return ruleparse.FormatError(MatchDepthError, "rule nesting exceeds the limit of %d levels", limit)
}
