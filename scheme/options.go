package scheme

import (
	"github.com/ekw/ruleparse"
)

// DefaultInitialCapacity is the number of rule slots a new scheme reserves.
const DefaultInitialCapacity = 100

// Logger receives diagnostics, *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// Options configures a scheme. Zero value is valid and means defaults.
type Options struct {
	// InitialCapacity is the number of preallocated rule slots, 0 means DefaultInitialCapacity.
	InitialCapacity int

	// MaxRules limits the number of rules, 0 means no limit.
	// Exceeding the limit is an allocation failure and poisons the scheme.
	MaxRules int

	// MaxMatchDepth limits rule nesting during matching, 0 means no limit.
	MaxMatchDepth int

	// Logger receives a line for each poisoning event and for each match
	// that reaches an unresolved forward declaration, nil disables logging.
	Logger Logger
}

// DefaultOptions returns options used by New.
func DefaultOptions() Options {
	return Options{InitialCapacity: DefaultInitialCapacity}
}

// Validate reports an InvalidOptionsError for negative values.
func (o Options) Validate() error {
	if e := o.validate(); e != nil {
		return e
	}
	return nil
}

func (o Options) validate() *ruleparse.Error {
	values := []struct {
		name  string
		value int
	}{
		{"InitialCapacity", o.InitialCapacity},
		{"MaxRules", o.MaxRules},
		{"MaxMatchDepth", o.MaxMatchDepth},
	}
	for _, v := range values {
		if v.value < 0 {
			return invalidOptionsError(v.name, v.value)
		}
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.InitialCapacity == 0 {
		o.InitialCapacity = DefaultInitialCapacity
	}
	if o.MaxRules > 0 && o.InitialCapacity > o.MaxRules {
		o.InitialCapacity = o.MaxRules
	}
	return o
}
