package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// errNotFound is the fixed cause attached to EnvironmentError when the
// variable is unset.
var errNotFound = errors.New("environment variable not found")

// LookupFunc reports the value of a named configuration variable and whether
// it is set.
type LookupFunc func(key string) (string, bool)

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookup replaces the process-environment lookup. Tests use it to supply
// values without mutating global state, which keeps parallel runs independent.
func WithLookup(lookup LookupFunc) Option {
	return func(r *Resolver) {
		r.lookup = lookup
	}
}

// Resolver reads the settings blob from a key-value source and decodes it.
// Resolve holds no state between calls, so a single Resolver is safe for
// concurrent use.
type Resolver struct {
	lookup LookupFunc
}

// NewResolver creates a Resolver backed by os.LookupEnv unless overridden.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve reads EnvVar from the lookup source and decodes its contents into
// Settings. An unset variable yields an *EnvironmentError; an undecodable
// payload yields a *ParseError. Empty string values pass through unchanged:
// only key presence is validated, never content.
func (r *Resolver) Resolve() (Settings, error) {
	blob, ok := r.lookup(EnvVar)
	if !ok {
		return Settings{}, &EnvironmentError{Err: errNotFound}
	}
	return parseBlob(blob)
}

// parseBlob decodes the raw blob, checking that every required key is present
// before binding values to the typed struct.
func parseBlob(blob string) (Settings, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return Settings{}, &ParseError{Err: err}
	}

	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return Settings{}, &ParseError{Err: fmt.Errorf("missing required key %q", key)}
		}
	}

	var s Settings
	if err := json.Unmarshal([]byte(blob), &s); err != nil {
		return Settings{}, &ParseError{Err: err}
	}
	return s, nil
}
