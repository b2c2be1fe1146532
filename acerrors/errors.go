// Package acerrors collects the sentinel errors surfaced at the edges of
// the automaton and censor: the values the root package's nil guards
// panic with, and the errors cmd/accensor returns for I/O and config
// failures.
package acerrors

import "errors"

var (
	// ErrNilAutomaton is the value the root package's nil guards panic
	// with when a method is invoked through a nil *Automaton pointer.
	ErrNilAutomaton = errors.New("ahocorasick: nil automaton")

	// ErrNilCensor is the Censor analogue of ErrNilAutomaton.
	ErrNilCensor = errors.New("ahocorasick: nil censor")

	// ErrDictionaryUnreadable is returned by cmd/accensor when the
	// pattern dictionary file cannot be read.
	ErrDictionaryUnreadable = errors.New("ahocorasick: dictionary unreadable")

	// ErrInvalidConfig is returned by cmd/accensor when its config file
	// fails to decode or contains an unusable value.
	ErrInvalidConfig = errors.New("ahocorasick: invalid config")
)
