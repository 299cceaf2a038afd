package inject

import (
	"errors"
	"strconv"
)

var (
	// ErrNilTarget is returned when a Step is applied to a nil *Wired
	// or a *Wired holding a nil Value.
	ErrNilTarget = errors.New("inject: nil target")

	// ErrNilDep matches (via errors.Is) the typed NilDependencyError
	// returned when a Bind is given a nil dependency.
	ErrNilDep = errors.New("inject: nil dependency")

	// ErrNilAttach matches (via errors.Is) the typed NilAttachError
	// returned when a Bind is given a nil attach function.
	ErrNilAttach = errors.New("inject: nil attach function")
)

// Key identifies a dependency recorded in a Wired value's dep bag.
//
// Keys are typically package-level constants to avoid typos:
//
//	const (
//	  KeyConfig inject.Key = "config"
//	  KeyLogger inject.Key = "logger"
//	)
type Key string

// DuplicateKeyError is returned when a Bind tries to record a dependency
// under a key that is already present on the target.
type DuplicateKeyError struct{ Key Key }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	// Example: inject: duplicate key "logger"
	return "inject: duplicate key " + strconv.Quote(string(e.Key))
}

// MissingDependencyError is returned when a requested key is not present.
//
// TryDepAs uses it to distinguish "missing" from "wrong type".
type MissingDependencyError struct{ Key Key }

// Error implements the error interface.
func (e MissingDependencyError) Error() string {
	// Example: inject: dependency "logger" missing
	return "inject: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned when a key is present but the stored
// value is not the requested *D.
type WrongTypeDependencyError struct {
	// Key is the dependency key requested.
	Key Key

	// GotType is reflect.TypeOf(raw).String() for the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeDependencyError) Error() string {
	// Example: inject: dependency "logger" has wrong type (*config.Config)
	return "inject: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}

// NilDependencyError indicates a nil dependency for a specific key.
type NilDependencyError struct{ Key Key }

// Error implements the error interface.
func (e NilDependencyError) Error() string {
	// Example: inject: nil dependency for key "logger"
	return "inject: nil dependency for key " + strconv.Quote(string(e.Key))
}

// Is lets errors.Is(err, ErrNilDep) match the typed error.
func (e NilDependencyError) Is(target error) bool { return target == ErrNilDep }

// NilAttachError indicates a nil attach function for a specific key.
type NilAttachError struct{ Key Key }

// Error implements the error interface.
func (e NilAttachError) Error() string {
	// Example: inject: nil attach function for key "logger"
	return "inject: nil attach function for key " + strconv.Quote(string(e.Key))
}

// Is lets errors.Is(err, ErrNilAttach) match the typed error.
func (e NilAttachError) Is(target error) bool { return target == ErrNilAttach }
