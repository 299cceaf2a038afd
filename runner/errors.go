package runner

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBlankName rejects registering a demo without a name.
var ErrBlankName = errors.New("runner: demo name is required")

// ErrNilRun rejects registering a demo without a Run function.
var ErrNilRun = errors.New("runner: demo run function is required")

// ErrDemoPanic marks demos that panicked while running. Match it with
// errors.Is; the concrete value is always a PanicError.
var ErrDemoPanic = errors.New("runner: demo panicked")

// DuplicateDemoError reports a name that is already in the catalog.
type DuplicateDemoError struct {
	Name string
}

func (e DuplicateDemoError) Error() string {
	// sample output: runner: demo "srp" already registered
	return "runner: demo " + strconv.Quote(e.Name) + " already registered"
}

// UnknownDemoError reports a name the catalog has never seen.
type UnknownDemoError struct {
	Name string
}

func (e UnknownDemoError) Error() string {
	// sample output: runner: unknown demo "srp2"
	return "runner: unknown demo " + strconv.Quote(e.Name)
}

// PanicError carries what a demo panicked with.
type PanicError struct {
	Name  string
	Value any
}

func (e PanicError) Error() string {
	// sample output: runner: demo "srp" panicked: boom
	return fmt.Sprintf("runner: demo %q panicked: %v", e.Name, e.Value)
}

// Is lets errors.Is(err, ErrDemoPanic) succeed for PanicError values.
func (e PanicError) Is(target error) bool { return target == ErrDemoPanic }
