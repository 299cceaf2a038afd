package dip

import (
	"errors"
	"strings"
)

// ErrNoName rejects blank member names.
var ErrNoName = errors.New("dip: member name is required")

// ErrNilLogger rejects wiring an EnrollmentService without a Logger.
var ErrNilLogger = errors.New("dip: nil logger")

// Membership is the stored record. Every membership here is the base tier.
type Membership struct {
	Name string
}

// TrainingSessions reports the sessions included with the base tier.
func (Membership) TrainingSessions() int { return 2 }

/*
   Before: injection as decoration
*/

// Registrar is the "before" shape. It asks for a Logger and then ignores it
// on the one path that logs.
//
// LogPath routes the hardwired FileLogger somewhere else; it defaults to
// DefaultErrorLogPath, wherever the process happens to be running.
type Registrar struct {
	LogPath string
	logger  Logger
	members []Membership
}

// NewRegistrar constructs a registrar around the given logger. Passing nil
// goes unnoticed, which says everything about how much Add trusts it.
func NewRegistrar(logger Logger) *Registrar {
	return &Registrar{logger: logger}
}

// Add stores a membership by name. On failure it constructs a FileLogger
// directly instead of using the injected abstraction, so whatever the caller
// wired in, the error line lands on the local filesystem.
func (r *Registrar) Add(name string) error {
	if strings.TrimSpace(name) == "" {
		// The violation, kept on purpose: policy instantiating its detail.
		_ = FileLogger{Path: r.LogPath}.Log("add failed: " + ErrNoName.Error())
		// The fix is one line: _ = r.logger.Log("add failed: " + ErrNoName.Error())
		return ErrNoName
	}
	r.members = append(r.members, Membership{Name: name})
	return nil
}

// Members returns a copy of the stored memberships.
func (r *Registrar) Members() []Membership {
	out := make([]Membership, len(r.members))
	copy(out, r.members)
	return out
}

/*
   After: the dependency actually inverted
*/

// EnrollmentService does the registrar's job through the injected Logger on
// every path. It cannot tell a file from zap from a test spy.
type EnrollmentService struct {
	logger  Logger
	members []Membership
}

// NewEnrollmentService rejects a nil Logger up front so Add never has to
// wonder.
func NewEnrollmentService(logger Logger) (*EnrollmentService, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	return &EnrollmentService{logger: logger}, nil
}

// Add stores a membership by name, reporting failures to the injected
// Logger. A logger that itself fails does not change the outcome of the add.
func (s *EnrollmentService) Add(name string) (Membership, error) {
	if strings.TrimSpace(name) == "" {
		_ = s.logger.Log("add failed: " + ErrNoName.Error())
		return Membership{}, ErrNoName
	}
	m := Membership{Name: name}
	s.members = append(s.members, m)
	return m, nil
}

// Members returns a copy of the stored memberships.
func (s *EnrollmentService) Members() []Membership {
	out := make([]Membership, len(s.members))
	copy(out, s.members)
	return out
}
