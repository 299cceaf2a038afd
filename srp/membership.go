package srp

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNoName rejects blank member names.
var ErrNoName = errors.New("srp: member name is required")

// Member is one enrolled person.
type Member struct {
	ID   string
	Name string
}

/*
   Before: everything in one method
*/

// TangledMembership is the "before" shape: Add validates, stores, and writes
// the error log, all in one place.
//
// LogPath defaults to DefaultErrorLogPath when left empty.
type TangledMembership struct {
	LogPath string
	members []Member
}

// Add stores a member by name. On a blank name it also opens the log file and
// appends the failure line itself, which is exactly the smell this package is
// about.
func (m *TangledMembership) Add(name string) error {
	if strings.TrimSpace(name) == "" {
		path := m.LogPath
		if path == "" {
			path = DefaultErrorLogPath
		}
		f, ferr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if ferr == nil {
			_, _ = fmt.Fprintf(f, "%s add failed: %v\n", time.Now().UTC().Format(time.RFC3339), ErrNoName)
			_ = f.Close()
		}
		return ErrNoName
	}
	m.members = append(m.members, Member{ID: uuid.New().String(), Name: name})
	return nil
}

/*
   After: one job per type
*/

// Membership stores members. Nothing else.
type Membership struct {
	members []Member
}

// Add validates the name and stores the member. Logging is somebody else's
// job now; the caller decides what to do with the returned error.
func (m *Membership) Add(name string) (Member, error) {
	if strings.TrimSpace(name) == "" {
		return Member{}, ErrNoName
	}
	mem := Member{ID: uuid.New().String(), Name: name}
	m.members = append(m.members, mem)
	return mem, nil
}

// TrainingSessions reports the sessions included with a base membership.
func (m *Membership) TrainingSessions() int { return 2 }

// Members returns a copy of the stored members.
func (m *Membership) Members() []Member {
	out := make([]Member, len(m.members))
	copy(out, m.members)
	return out
}
