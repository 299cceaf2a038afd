package lsp

import "errors"

// ErrNotImplemented is what a forced stub fails with when invoked.
var ErrNotImplemented = errors.New("lsp: not implemented")

/*
   Before: one fat promise for every tier
*/

// GymMembership is the "before" interface: every tier must promise gym
// reservations, whether or not it has gym access.
type GymMembership interface {
	TrainingSessions() int
	ReserveGymSlot() error
}

// Standard has full gym access: 2 sessions, reservations work.
type Standard struct{}

func (Standard) TrainingSessions() int { return 2 }

func (Standard) ReserveGymSlot() error { return nil }

// StubbedTrial is the trial tier as GymMembership forces it to be written:
// 5 sessions and a reservation method it cannot honor.
type StubbedTrial struct{}

func (StubbedTrial) TrainingSessions() int { return 5 }

// ReserveGymSlot exists only because GymMembership demands it.
func (StubbedTrial) ReserveGymSlot() error { return ErrNotImplemented }

// ReserveAll reserves one slot per membership. It compiles happily with a
// StubbedTrial in the list and falls over at runtime, which is the point.
func ReserveAll(ms ...GymMembership) error {
	for _, m := range ms {
		if err := m.ReserveGymSlot(); err != nil {
			return err
		}
	}
	return nil
}

/*
   After: promise only what every tier can keep
*/

// Membership is the promise every tier can keep.
type Membership interface {
	TrainingSessions() int
}

// GymAccess is the promise only reserving tiers make.
type GymAccess interface {
	ReserveGymSlot() error
}

// Trial is the trial tier as it should be: 5 sessions and no reservation
// method at all.
type Trial struct{}

func (Trial) TrainingSessions() int { return 5 }

// ReserveGymSlots reserves one slot per pass. Only tiers with gym access fit
// the parameter, so the substitution ReserveAll discovered at runtime cannot
// be written here.
func ReserveGymSlots(passes ...GymAccess) error {
	for _, p := range passes {
		if err := p.ReserveGymSlot(); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ GymMembership = Standard{}
	_ GymMembership = StubbedTrial{}
	_ Membership    = Trial{}
	_ GymAccess     = Standard{}
)
