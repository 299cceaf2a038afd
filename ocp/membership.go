package ocp

import "errors"

// ErrUnknownMembership reports a kind SessionsByKind has no case for.
var ErrUnknownMembership = errors.New("ocp: unknown membership kind")

/*
   Before: one switch owns every tier
*/

// SessionsByKind is the "before" shape. Adding a tier means editing this
// switch and re-testing everything that calls it.
func SessionsByKind(kind string) (int, error) {
	switch kind {
	case "standard":
		return 2, nil
	case "pro":
		return 10, nil
	case "premium":
		return 20, nil
	default:
		return 0, ErrUnknownMembership
	}
}

/*
   After: closed for modification, open for extension
*/

// Membership is the extension point. New tiers implement it; nothing in this
// package changes.
type Membership interface {
	TrainingSessions() int
}

// Standard is the base tier: 2 sessions.
type Standard struct{}

func (Standard) TrainingSessions() int { return 2 }

// Pro includes 10 sessions.
type Pro struct{}

func (Pro) TrainingSessions() int { return 10 }

// Premium includes 20 sessions.
type Premium struct{}

func (Premium) TrainingSessions() int { return 20 }

// TotalSessions sums the included sessions across any mix of tiers,
// current or future.
func TotalSessions(ms ...Membership) int {
	total := 0
	for _, m := range ms {
		total += m.TrainingSessions()
	}
	return total
}
