package isp

import "errors"

// ErrNotImplemented is what a forced stub fails with when invoked.
var ErrNotImplemented = errors.New("isp: not implemented")

/*
   Before: every plan implements every perk
*/

// Membership is the "before" interface: training, class booking, and workout
// streaming bundled into one promise no single plan can keep.
type Membership interface {
	TrainingSessions() int
	BookClass(name string) error
	StreamWorkout(name string) error
}

// StubbedStudio is the in-person plan as the fat interface forces it to be
// written: 10 sessions, booking works, streaming is a stub.
type StubbedStudio struct{}

func (StubbedStudio) TrainingSessions() int { return 10 }

func (StubbedStudio) BookClass(name string) error { return nil }

// StreamWorkout exists only because Membership demands it.
func (StubbedStudio) StreamWorkout(name string) error { return ErrNotImplemented }

// StubbedOnline is the remote plan under the same pressure: 5 sessions,
// streaming works, booking is a stub.
type StubbedOnline struct{}

func (StubbedOnline) TrainingSessions() int { return 5 }

// BookClass exists only because Membership demands it.
func (StubbedOnline) BookClass(name string) error { return ErrNotImplemented }

func (StubbedOnline) StreamWorkout(name string) error { return nil }

/*
   After: one interface per perk
*/

// Trainable is the perk every plan has.
type Trainable interface {
	TrainingSessions() int
}

// ClassBooker books in-person classes.
type ClassBooker interface {
	BookClass(name string) error
}

// WorkoutStreamer streams recorded workouts.
type WorkoutStreamer interface {
	StreamWorkout(name string) error
}

// Studio is the in-person plan with only the methods it can honor:
// 10 sessions and class booking. There is no streaming stub to trip over.
type Studio struct{}

func (Studio) TrainingSessions() int { return 10 }

func (Studio) BookClass(name string) error { return nil }

// Online is the remote plan: 5 sessions and workout streaming, no booking.
type Online struct{}

func (Online) TrainingSessions() int { return 5 }

func (Online) StreamWorkout(name string) error { return nil }

// ScheduleClass books one class through anything that can book classes.
// Callers of this function never see StreamWorkout at all.
func ScheduleClass(b ClassBooker, name string) error {
	return b.BookClass(name)
}

// StartStream starts one workout stream through anything that can stream.
func StartStream(s WorkoutStreamer, name string) error {
	return s.StreamWorkout(name)
}

var (
	_ Membership      = StubbedStudio{}
	_ Membership      = StubbedOnline{}
	_ Trainable       = Studio{}
	_ ClassBooker     = Studio{}
	_ Trainable       = Online{}
	_ WorkoutStreamer = Online{}
)
