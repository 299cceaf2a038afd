package isp

// Lesson returns the markdown write-up rendered by `solid explain isp`.
func Lesson() string {
	return lessonText
}

const lessonText = `# Interface Segregation Principle

> No client should be forced to depend on methods it does not use.

## The smell

One interface bundles every perk a membership might have:

	type Membership interface {
		TrainingSessions() int
		BookClass(name string) error
		StreamWorkout(name string) error
	}

No plan offers all three, so every implementation carries a stub:

	// StubbedStudio cannot stream
	func (StubbedStudio) StreamWorkout(name string) error { return ErrNotImplemented }

	// StubbedOnline cannot book
	func (StubbedOnline) BookClass(name string) error { return ErrNotImplemented }

Every caller of ` + "`Membership`" + ` now has to know which methods are real for which
plan. The interface stopped being a contract and became a questionnaire.

## The fix

One interface per perk:

	type Trainable       interface { TrainingSessions() int }
	type ClassBooker     interface { BookClass(name string) error }
	type WorkoutStreamer interface { StreamWorkout(name string) error }

` + "`Studio`" + ` implements ` + "`Trainable`" + ` and ` + "`ClassBooker`" + `; ` + "`Online`" + ` implements
` + "`Trainable`" + ` and ` + "`WorkoutStreamer`" + `. Consumers ask for exactly what they use:

	func ScheduleClass(b ClassBooker, name string) error { return b.BookClass(name) }

## What it buys you

- Stubs disappear; a plan that cannot stream has no StreamWorkout to fail.
- Passing the wrong plan to a consumer is a compile error, not a runtime one.
- Small interfaces are the idiomatic ones here: accept interfaces, return
  structs, and keep the interface as narrow as its caller.
`
