package lsp

// Lesson returns the markdown write-up rendered by `solid explain lsp`.
func Lesson() string {
	return lessonText
}

const lessonText = `# Liskov Substitution Principle

> Anywhere a caller accepts the interface, every implementation must behave.

## The smell

The fat interface forces the trial tier to lie:

	type GymMembership interface {
		TrainingSessions() int
		ReserveGymSlot() error
	}

A trial membership has no gym access, so its ` + "`ReserveGymSlot`" + ` is a stub that
fails with ` + "`ErrNotImplemented`" + `. The type checker is satisfied; the caller is
not:

	// fine today, broken the day someone adds a trial
	err := ReserveAll(Standard{}, StubbedTrial{})

` + "`ReserveAll`" + ` was correct for every membership it was written against. The
substitution broke it without a single line of it changing.

## The fix

Split the promise so nobody has to lie:

	type Membership interface { TrainingSessions() int }
	type GymAccess  interface { ReserveGymSlot() error }

` + "`Trial`" + ` implements ` + "`Membership`" + ` only. ` + "`ReserveGymSlots(passes ...GymAccess)`" + `
cannot be handed a trial by accident; the program stops compiling instead of
failing at the front desk.

## What it buys you

- Runtime surprises become compile errors.
- Stubs that exist only to satisfy an interface disappear.
- Each interface documents an honest capability, not an org chart.
`
