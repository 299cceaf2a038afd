package ocp

// Lesson returns the markdown write-up rendered by `solid explain ocp`.
func Lesson() string {
	return lessonText
}

const lessonText = `# Open/Closed Principle

> Open for extension, closed for modification.

## The smell

` + "`SessionsByKind`" + ` is a switch that owns every membership tier:

	switch kind {
	case "standard": return 2, nil
	case "pro":      return 10, nil
	case "premium":  return 20, nil
	default:         return 0, ErrUnknownMembership
	}

Every new tier is an edit to this function. The cases pile up, the tests for
old tiers re-run for every addition, and any caller switching on the same
kinds has to be found and edited too.

## The fix

Make the tier the extension point:

	type Membership interface {
		TrainingSessions() int
	}

Adding a student tier is now a new type in new code:

	type Student struct{}

	func (Student) TrainingSessions() int { return 1 }

` + "`TotalSessions`" + ` and every other consumer of ` + "`Membership`" + ` compile and run
unchanged.

## What it buys you

- Shipped code stays shipped: extension happens in new files.
- Each tier's behavior is tested once, next to its definition.
- Go makes this cheap: interfaces are satisfied implicitly, so new tiers
  need no registration ceremony.
`
