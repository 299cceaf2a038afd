package srp

// Lesson returns the markdown write-up rendered by `solid explain srp`.
func Lesson() string {
	return lessonText
}

const lessonText = `# Single Responsibility Principle

> A type should have one reason to change.

## The smell

` + "`TangledMembership.Add`" + ` does three jobs in one method:

1. validates the member name,
2. stores the member,
3. opens the error-log file and writes the failure line itself.

A change to validation rules, storage shape, or log format all land in the
same method. Tests for any one job drag the other two along: you cannot test
"blank name is rejected" without a filesystem.

## The fix

Split by reason to change:

- ` + "`Membership.Add`" + ` validates and stores, returning ` + "`ErrNoName`" + ` on blank input.
- ` + "`FileLogger.LogError`" + ` appends timestamped lines to its one file.

The caller decides whether a failed add is worth a log line:

	m, err := members.Add(name)
	if err != nil {
		_ = logger.LogError(err)
	}

## What it buys you

- ` + "`Membership`" + ` tests need no filesystem; ` + "`FileLogger`" + ` tests need no members.
- The log format can change without touching membership code.
- Swapping the logger later (see the dip lesson) is a one-line change.
`
