package dip

// Lesson returns the markdown write-up rendered by `solid explain dip`.
func Lesson() string {
	return lessonText
}

const lessonText = `# Dependency Inversion Principle

> High-level policy owns the abstraction; low-level details implement it.

## The setup

Registering members is policy. Where the error lines go is detail. The
policy package owns the interface:

	type Logger interface {
		Log(message string) error
	}

and the details line up behind it: ` + "`FileLogger`" + ` (works), ` + "`ConsoleLogger`" + `
(a stub that fails with ` + "`ErrNotImplemented`" + `), ` + "`ZapLogger`" + ` (adapts
` + "`go.uber.org/zap`" + `).

## The violation, kept on purpose

` + "`Registrar`" + ` takes a ` + "`Logger`" + ` in its constructor and then does this on its
failure path:

	// The violation, kept on purpose: policy instantiating its detail.
	_ = FileLogger{Path: r.LogPath}.Log("add failed: " + ErrNoName.Error())
	// The fix is one line: _ = r.logger.Log("add failed: " + ErrNoName.Error())

The injection is decoration. Wire in a spy and it sees nothing; the local
filesystem gets the line no matter what. You cannot test the failure path
without a real file, and you cannot ship the registrar anywhere the log file
cannot live.

## The fix

` + "`EnrollmentService`" + ` is the same job with the dependency actually inverted:

	svc, err := NewEnrollmentService(logger) // nil is rejected with ErrNilLogger
	_, err = svc.Add("")                     // the injected logger gets the line

Every path goes through the abstraction. The composition root decides what
the logger is; the service cannot tell a file from zap from a test spy.

## What it buys you

- The failure path is testable with a spy. No filesystem required.
- Swapping logging backends is a wiring change in one place.
- The arrow of dependency points from detail to policy, so the policy
  package compiles without knowing any detail exists.
`
