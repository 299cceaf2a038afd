// Package dip shows the Dependency Inversion Principle on membership
// registration.
//
// The high-level policy (registering members) owns the Logger abstraction.
// Low-level details implement it: FileLogger appends to a local file,
// ConsoleLogger is a deliberately unfinished stub, and ZapLogger adapts
// go.uber.org/zap.
//
// Before: Registrar asks for a Logger in its constructor and then, on the
// one path that logs, constructs a FileLogger directly. The injection is
// decoration; the dependency still points at the filesystem. The violation
// is intentional and stays, with the one-line fix sitting next to it as a
// comment. The point of the lesson is to see it.
//
// After: EnrollmentService does the same job through the injected Logger on
// every path. Swapping the file for zap, or for a spy in tests, is a
// composition-root change the service never hears about.
package dip
