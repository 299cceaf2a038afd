// Package srp shows the Single Responsibility Principle on a tiny
// membership example.
//
// Before: TangledMembership.Add validates the name, stores the member, and
// writes the error-log file itself. Three reasons to change, one method.
//
// After: Membership.Add validates and stores; FileLogger owns the log file.
// Each type changes for exactly one reason.
//
// The file write is illustrative only. It exists so the lesson has a second
// responsibility to peel off, not because this repo needs a logging subsystem.
package srp
