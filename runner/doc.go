// Package runner catalogs the five lessons as runnable, narrated demos.
//
// A Demo bundles a lesson's identity (name, principle, summary) with its two
// callable parts: Lesson for the markdown write-up and Run for the narrated
// walkthrough. Catalog keeps demos in registration order, rejects duplicate
// or unnamed registrations, and converts a panicking demo into a PanicError
// so one broken lesson cannot take down a run of all of them.
//
// Standard returns the built-in catalog with the five principles in the
// order that spells the word.
package runner
