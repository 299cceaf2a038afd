// Package lsp shows the Liskov Substitution Principle on gym access.
//
// Before: GymMembership forces every tier to promise ReserveGymSlot. The
// trial tier cannot honor it, so it ships a stub that fails at runtime, and
// ReserveAll breaks the moment a trial is substituted in.
//
// After: the promise is split into Membership and GymAccess. A tier that
// cannot reserve simply never claims it can, and the bad substitution stops
// compiling instead of failing in production.
package lsp
