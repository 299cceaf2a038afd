// Package solid is a runnable tour of the five SOLID principles, one small
// membership example per principle.
//
// Every lesson follows the same shape: the "before" types show the principle
// violated (a tangled service, a fat interface, a hardwired detail), the
// "after" types show the fix, and a Demonstrate function narrates both to a
// writer. The lessons are deliberately independent of each other; only the
// runner catalog ties them together.
//
//   - srp: one reason to change (membership storage vs error logging)
//   - ocp: open for extension, closed for modification (tier switch vs interface)
//   - lsp: substitutes must behave (trial tier that cannot reserve gym slots)
//   - isp: no forced dependencies on unused methods (studio vs online perks)
//   - dip: depend on abstractions, not details (registrar vs injected logger)
//
// See subpackages:
//   - srp, ocp, lsp, isp, dip: the lessons
//   - runner: the demo catalog the CLI executes
//   - inject: the small DI helper the composition roots wire with
//   - cmd/solid: the CLI (list, run, explain)
//   - examples/*: standalone walkthrough programs, one per lesson
package solid
