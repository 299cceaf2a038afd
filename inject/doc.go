// Package inject provides a small, explicit dependency wiring helper.
//
// It exists so the composition roots in this repository (cmd/solid and the
// runnable examples) can wire their pieces the way the DIP lesson preaches:
// dependencies are attached intentionally, one Bind at a time, with typed
// errors when the wiring is wrong.
//
// Design goals:
//   - Lightweight: a constructed value plus a bag of recorded dependencies.
//     No container graph, no reflection-based injection, no lifecycles.
//   - Explicit wiring: every dependency is attached by a Step you wrote.
//   - Safe defaults: duplicate keys and nil wiring mistakes fail early with
//     errors you can assert in tests.
//   - Introspectable: the dep bag records what was wired, so a test (or a
//     curious main) can ask Has/DepAs/TryDepAs afterwards.
//
// When to use it
//
// Use inject in a composition root when you want guardrails and introspection
// around otherwise-manual wiring. Plain constructor injection (the dip lesson
// package shows it) needs none of this; reach for inject only where the
// wiring itself is worth validating.
//
// When NOT to use it
//
// If you need automatic graph resolution, scoping, or whole-graph code
// generation, use Wire or fx/dig. inject is deliberately not that.
package inject
