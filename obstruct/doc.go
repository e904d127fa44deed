// SPDX-License-Identifier: MIT

// Package obstruct finds every single-cell obstruction that traps a patrol
// guard in a loop.
//
// What:
//
//   - Search enumerates every free cell of the area except the guard's start.
//   - Each candidate is evaluated on a private clone of the area with the
//     obstruction added, tracing from a fresh copy of the start state.
//   - A candidate counts when the trace stops with patrol.StopLoop.
//
// Concurrency:
//
//	Candidates are independent. A fixed pool of workers drains the candidate
//	sequence and keeps per-worker tallies that are summed at the end; the
//	loop cells are sorted row-major, so results never depend on scheduling.
//
// Complexity:
//
//   - O(W×H) traces, each bounded by W×H×4 states: O((W×H)²) worst case.
//   - Memory: O(workers × S) for in-flight traces plus O(W×H) for results.
//
// Options:
//
//   - WithWorkers(n):      pool size, default runtime.GOMAXPROCS(0).
//   - WithStrategy(s):     movement rule, default patrol.SimpleStep.
//   - WithLogger(l):       zap logger for progress, default no-op.
//   - WithMetrics(m):      prometheus collectors, default none.
//   - WithPathOnly():      only trace cells the strategy queried during the
//     unobstructed walk; the guard never looks at any other cell, so those
//     repeat the baseline stop and the count is unchanged for a strategy
//     that depends only on its Field.
package obstruct
