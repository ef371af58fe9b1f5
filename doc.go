// Package statespace is a small toolkit for breadth-first state-space
// search: one generic engine, reused unmodified by three unrelated problems.
//
// 🚀 What is statespace?
//
//	A generic search layer plus the domains that drive it:
//		• search/    - the Problem contract, BFS driver and flood-fill mode
//		• grid/      - binary grids with 4- or 8-connected neighborhoods
//		• islands/   - count connected land regions (8-connected)
//		• maze/      - shortest routes through a maze (4-connected)
//		• pitchers/  - the water-pitcher measuring puzzle
//		• fixture/   - named problems loaded from YAML
//		• telemetry/ - Prometheus counters for search activity
//
// ✨ Guarantees
//
//   - Shortest solutions under unit costs: BFS goal-tests every child as
//     it is generated and marks states reached at enqueue time.
//   - Termination on finite spaces: no state is enqueued twice.
//   - Determinism: traversal order follows each problem's Actions order.
//   - Explicit outcomes: Succeeded, Failed or Cutoff, never a bare nil.
//
// Quick ASCII example (maze, '*' marks the route):
//
//	*#*
//	*#*
//	***
//
// The statespace command (cmd/statespace) solves fixture files and the
// built-in reference scenarios from the shell:
//
//	go run ./cmd/statespace run --draw
package statespace
