// Package journalrank ranks journals (or any citing entities) from a
// cross-citation matrix, normalized by how much each entity publishes.
//
// 🚀 What is journalrank?
//
//	A small, deterministic library plus CLI that brings together:
//		• Input: a CSV table of entityId, noOfPubs, ref_1 … ref_N
//		• Invariant method: the least-squares solution of a calibrated linear system
//		• HITS: mutual reinforcement between scores and citer weights
//		• Demange: the dual weighting of the same iteration
//		• Output: a report sorted by one method, as CSV, JSON, YAML or TOML
//
// ✨ Why choose journalrank?
//
//   - Every method is calibrated to the same scale: Σ s[i]·P[i] = 100·mean(P)
//   - Deterministic – fixed loop orders, stable sorting, no map iteration
//   - Fail-fast – malformed tables are rejected before any ranking runs
//   - Observable – an OnRound hook exposes every iteration
//
// Under the hood, everything is organized under these packages:
//
//	matrix/    — Dense storage, validators, kernels, all-close test, LU solves
//	citation/  — table model and the derived R, T, P inputs
//	invariant/ — the invariant ranking method
//	hits/      — the HITS and Demange iteration
//	report/    — column assembly and descending sort
//	tableio/   — CSV input and CSV/JSON/YAML/TOML report output
//	pipeline/  — one full run: build, rank, assemble
//
// Quick example (two journals citing each other five times):
//
//	entityId,noOfPubs,ref_1,ref_2
//	J1,10,0,5
//	J2,20,5,0
//
//	journal,invariant,hits,demange
//	J1,75.00…,100,100
//	J2,37.49…,25,25
//
// Scores are written in their shortest round-trip form, so the least-squares
// column carries the rounding of the solve (75 and 37.5 up to ~1e-14).
//
// The command lives in cmd/journalrank:
//
//	go install github.com/katalvlaran/journalrank/cmd/journalrank@latest
//	journalrank refs.csv ranking.csv --sort-by hits
package journalrank
