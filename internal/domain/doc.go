// Package domain contains the core business entities and types for GridTrace.
//
// This package defines:
//   - Entity types (Puzzle, SolveRun)
//   - Replay value types (ReplayStep, ReplayWindow, ReplaySummary)
//   - Input/output types for service operations
//
// # Design Philosophy
//
// Domain types are persistence-agnostic and represent the core
// business concepts independent of how they are stored or transmitted.
//
// # Key Entities
//
//   - Puzzle: A 9x9 grid with its original clues marked as fixed
//   - SolveRun: One solver execution over a puzzle, carrying the full
//     ordered decision trace
package domain
