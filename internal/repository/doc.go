// Package repository contains data access implementations for GridTrace.
//
// Repositories provide persistence operations for domain entities,
// abstracting the underlying data store.
//
// # Architecture
//
// Repository interfaces are defined at the service layer (consumer-defined
// interfaces) following Go's dependency inversion best practices.
// This package contains the concrete implementations.
//
// # Data Store
//
// Puzzles and solve runs are stored as JSON values in Redis, with sorted
// sets serving as creation-time indexes for listing. Completed solve runs
// carry a configurable TTL so trace history ages out on its own.
//
// # Thread Safety
//
// All repository implementations are safe for concurrent use.
// Connection pools are managed at the database layer.
package repository
