// Package handler contains HTTP request handlers for GridTrace.
//
// Handlers are the entry point for HTTP requests, responsible for:
//   - Request parsing and validation
//   - Calling appropriate services
//   - Response formatting
//   - Error response mapping
//
// # Route Organization
//
// Routes are organized by resource under /api/v1:
//   - /api/v1/puzzles - puzzle storage and editing
//   - /api/v1/solves - solve runs, traces, and replay
//
// Health and metrics endpoints live at the root.
//
// # Error Handling
//
// Handlers convert domain errors to appropriate HTTP status codes
// using the apperrors package for consistent error responses.
//
// # Thread Safety
//
// All handlers are safe for concurrent use.
package handler
