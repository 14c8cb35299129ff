// Package errors provides application error types for GridTrace.
//
// This package defines:
//   - AppError type with error classification
//   - Error constructors for common error types
//   - Error type checking helpers
//   - HTTP status code mapping
//
// # Error Types
//
//   - NotFound: Resource does not exist (404)
//   - Validation: Invalid input data (400)
//   - Unprocessable: Well-formed but unusable input (422)
//   - Conflict: State conflict (409)
//   - RateLimited: Too many requests (429)
//   - Internal: Unexpected server error (500)
//
// # Usage
//
// Create errors using constructor functions:
//
//	return apperrors.NotFound("puzzle")
//	return apperrors.Validation("digit must be between 0 and 9")
//
// Check error types:
//
//	if apperrors.IsNotFound(err) {
//	    // Handle not found
//	}
//
// Note that an unsatisfiable puzzle is not an error: the solver reports
// it as an ordinary unsolved result with its trace intact.
package errors
