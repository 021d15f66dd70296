// Package errs provides standardized error types for the dispatch engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two groups of errors live here. Generic scenarios shared by every layer:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails a rule
//   - ObjectNotFoundError: an entity lookup came back empty
//
// And the dispatch taxonomy the service contract is expressed in:
//   - ValidationError: malformed or unresolvable input, every issue listed
//   - JobUnavailableError: a claim lost the race or the order is taken
//   - InvalidTransitionError: operation illegal from the current status
//   - ForbiddenError: caller lacks the required relationship to the order
//   - StorageFailureError: the transaction layer could not complete
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrJobUnavailable)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
package errs
