// Package errs provides the standardized error taxonomy for the grocery
// order service. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers the workflow's recoverable failure kinds:
//   - ObjectNotFoundError: an order id (or other object) does not resolve
//   - ValueIsInvalidError: a supplied value failed validation
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsOutOfRangeError: a numeric value outside its permitted range
//   - InvalidTransitionError: a status change not permitted from the current status
//   - ConcurrencyConflictError: a compare-and-swap write lost a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels; the HTTP
// adapter maps them onto response codes the same way.
package errs
