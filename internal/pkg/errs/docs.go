// Package errs provides the standardized error taxonomy for the parcel service.
//
// Errors fall into the categories the handlers translate to HTTP statuses:
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ValueIsInvalidError: a value or requested state transition is invalid
//   - ValueIsRequiredError: a required value is missing
//   - NotEntitledError: the caller is not allowed to act on the entity
//
// Each error type follows a consistent pattern: a sentinel error variable,
// a struct carrying the details, constructors with and without a cause,
// an Error() method, and an Unwrap() method so errors.Is can classify any
// error against its sentinel. Infrastructure faults are never modeled here;
// they propagate as ordinary wrapped errors and surface as generic
// server errors.
package errs
