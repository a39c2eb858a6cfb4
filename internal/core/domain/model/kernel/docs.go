// Package kernel provides core domain primitives for the parcel service.
// It implements the fundamental value objects used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and comparison
//   - AgentID: the opaque identity of an authenticated caller
//   - Destination: a validated delivery address with locality
//   - ScheduleWindow: the delivery time window attached to parcels and routes
//
// All primitives are immutable, enforce their invariants through constructors,
// and are safe for concurrent use.
package kernel
