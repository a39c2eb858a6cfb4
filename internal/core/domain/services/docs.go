// Package services provides stateless domain services for the parcel system.
//
// The package contains the confirmation-code generator: a pure function from
// an injected random source to a 6-character code. Injecting the source keeps
// the service deterministic under test while production wiring uses the
// standard math/rand/v2 generator; the code is a delivery-confirmation
// convenience, not a security credential.
package services
