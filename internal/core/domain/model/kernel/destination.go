package kernel

import (
	"errors"
	"fmt"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// ErrDestinationIsNotConstructed is returned when attempting to use an
// improperly initialized Destination. Use NewDestination.
var ErrDestinationIsNotConstructed = errs.NewValueIsRequiredError(
	"destination must be created via NewDestination constructor")

// Destination represents a validated delivery address. It is an immutable
// value object; the zero value is invalid and fails validation.
//
// Example:
//
//	dest, err := kernel.NewDestination("Av. Insurgentes 1457", "CDMX")
//	if err != nil {
//	    // Handle validation error
//	}
type Destination struct { //nolint:recvcheck //using for validation
	address  string
	locality string
	guard    guard.ConstructorGuard
}

// NewDestination creates a Destination from a street address and locality.
// Both parts are required; returns an error if either is empty.
func NewDestination(address string, locality string) (Destination, error) {
	dest := Destination{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(dest.setAddress(address), dest.setLocality(locality)); err != nil {
		return Destination{}, err
	}

	return dest, nil
}

// Address returns the street address portion of the destination.
func (d Destination) Address() string {
	return d.address
}

// Locality returns the city or locality portion of the destination.
func (d Destination) Locality() string {
	return d.locality
}

// IsEqual reports whether two destinations refer to the same place.
func (d Destination) IsEqual(other Destination) bool {
	return d.address == other.address && d.locality == other.locality
}

// String implements fmt.Stringer.
func (d Destination) String() string {
	return fmt.Sprintf("%s, %s", d.address, d.locality)
}

// Validate checks that the Destination was created through NewDestination.
func (d Destination) Validate() error {
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

func (d *Destination) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}

func (d *Destination) setLocality(locality string) error {
	if locality == "" {
		return errs.NewValueIsRequiredError("locality")
	}
	d.locality = locality
	return nil
}
