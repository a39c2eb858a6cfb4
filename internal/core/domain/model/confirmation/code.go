// Package confirmation provides the domain model for delivery confirmation
// codes: short shared secrets proving physical delivery of a parcel.
//
// Key business rules:
//   - Exactly one code exists per parcel, created atomically with it
//   - The code is exactly 6 characters from the alphabet A-Z, 0-9
//   - The code is immutable; it is never regenerated or rotated
//   - Verification is an exact, case-sensitive comparison
package confirmation

import (
	"errors"
	"fmt"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

// CodeLength is the exact number of characters in a confirmation code.
const CodeLength = 6

// Alphabet is the set of characters a confirmation code is drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	// ErrCodeIsNotConstructed is returned when a Code instance was not
	// created through NewCode or RestoreCode.
	ErrCodeIsNotConstructed = errors.New("Code must be created via NewCode or RestoreCode")

	// ErrCodeMismatch is returned when a supplied confirmation code does not
	// exactly equal the stored one. Comparison is case-sensitive with no
	// normalization.
	ErrCodeMismatch = errs.NewValueIsInvalidError("confirmation code does not match")
)

// Code is the confirmation-code entity attached to a parcel at creation.
// The value is immutable for the lifetime of the parcel.
type Code struct {
	// id is the unique identifier for the confirmation record
	id kernel.UUID

	// parcelID references the parcel this code confirms
	parcelID kernel.UUID

	// value is the 6-character shared secret
	value string

	// isConstructed ensures the code was created via a constructor
	isConstructed bool
}

// NewCode creates a confirmation Code for the given parcel. The value must be
// exactly CodeLength characters from Alphabet.
func NewCode(id kernel.UUID, parcelID kernel.UUID, value string) (*Code, error) {
	c := &Code{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setParcelID(parcelID),
		c.setValue(value),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCode reconstructs a Code from persistence. Identical to NewCode;
// provided for symmetry with the other aggregates' restore constructors.
func RestoreCode(id kernel.UUID, parcelID kernel.UUID, value string) (*Code, error) {
	return NewCode(id, parcelID, value)
}

// ValidateFormat checks that value is exactly CodeLength characters drawn
// from Alphabet.
func ValidateFormat(value string) error {
	if len(value) != CodeLength {
		return errs.NewValueIsInvalidErrorWithCause("code",
			fmt.Errorf("length is %d, want %d", len(value), CodeLength))
	}

	for i := 0; i < len(value); i++ {
		ch := value[i]
		if (ch < 'A' || ch > 'Z') && (ch < '0' || ch > '9') {
			return errs.NewValueIsInvalidErrorWithCause("code",
				fmt.Errorf("character %q at position %d is outside the code alphabet", ch, i))
		}
	}

	return nil
}

// Validate ensures the Code instance was properly constructed.
func (c *Code) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCodeIsNotConstructed
	}

	return nil
}

// ID returns the confirmation record's unique identifier.
func (c *Code) ID() kernel.UUID {
	return c.id
}

// ParcelID returns the identifier of the parcel this code confirms.
func (c *Code) ParcelID() kernel.UUID {
	return c.parcelID
}

// Value returns the 6-character code.
func (c *Code) Value() string {
	return c.value
}

// Verify compares a supplied code against the stored value. Returns
// ErrCodeMismatch unless the two are byte-for-byte equal.
func (c *Code) Verify(supplied string) error {
	if c.value != supplied {
		return ErrCodeMismatch
	}
	return nil
}

func (c *Code) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Code) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *Code) setValue(value string) error {
	if err := ValidateFormat(value); err != nil {
		return err
	}
	c.value = value
	return nil
}
