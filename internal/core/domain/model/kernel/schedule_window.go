package kernel

import (
	"fmt"
	"time"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// ErrScheduleWindowIsNotConstructed is returned when attempting to use an
// improperly initialized ScheduleWindow. Use NewScheduleWindow.
var ErrScheduleWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"schedule window must be created via NewScheduleWindow constructor")

// ScheduleWindow is the delivery time window attached to a parcel and
// denormalized onto its route. Immutable value object; the zero value fails
// validation.
type ScheduleWindow struct { //nolint:recvcheck //using for validation
	from  time.Time
	until time.Time
	guard guard.ConstructorGuard
}

// NewScheduleWindow creates a window from the earliest to the latest
// acceptable delivery time. Both bounds are required and until must not
// precede from.
func NewScheduleWindow(from time.Time, until time.Time) (ScheduleWindow, error) {
	if from.IsZero() {
		return ScheduleWindow{}, errs.NewValueIsRequiredError("from")
	}
	if until.IsZero() {
		return ScheduleWindow{}, errs.NewValueIsRequiredError("until")
	}
	if until.Before(from) {
		return ScheduleWindow{}, errs.NewValueIsInvalidErrorWithCause("until",
			fmt.Errorf("%s is before %s", until.Format(time.RFC3339), from.Format(time.RFC3339)))
	}

	return ScheduleWindow{
		from:  from,
		until: until,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// From returns the earliest acceptable delivery time.
func (w ScheduleWindow) From() time.Time {
	return w.from
}

// Until returns the latest acceptable delivery time.
func (w ScheduleWindow) Until() time.Time {
	return w.until
}

// IsEqual reports whether two windows cover the same interval.
func (w ScheduleWindow) IsEqual(other ScheduleWindow) bool {
	return w.from.Equal(other.from) && w.until.Equal(other.until)
}

// Validate checks that the window was created through NewScheduleWindow.
func (w ScheduleWindow) Validate() error {
	return w.guard.Validate(ErrScheduleWindowIsNotConstructed)
}
