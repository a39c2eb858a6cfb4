package kernel

import (
	"parcels/internal/pkg/errs"
)

// ErrAgentIDIsNotConstructed is returned when validating a zero-value AgentID.
// Agent identities must be created via NewAgentID.
var ErrAgentIDIsNotConstructed = errs.NewValueIsRequiredError(
	"AgentID must be created via NewAgentID")

// AgentID is the opaque identity of an authenticated caller as issued by the
// identity provider. The service never inspects its structure; it is only
// compared for equality, so sender IDs and delivery-agent IDs share the type.
//
// The zero value is invalid; use NewAgentID.
type AgentID struct {
	value string
}

// NewAgentID creates an AgentID from the identity provider's subject string.
// Returns an error if the subject is empty.
func NewAgentID(subject string) (AgentID, error) {
	if subject == "" {
		return AgentID{}, errs.NewValueIsRequiredError("subject")
	}
	return AgentID{value: subject}, nil
}

// String returns the raw subject string.
func (a AgentID) String() string {
	return a.value
}

// IsEqual reports whether two agent identities are the same caller.
func (a AgentID) IsEqual(other AgentID) bool {
	return a.value == other.value
}

// Validate returns ErrAgentIDIsNotConstructed for the zero value, nil otherwise.
func (a AgentID) Validate() error {
	if a.value == "" {
		return ErrAgentIDIsNotConstructed
	}
	return nil
}
