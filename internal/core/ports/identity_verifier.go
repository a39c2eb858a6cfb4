package ports

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/kernel"
)

// ErrInvalidCredential indicates a missing, malformed, or unverifiable
// bearer credential. Handlers surface it as an unauthorized response before
// any lifecycle logic runs.
var ErrInvalidCredential = errors.New("invalid credential")

// IdentityVerifier validates a bearer credential against the identity
// provider and yields the caller's identity. Token issuance and account
// management live entirely outside this service.
type IdentityVerifier interface {
	// Verify checks the raw bearer token and returns the caller's AgentID.
	// Returns an error wrapping ErrInvalidCredential when the token cannot
	// be verified.
	Verify(ctx context.Context, token string) (kernel.AgentID, error)
}
