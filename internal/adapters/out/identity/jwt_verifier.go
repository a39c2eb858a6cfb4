// Package identity verifies bearer credentials presented by delivery agents
// and shippers. Token issuance and account management live in an external
// identity provider; this adapter only checks signatures and extracts the
// caller's identity.
package identity

import (
	"context"
	"fmt"
	"strings"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier implements ports.IdentityVerifier over HMAC-signed JWTs issued
// by the identity provider. The token's subject claim carries the caller's
// stable identifier.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier checking tokens against the given
// shared secret.
func NewJWTVerifier(secret []byte) (*JWTVerifier, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("jwt secret is required")
	}

	return &JWTVerifier{secret: secret}, nil
}

// Verify parses and validates the raw bearer token and returns the caller's
// identity taken from the subject claim. Any parse, signature, expiry, or
// missing-subject failure is reported as ports.ErrInvalidCredential.
func (v *JWTVerifier) Verify(_ context.Context, token string) (kernel.AgentID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return kernel.AgentID{}, fmt.Errorf("%w: token is empty", ports.ErrInvalidCredential)
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return kernel.AgentID{}, fmt.Errorf("%w: %w", ports.ErrInvalidCredential, err)
	}

	if claims.Subject == "" {
		return kernel.AgentID{}, fmt.Errorf("%w: subject claim is missing", ports.ErrInvalidCredential)
	}

	agent, err := kernel.NewAgentID(claims.Subject)
	if err != nil {
		return kernel.AgentID{}, fmt.Errorf("%w: %w", ports.ErrInvalidCredential, err)
	}

	return agent, nil
}
