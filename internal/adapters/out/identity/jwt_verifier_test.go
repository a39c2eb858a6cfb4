package identity_test

import (
	"testing"
	"time"

	"parcels/internal/adapters/out/identity"
	"parcels/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("integration-test-secret")

func signedToken(t *testing.T, secret []byte, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := identity.NewJWTVerifier(nil)
	require.Error(t, err)
}

func TestJWTVerifier_Verify_ValidToken(t *testing.T) {
	verifier, err := identity.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token := signedToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "agent-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	agent, err := verifier.Verify(t.Context(), token)
	require.NoError(t, err)
	assert.Equal(t, "agent-42", agent.String())
}

func TestJWTVerifier_Verify_Declines(t *testing.T) {
	verifier, err := identity.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage token", "not.a.jwt"},
		{
			"wrong secret",
			signedToken(t, []byte("other-secret"), jwt.RegisteredClaims{
				Subject:   "agent-42",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}),
		},
		{
			"expired token",
			signedToken(t, testSecret, jwt.RegisteredClaims{
				Subject:   "agent-42",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			}),
		},
		{
			"missing subject",
			signedToken(t, testSecret, jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(t.Context(), tt.token)
			require.ErrorIs(t, err, ports.ErrInvalidCredential)
		})
	}
}

func TestJWTVerifier_Verify_RejectsUnsignedAlgorithm(t *testing.T) {
	verifier, err := identity.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject: "agent-42",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(t.Context(), unsigned)
	require.ErrorIs(t, err, ports.ErrInvalidCredential)
}
