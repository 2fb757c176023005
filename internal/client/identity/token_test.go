package identity

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key"))
	require.NoError(t, err)
	return s
}

func TestSubjectFromToken(t *testing.T) {
	sub, err := SubjectFromToken(signed(t, jwt.MapClaims{"sub": "abc-123", "token_use": "access"}))
	require.NoError(t, err)
	assert.Equal(t, "abc-123", sub)
}

func TestSubjectFromToken_Errors(t *testing.T) {
	_, err := SubjectFromToken("not-a-jwt")
	assert.Error(t, err)

	_, err = SubjectFromToken(signed(t, jwt.MapClaims{"token_use": "access"}))
	assert.ErrorIs(t, err, ErrNoSubject)

	_, err = SubjectFromToken(signed(t, jwt.MapClaims{"sub": 42}))
	assert.Error(t, err)
}
