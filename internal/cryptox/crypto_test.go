package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveKey_DeterministicPerSalt(t *testing.T) {
	k1 := DeriveKey([]byte("pass"), []byte("salt-salt-salt-1"))
	k2 := DeriveKey([]byte("pass"), []byte("salt-salt-salt-1"))
	k3 := DeriveKey([]byte("pass"), []byte("salt-salt-salt-2"))

	require.Len(t, k1, 32)
	require.Equal(t, k1, k2)
	require.NotEqual(t, k1, k3)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	aead, err := NewAEAD(DeriveKey([]byte("pass"), []byte("0123456789abcdef")))
	require.NoError(t, err)

	sealed, err := Seal(aead, []byte("token"), []byte("jwt_access_token"))
	require.NoError(t, err)
	require.False(t, bytes.Contains(sealed, []byte("token")))

	plain, err := Open(aead, sealed, []byte("jwt_access_token"))
	require.NoError(t, err)
	require.Equal(t, []byte("token"), plain)
}

func TestOpen_WrongAdditionalDataFails(t *testing.T) {
	aead, err := NewAEAD(DeriveKey([]byte("pass"), []byte("0123456789abcdef")))
	require.NoError(t, err)

	sealed, err := Seal(aead, []byte("value"), []byte("user_sub"))
	require.NoError(t, err)

	_, err = Open(aead, sealed, []byte("user_name"))
	require.Error(t, err)
}

func TestOpen_WrongKeyFails(t *testing.T) {
	a1, err := NewAEAD(DeriveKey([]byte("one"), []byte("0123456789abcdef")))
	require.NoError(t, err)
	a2, err := NewAEAD(DeriveKey([]byte("two"), []byte("0123456789abcdef")))
	require.NoError(t, err)

	sealed, err := Seal(a1, []byte("value"), nil)
	require.NoError(t, err)

	_, err = Open(a2, sealed, nil)
	require.Error(t, err)
}

func TestOpen_TooShort(t *testing.T) {
	aead, err := NewAEAD(make([]byte, 32))
	require.NoError(t, err)

	_, err = Open(aead, []byte{1, 2, 3}, nil)
	require.ErrorIs(t, err, ErrCiphertextTooShort)
}
