package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/cardscan/internal/client/identity"
	"github.com/dmitrijs2005/cardscan/internal/client/session"
	"github.com/dmitrijs2005/cardscan/internal/common"
	"github.com/dmitrijs2005/cardscan/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuth(p *fakeProvider) (AuthService, session.Store) {
	store := session.NewMemoryStore()
	return NewAuthService(p, store, logging.Discard()), store
}

func TestLogin_AttributeFetchFailsFallsBackToLocalPart(t *testing.T) {
	ctx := context.Background()
	tok := accessToken(t, "sub-from-token")
	p := &fakeProvider{
		AuthResult: identity.AuthSuccess{AccessToken: tok},
		AttrsErr:   errors.New("network down"),
	}
	svc, store := newAuth(p)

	s, err := svc.Login(ctx, "a@b.com", []byte("pw"))
	require.NoError(t, err)

	assert.Equal(t, "sub-from-token", s.UserID)
	assert.Equal(t, "a", s.DisplayName)
	assert.Equal(t, "a@b.com", s.Email)
	assert.Equal(t, tok, s.AccessToken)

	stored, err := store.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, *s, *stored)
	assert.True(t, svc.IsAuthenticated(ctx))
}

func TestLogin_UsesNameAttribute(t *testing.T) {
	p := &fakeProvider{
		AuthResult: identity.AuthSuccess{AccessToken: accessToken(t, "u1")},
		Attrs:      map[string]string{"name": "Alice Smith", "email": "a@b.com"},
	}
	svc, _ := newAuth(p)

	s, err := svc.Login(context.Background(), " a@b.com ", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", s.DisplayName)
	assert.Equal(t, "a@b.com", p.LastEmail)
	assert.Equal(t, 1, p.AttrsCalled)
}

func TestLogin_EmptyNameAttributeFallsBack(t *testing.T) {
	p := &fakeProvider{
		AuthResult: identity.AuthSuccess{AccessToken: accessToken(t, "u1")},
		Attrs:      map[string]string{"name": "  "},
	}
	svc, _ := newAuth(p)

	s, err := svc.Login(context.Background(), "john.doe@example.com", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, "john.doe", s.DisplayName)
}

func TestLogin_Failures(t *testing.T) {
	ctx := context.Background()
	providerErr := &identity.ProviderError{Code: "NotAuthorizedException", Message: "Incorrect username or password."}

	tests := []struct {
		name    string
		result  identity.AuthResult
		wantErr error
		wantMsg string
	}{
		{"provider failure", identity.AuthFailure{Err: providerErr}, providerErr, "Incorrect username or password."},
		{"password reset", identity.AuthPasswordResetRequired{}, ErrNewPasswordRequired, "New password required"},
		{"bad token", identity.AuthSuccess{AccessToken: "garbage"}, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newAuth(&fakeProvider{AuthResult: tt.result})

			s, err := svc.Login(ctx, "a@b.com", []byte("pw"))
			require.Error(t, err)
			assert.Nil(t, s)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.EqualError(t, err, tt.wantMsg)
			}
			assert.False(t, store.IsAuthenticated(ctx))
		})
	}
}

func TestLogin_RequiresCredentials(t *testing.T) {
	p := &fakeProvider{}
	svc, _ := newAuth(p)

	_, err := svc.Login(context.Background(), "", []byte("pw"))
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Login(context.Background(), "a@b.com", nil)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, p.LastEmail, "provider must not be called")
}

func TestSignUp_SendsEmailAttributeAndNoSession(t *testing.T) {
	ctx := context.Background()
	p := &fakeProvider{}
	svc, store := newAuth(p)

	require.NoError(t, svc.SignUp(ctx, "a@b.com", []byte("Passw0rd!")))
	assert.Equal(t, map[string]string{"email": "a@b.com"}, p.LastAttrs)
	assert.False(t, store.IsAuthenticated(ctx))

	p.SignUpErr = &identity.ProviderError{Message: "Password did not conform with policy"}
	err := svc.SignUp(ctx, "a@b.com", []byte("x"))
	assert.EqualError(t, err, "Password did not conform with policy")
}

func TestVerifyAndResend(t *testing.T) {
	ctx := context.Background()
	p := &fakeProvider{}
	svc, store := newAuth(p)

	require.NoError(t, svc.Verify(ctx, "a@b.com", " 123456 "))
	assert.Equal(t, "123456", p.LastCode)
	assert.False(t, store.IsAuthenticated(ctx), "verify does not log in")

	assert.ErrorIs(t, svc.Verify(ctx, "a@b.com", ""), common.ErrValidation)

	require.NoError(t, svc.ResendVerification(ctx, "a@b.com"))
	assert.ErrorIs(t, svc.ResendVerification(ctx, " "), common.ErrValidation)

	p.ConfirmErr = errors.New("Invalid verification code provided, please try again.")
	assert.EqualError(t, svc.Verify(ctx, "a@b.com", "1"), "Invalid verification code provided, please try again.")
}

func TestLogout_ClearsSession(t *testing.T) {
	ctx := context.Background()
	p := &fakeProvider{AuthResult: identity.AuthSuccess{AccessToken: accessToken(t, "u1")}}
	svc, _ := newAuth(p)

	_, err := svc.Login(ctx, "a@b.com", []byte("pw"))
	require.NoError(t, err)
	require.True(t, svc.IsAuthenticated(ctx))

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, svc.IsAuthenticated(ctx))

	s, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}
