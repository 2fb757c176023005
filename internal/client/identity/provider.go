// Package identity talks to the managed identity provider: account sign-up,
// email verification, password login and user attribute lookup.
//
// The provider's callback-style login is exposed as an AuthResult value with
// three outcomes: AuthSuccess, AuthFailure and AuthPasswordResetRequired.
package identity

import "context"

// Provider is the identity provider port used by the auth service.
type Provider interface {
	SignUp(ctx context.Context, email, password string, attributes map[string]string) error
	ConfirmSignUp(ctx context.Context, email, code string) error
	ResendConfirmationCode(ctx context.Context, email string) error
	Authenticate(ctx context.Context, email, password string) AuthResult
	GetUserAttributes(ctx context.Context, accessToken string) (map[string]string, error)
}

// AuthResult is one of AuthSuccess, AuthFailure or AuthPasswordResetRequired.
type AuthResult interface {
	authResult()
}

type AuthSuccess struct {
	AccessToken string
	IDToken     string
}

type AuthFailure struct {
	Err error
}

// AuthPasswordResetRequired means the credentials were accepted but the
// provider demands a new password before issuing tokens.
type AuthPasswordResetRequired struct {
	Session string
}

func (AuthSuccess) authResult()               {}
func (AuthFailure) authResult()               {}
func (AuthPasswordResetRequired) authResult() {}
