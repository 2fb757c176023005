// Package services contains the application services of the card scanner
// client: authentication, the image pipeline and the card repository.
// This file defines the authentication service: sign-up, email verification,
// login with best-effort profile lookup, and logout.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cardscan/internal/client/identity"
	"github.com/dmitrijs2005/cardscan/internal/client/models"
	"github.com/dmitrijs2005/cardscan/internal/client/session"
	"github.com/dmitrijs2005/cardscan/internal/common"
	"github.com/dmitrijs2005/cardscan/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SignUp: create an account; the account stays unverified and no session
//     is created.
//   - Verify / ResendVerification: confirm the emailed code, or send it again.
//     Verify never logs the user in.
//   - Login: authenticate and populate the session store.
//   - Logout: clear the session store.
//
// Provider errors are returned unchanged so their message reaches the user.
type AuthService interface {
	SignUp(ctx context.Context, email string, password []byte) error
	Verify(ctx context.Context, email, code string) error
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, email string, password []byte) (*models.Session, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*models.Session, error)
	IsAuthenticated(ctx context.Context) bool
}

type authService struct {
	provider identity.Provider
	store    session.Store
	log      logging.Logger
}

// NewAuthService constructs an AuthService over an identity provider and the
// session store it populates.
func NewAuthService(provider identity.Provider, store session.Store, log logging.Logger) AuthService {
	return &authService{provider: provider, store: store, log: log}
}

func requireCredentials(email string, password []byte) error {
	if strings.TrimSpace(email) == "" {
		return common.Required("email", "email is required")
	}
	if len(password) == 0 {
		return common.Required("password", "password is required")
	}
	return nil
}

func (a *authService) SignUp(ctx context.Context, email string, password []byte) error {
	email = strings.TrimSpace(email)
	if err := requireCredentials(email, password); err != nil {
		return err
	}

	err := a.provider.SignUp(ctx, email, string(password), map[string]string{"email": email})
	if err != nil {
		a.log.Info(ctx, "sign-up rejected", "email", email, "err", err)
		return err
	}

	a.log.Info(ctx, "sign-up accepted, verification pending", "email", email)
	return nil
}

func (a *authService) Verify(ctx context.Context, email, code string) error {
	email, code = strings.TrimSpace(email), strings.TrimSpace(code)
	if email == "" {
		return common.Required("email", "email is required")
	}
	if code == "" {
		return common.Required("code", "verification code is required")
	}

	return a.provider.ConfirmSignUp(ctx, email, code)
}

func (a *authService) ResendVerification(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return common.Required("email", "email is required")
	}

	return a.provider.ResendConfirmationCode(ctx, email)
}

// Login authenticates against the provider. On success it looks up the
// user's display name; a failed lookup does not fail the login and the
// name falls back to the local part of the email.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	email = strings.TrimSpace(email)
	if err := requireCredentials(email, password); err != nil {
		return nil, err
	}

	var tokens identity.AuthSuccess
	switch res := a.provider.Authenticate(ctx, email, string(password)).(type) {
	case identity.AuthSuccess:
		tokens = res
	case identity.AuthPasswordResetRequired:
		return nil, ErrNewPasswordRequired
	case identity.AuthFailure:
		return nil, res.Err
	default:
		return nil, fmt.Errorf("unexpected auth result %T", res)
	}

	sub, err := identity.SubjectFromToken(tokens.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s := models.Session{
		UserID:      sub,
		DisplayName: a.displayName(ctx, tokens.AccessToken, email),
		Email:       email,
		AccessToken: tokens.AccessToken,
	}

	if err := a.store.Save(ctx, s); err != nil {
		return nil, err
	}

	a.log.Info(ctx, "logged in", "user_id", s.UserID)
	return &s, nil
}

func (a *authService) displayName(ctx context.Context, accessToken, email string) string {
	attrs, err := a.provider.GetUserAttributes(ctx, accessToken)
	if err != nil {
		a.log.Warn(ctx, "user attributes unavailable, using email", "err", err)
		return common.EmailLocalPart(email)
	}
	if name := strings.TrimSpace(attrs["name"]); name != "" {
		return name
	}
	return common.EmailLocalPart(email)
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) Session(ctx context.Context) (*models.Session, error) {
	return a.store.CurrentUser(ctx)
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.store.IsAuthenticated(ctx)
}
