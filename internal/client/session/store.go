// Package session holds the authenticated user's identity and access token
// between runs of the client.
//
// The Store is the only writer of session state. Auth flows call Save after
// a successful login and Clear on logout; every other component reads the
// current user through CurrentUser or IsAuthenticated.
package session

import (
	"context"

	"github.com/dmitrijs2005/cardscan/internal/client/models"
)

// Keys under which session fields are persisted.
const (
	KeyAccessToken = "jwt_access_token"
	KeyUserSub     = "user_sub"
	KeyUserEmail   = "user_email"
	KeyUserName    = "user_name"
)

// Keys lists every persisted session field.
var Keys = []string{KeyAccessToken, KeyUserSub, KeyUserEmail, KeyUserName}

type Store interface {
	IsAuthenticated(ctx context.Context) bool
	// CurrentUser returns nil without an error when no session is stored.
	CurrentUser(ctx context.Context) (*models.Session, error)
	Save(ctx context.Context, s models.Session) error
	// Clear removes all session fields at once.
	Clear(ctx context.Context) error
}
