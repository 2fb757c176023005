// Package models defines the client-side data shapes: the authenticated
// session, the in-progress card draft and the cards persisted by the backend.
package models

// Session is the authenticated user held client-side after login.
type Session struct {
	UserID      string
	DisplayName string
	Email       string
	AccessToken string
}

// Valid reports whether the session carries a user id.
func (s *Session) Valid() bool {
	return s != nil && s.UserID != ""
}
