package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/cardscan/internal/client/client"
	"github.com/dmitrijs2005/cardscan/internal/client/identity"
	"github.com/dmitrijs2005/cardscan/internal/client/models"
	"github.com/dmitrijs2005/cardscan/internal/client/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// ---- fake identity provider ----

type fakeProvider struct {
	SignUpErr   error
	ConfirmErr  error
	ResendErr   error
	AuthResult  identity.AuthResult
	Attrs       map[string]string
	AttrsErr    error
	LastEmail   string
	LastCode    string
	LastAttrs   map[string]string
	AttrsCalled int
}

func (f *fakeProvider) SignUp(ctx context.Context, email, password string, attributes map[string]string) error {
	f.LastEmail = email
	f.LastAttrs = attributes
	return f.SignUpErr
}

func (f *fakeProvider) ConfirmSignUp(ctx context.Context, email, code string) error {
	f.LastEmail, f.LastCode = email, code
	return f.ConfirmErr
}

func (f *fakeProvider) ResendConfirmationCode(ctx context.Context, email string) error {
	f.LastEmail = email
	return f.ResendErr
}

func (f *fakeProvider) Authenticate(ctx context.Context, email, password string) identity.AuthResult {
	f.LastEmail = email
	return f.AuthResult
}

func (f *fakeProvider) GetUserAttributes(ctx context.Context, accessToken string) (map[string]string, error) {
	f.AttrsCalled++
	return f.Attrs, f.AttrsErr
}

// ---- fake backend client ----

type fakeClient struct {
	Upload       *models.UploadedImage
	UploadErr    error
	Recognition  *models.Recognition
	RecognizeErr error
	ListBody     []byte
	ListErr      error
	MutateBody   []byte
	MutateErr    error

	Calls       []string
	LastUserID  string
	LastCreate  client.CreateCardRequest
	LastUpdate  client.UpdateCardRequest
	LastCardID  string
	LastFileID  string
	LastUpload  []byte
	LastFileNam string
}

func (f *fakeClient) UploadImage(ctx context.Context, filename string, data []byte) (*models.UploadedImage, error) {
	f.Calls = append(f.Calls, "upload")
	f.LastFileNam, f.LastUpload = filename, data
	return f.Upload, f.UploadErr
}

func (f *fakeClient) RecognizeEntities(ctx context.Context, fileID string) (*models.Recognition, error) {
	f.Calls = append(f.Calls, "recognize")
	f.LastFileID = fileID
	return f.Recognition, f.RecognizeErr
}

func (f *fakeClient) ListCards(ctx context.Context, userID string) ([]byte, error) {
	f.Calls = append(f.Calls, "list")
	f.LastUserID = userID
	return f.ListBody, f.ListErr
}

func (f *fakeClient) CreateCard(ctx context.Context, card client.CreateCardRequest) ([]byte, error) {
	f.Calls = append(f.Calls, "create")
	f.LastCreate = card
	return f.MutateBody, f.MutateErr
}

func (f *fakeClient) UpdateCard(ctx context.Context, card client.UpdateCardRequest) ([]byte, error) {
	f.Calls = append(f.Calls, "update")
	f.LastUpdate = card
	return f.MutateBody, f.MutateErr
}

func (f *fakeClient) DeleteCard(ctx context.Context, userID, cardID string) ([]byte, error) {
	f.Calls = append(f.Calls, "delete")
	f.LastUserID, f.LastCardID = userID, cardID
	return f.MutateBody, f.MutateErr
}

// ---- helpers ----

func accessToken(t *testing.T, sub string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub}).SignedString([]byte("k"))
	require.NoError(t, err)
	return tok
}

func loggedIn(t *testing.T, userID string) session.Store {
	t.Helper()
	s := session.NewMemoryStore()
	require.NoError(t, s.Save(context.Background(), models.Session{UserID: userID, Email: "a@b.com", AccessToken: "tok"}))
	return s
}
