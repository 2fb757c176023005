package views

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/dmitrijs2005/cardscan/internal/client/client"
	"github.com/dmitrijs2005/cardscan/internal/client/models"
	"github.com/dmitrijs2005/cardscan/internal/client/services"
	"github.com/dmitrijs2005/cardscan/internal/client/session"
	"github.com/dmitrijs2005/cardscan/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeBackend implements client.Client with canned answers.
type fakeBackend struct {
	upload       *models.UploadedImage
	uploadErr    error
	recognition  *models.Recognition
	recognizeErr error
	lists        [][]byte
	listErr      error
	mutateErr    error

	calls      []string
	lastCreate client.CreateCardRequest
}

func (f *fakeBackend) UploadImage(ctx context.Context, filename string, data []byte) (*models.UploadedImage, error) {
	f.calls = append(f.calls, "upload")
	return f.upload, f.uploadErr
}

func (f *fakeBackend) RecognizeEntities(ctx context.Context, fileID string) (*models.Recognition, error) {
	f.calls = append(f.calls, "recognize")
	return f.recognition, f.recognizeErr
}

func (f *fakeBackend) ListCards(ctx context.Context, userID string) ([]byte, error) {
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.lists) == 0 {
		return []byte(`[]`), nil
	}
	body := f.lists[0]
	if len(f.lists) > 1 {
		f.lists = f.lists[1:]
	}
	return body, nil
}

func (f *fakeBackend) CreateCard(ctx context.Context, card client.CreateCardRequest) ([]byte, error) {
	f.calls = append(f.calls, "create")
	f.lastCreate = card
	return []byte(`{"card_id":"new"}`), f.mutateErr
}

func (f *fakeBackend) UpdateCard(ctx context.Context, card client.UpdateCardRequest) ([]byte, error) {
	f.calls = append(f.calls, "update")
	return nil, f.mutateErr
}

func (f *fakeBackend) DeleteCard(ctx context.Context, userID, cardID string) ([]byte, error) {
	f.calls = append(f.calls, "delete")
	return nil, f.mutateErr
}

type harness struct {
	store   session.Store
	auth    services.AuthService
	images  services.ImageService
	cards   services.CardService
	backend *fakeBackend
}

func newHarness(t *testing.T, loggedIn bool) *harness {
	t.Helper()
	store := session.NewMemoryStore()
	if loggedIn {
		require.NoError(t, store.Save(context.Background(), models.Session{
			UserID: "user-1", DisplayName: "a", Email: "a@b.com", AccessToken: "tok",
		}))
	}
	fb := &fakeBackend{}
	log := logging.Discard()
	return &harness{
		store:   store,
		auth:    services.NewAuthService(nil, store, log),
		images:  services.NewImageService(fb, log),
		cards:   services.NewCardService(fb, store, log),
		backend: fb,
	}
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}
