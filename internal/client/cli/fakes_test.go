package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/cardscan/internal/client/config"
	"github.com/dmitrijs2005/cardscan/internal/client/models"
	"github.com/dmitrijs2005/cardscan/internal/client/session"
	"github.com/dmitrijs2005/cardscan/internal/logging"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	lines = append(lines, "")
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

type testEnv struct {
	app    *App
	out    *bytes.Buffer
	auth   *fakeAuth
	images *fakeImages
	cards  *fakeCards
	files  *fakeDownloader
	slept  time.Duration
}

func newTestEnv(t *testing.T, loggedIn bool, input ...string) *testEnv {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()

	env := &testEnv{
		out:    &bytes.Buffer{},
		auth:   &fakeAuth{store: session.NewMemoryStore()},
		images: &fakeImages{},
		cards:  &fakeCards{},
		files:  &fakeDownloader{},
	}
	if loggedIn {
		require.NoError(t, env.auth.store.Save(context.Background(), models.Session{
			UserID: "u1", DisplayName: "alice", Email: "alice@example.com", AccessToken: "tok",
		}))
	}

	env.app = newApp(cfg, logging.Discard(), env.auth, env.images, env.cards, env.files, readerFromLines(input...), env.out)
	env.app.sleep = func(d time.Duration) { env.slept = d }
	env.app.router.Mount(context.Background())
	return env
}

// ------------ fake auth service ------------

type fakeAuth struct {
	store session.Store

	loginErr   error
	signUpErr  error
	verifyErrs []error
	resendErr  error

	loginEmail  string
	loginPass   string
	signUpEmail string
	codes       []string
	resends     int
}

func (f *fakeAuth) SignUp(_ context.Context, email string, password []byte) error {
	f.signUpEmail = email
	return f.signUpErr
}

func (f *fakeAuth) Verify(_ context.Context, email, code string) error {
	f.codes = append(f.codes, code)
	if len(f.verifyErrs) > 0 {
		err := f.verifyErrs[0]
		f.verifyErrs = f.verifyErrs[1:]
		return err
	}
	return nil
}

func (f *fakeAuth) ResendVerification(_ context.Context, email string) error {
	f.resends++
	return f.resendErr
}

func (f *fakeAuth) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	f.loginEmail, f.loginPass = email, string(password)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	s := models.Session{UserID: "u1", DisplayName: "alice", Email: email, AccessToken: "tok"}
	if err := f.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error { return f.store.Clear(ctx) }

func (f *fakeAuth) Session(ctx context.Context) (*models.Session, error) {
	return f.store.CurrentUser(ctx)
}

func (f *fakeAuth) IsAuthenticated(ctx context.Context) bool { return f.store.IsAuthenticated(ctx) }

// ------------ fake image service ------------

type fakeImages struct {
	uploaded    *models.UploadedImage
	uploadErr   error
	recognition *models.Recognition
	recognizeErr error
	calls       []string
}

func (f *fakeImages) Upload(_ context.Context, filename string, data []byte) (*models.UploadedImage, error) {
	f.calls = append(f.calls, "upload:"+filename)
	return f.uploaded, f.uploadErr
}

func (f *fakeImages) Recognize(_ context.Context, fileID string) (*models.Recognition, error) {
	f.calls = append(f.calls, "recognize:"+fileID)
	return f.recognition, f.recognizeErr
}

// ------------ fake card service ------------

type fakeCards struct {
	cards   []models.SavedCard
	listErr error
	mutErr  error

	lists   int
	created []models.CardDraft
	updated []models.SavedCard
	deleted []string
}

func (f *fakeCards) List(ctx context.Context) ([]models.SavedCard, error) {
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.SavedCard, len(f.cards))
	for i, c := range f.cards {
		c.ID = i + 1
		out[i] = c
	}
	return out, nil
}

func (f *fakeCards) Create(ctx context.Context, d models.CardDraft) (string, error) {
	if f.mutErr != nil {
		return "", f.mutErr
	}
	f.created = append(f.created, d)
	f.cards = append(f.cards, models.SavedCard{CardID: "new", Name: d.Name, Email: d.Email, Phone: d.Phone, ImageStorage: d.ImageURL})
	return "new", nil
}

func (f *fakeCards) Update(ctx context.Context, c models.SavedCard) error {
	if f.mutErr != nil {
		return f.mutErr
	}
	f.updated = append(f.updated, c)
	return nil
}

func (f *fakeCards) Delete(ctx context.Context, cardID string) error {
	if f.mutErr != nil {
		return f.mutErr
	}
	f.deleted = append(f.deleted, cardID)
	return nil
}

// ------------ fake image downloader ------------

type fakeDownloader struct {
	urls []string
}

func (f *fakeDownloader) Download(_ context.Context, rawURL string) (string, error) {
	f.urls = append(f.urls, rawURL)
	return "download/card.png", nil
}
