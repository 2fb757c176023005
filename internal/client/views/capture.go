package views

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/cardscan/internal/client/models"
	"github.com/dmitrijs2005/cardscan/internal/client/services"
	"github.com/dmitrijs2005/cardscan/internal/common"
)

// CaptureScreen is the capture and review form. A file selection shows a
// local preview, uploads the image and fills the form from recognition.
type CaptureScreen struct {
	auth   services.AuthService
	images services.ImageService
	cards  services.CardService

	user    *models.Session
	draft   models.CardDraft
	preview *Preview

	readFile  func(string) ([]byte, error)
	onPreview func(Preview)
}

func NewCaptureScreen(auth services.AuthService, images services.ImageService, cards services.CardService) *CaptureScreen {
	return &CaptureScreen{auth: auth, images: images, cards: cards, readFile: os.ReadFile}
}

// Mount starts a new capture. Without a session it returns
// common.ErrNotAuthenticated and the caller redirects to login.
func (s *CaptureScreen) Mount(ctx context.Context) error {
	u, err := s.auth.Session(ctx)
	if err != nil {
		return err
	}
	if !u.Valid() {
		return common.ErrNotAuthenticated
	}

	s.user = u
	s.draft = models.CardDraft{}
	s.preview = nil
	return nil
}

func (s *CaptureScreen) Draft() models.CardDraft { return s.draft }

// OnPreview registers fn to be called with the local preview before the
// image is uploaded.
func (s *CaptureScreen) OnPreview(fn func(Preview)) { s.onPreview = fn }

// Mounted reports whether a capture is in progress.
func (s *CaptureScreen) Mounted() bool { return s.user.Valid() }

// Unmount discards the form.
func (s *CaptureScreen) Unmount() {
	s.user, s.draft, s.preview = nil, models.CardDraft{}, nil
}

func (s *CaptureScreen) Preview() *Preview { return s.preview }

// SelectFile previews the file, then uploads it and runs recognition. On a
// failure in either phase the form is blanked; the preview and the image
// reference stay.
func (s *CaptureScreen) SelectFile(ctx context.Context, path string) error {
	data, err := s.readFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	p := LocalPreview(path, data)
	s.preview = &p
	if s.onPreview != nil {
		s.onPreview(p)
	}

	uploaded, err := s.images.Upload(ctx, filepath.Base(path), data)
	if err != nil {
		s.draft = s.draft.Blank()
		return err
	}
	s.draft.ImageURL = uploaded.FileURL

	rec, err := s.images.Recognize(ctx, uploaded.FileID)
	if err != nil {
		s.draft = s.draft.Blank()
		return err
	}

	s.draft = models.DraftFromRecognition(*rec, uploaded.FileURL)
	return nil
}

// Edit changes one form field.
func (s *CaptureScreen) Edit(field models.DraftField, value string) error {
	return s.draft.Set(field, value)
}

// Submit saves the draft. A missing user id blocks the request.
func (s *CaptureScreen) Submit(ctx context.Context) (string, error) {
	if !s.user.Valid() {
		return "", common.ErrNotAuthenticated
	}

	id, err := s.cards.Create(ctx, s.draft)
	if err != nil {
		return "", err
	}

	s.draft = models.CardDraft{}
	s.preview = nil
	return id, nil
}

// Render writes the preview and the form.
func (s *CaptureScreen) Render(w io.Writer) {
	if s.preview != nil {
		fmt.Fprintln(w, dimStyle.Render("Image: "+s.preview.String()))
	}
	if s.draft.ImageURL != "" {
		fmt.Fprintln(w, dimStyle.Render("Stored at: "+s.draft.ImageURL))
	}
	for _, f := range models.DraftFields {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(string(f)), s.draft.Get(f))
	}
}
