package views

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/cardscan/internal/client/models"
	"github.com/dmitrijs2005/cardscan/internal/client/services"
	"github.com/dmitrijs2005/cardscan/internal/common"
)

// ListState is one of four mutually exclusive render branches.
type ListState int

const (
	ListLoading ListState = iota
	ListError
	ListEmpty
	ListPopulated
)

func (s ListState) String() string {
	switch s {
	case ListError:
		return "error"
	case ListEmpty:
		return "empty"
	case ListPopulated:
		return "populated"
	}
	return "loading"
}

// ListScreen shows the user's saved cards. It caches the last listing and
// re-reads it in full after every successful create, update or delete.
type ListScreen struct {
	auth  services.AuthService
	cards services.CardService

	state ListState
	items []models.SavedCard
	err   error
}

func NewListScreen(auth services.AuthService, cards services.CardService) *ListScreen {
	return &ListScreen{auth: auth, cards: cards}
}

// Mount guards on the session and loads the list.
func (s *ListScreen) Mount(ctx context.Context) error {
	u, err := s.auth.Session(ctx)
	if err != nil {
		return err
	}
	if !u.Valid() {
		return common.ErrNotAuthenticated
	}

	s.Reload(ctx)
	return nil
}

// Reload fetches the list and settles the render state.
func (s *ListScreen) Reload(ctx context.Context) {
	s.state, s.items, s.err = ListLoading, nil, nil

	cards, err := s.cards.List(ctx)
	switch {
	case err != nil:
		s.state, s.err = ListError, err
	case len(cards) == 0:
		s.state = ListEmpty
	default:
		s.state, s.items = ListPopulated, cards
	}
}

func (s *ListScreen) State() ListState { return s.state }

func (s *ListScreen) Cards() []models.SavedCard { return s.items }

func (s *ListScreen) Err() error { return s.err }

// Card returns the card with display row id.
func (s *ListScreen) Card(id int) (models.SavedCard, bool) {
	for _, c := range s.items {
		if c.ID == id {
			return c, true
		}
	}
	return models.SavedCard{}, false
}

// Create requires name and email.
func (s *ListScreen) Create(ctx context.Context, d models.CardDraft) error {
	if err := services.ValidateCreate(d); err != nil {
		return err
	}
	if _, err := s.cards.Create(ctx, d); err != nil {
		return err
	}
	s.Reload(ctx)
	return nil
}

func (s *ListScreen) Update(ctx context.Context, c models.SavedCard) error {
	if err := s.cards.Update(ctx, c); err != nil {
		return err
	}
	s.Reload(ctx)
	return nil
}

func (s *ListScreen) Delete(ctx context.Context, cardID string) error {
	if err := s.cards.Delete(ctx, cardID); err != nil {
		return err
	}
	s.Reload(ctx)
	return nil
}

// ErrorText is the message shown in the error branch: the response body for
// backend errors, the error text otherwise.
func ErrorText(err error) string {
	var re *services.RepositoryError
	if errors.As(err, &re) && re.Body != "" {
		return re.Body
	}
	return err.Error()
}

func (s *ListScreen) Render(w io.Writer) {
	switch s.state {
	case ListLoading:
		fmt.Fprintln(w, dimStyle.Render("Loading..."))
	case ListError:
		fmt.Fprintln(w, Alert("Error: "+ErrorText(s.err)))
	case ListEmpty:
		fmt.Fprintln(w, dimStyle.Render("No cards saved yet."))
	case ListPopulated:
		fmt.Fprintln(w, CardTable(s.items))
	}
}
