package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/cardscan/internal/client/client"
	"github.com/dmitrijs2005/cardscan/internal/client/models"
	"github.com/dmitrijs2005/cardscan/internal/client/session"
	"github.com/dmitrijs2005/cardscan/internal/common"
	"github.com/dmitrijs2005/cardscan/internal/logging"
)

// CardService manages the current user's saved cards. Every call reads the
// user id from the session store and fails with common.ErrNotAuthenticated
// before any request when there is none.
//
// Mutations return only success or failure. Callers re-read the list after a
// successful mutation instead of merging the response.
type CardService interface {
	List(ctx context.Context) ([]models.SavedCard, error)
	Create(ctx context.Context, d models.CardDraft) (string, error)
	Update(ctx context.Context, c models.SavedCard) error
	Delete(ctx context.Context, cardID string) error
}

type cardService struct {
	client client.Client
	store  session.Store
	log    logging.Logger
}

func NewCardService(c client.Client, store session.Store, log logging.Logger) CardService {
	return &cardService{client: c, store: store, log: log}
}

func (s *cardService) userID(ctx context.Context) (string, error) {
	u, err := s.store.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	if !u.Valid() {
		return "", common.ErrNotAuthenticated
	}
	return u.UserID, nil
}

// List returns the user's cards numbered from 1. A successful response that
// is not a JSON array yields an empty list.
func (s *cardService) List(ctx context.Context) ([]models.SavedCard, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.client.ListCards(ctx, uid)
	if err != nil {
		return nil, repositoryError("list cards", err)
	}

	cards, skipped, err := decodeCards(data)
	if err != nil {
		s.log.Warn(ctx, "unexpected cards response, treating as empty", "err", err)
		return []models.SavedCard{}, nil
	}
	if skipped > 0 {
		s.log.Warn(ctx, "skipped malformed card rows", "count", skipped)
	}
	return cards, nil
}

// Create sends a new card; the backend assigns its id, which is returned
// when the response carries one.
func (s *cardService) Create(ctx context.Context, d models.CardDraft) (string, error) {
	uid, err := s.userID(ctx)
	if err != nil {
		return "", err
	}

	userNames := d.Name
	if strings.TrimSpace(userNames) == "" {
		userNames = "Unknown"
	}

	req := client.CreateCardRequest{
		UserID:           uid,
		UserNames:        userNames,
		TelephoneNumbers: []string{d.Phone},
		EmailAddresses:   []string{d.Email},
		CompanyName:      d.Name,
		CompanyWebsite:   d.Website,
		CompanyAddress:   d.Address,
		ImageStorage:     d.ImageURL,
	}

	data, err := s.client.CreateCard(ctx, req)
	if err != nil {
		return "", repositoryError("create card", err)
	}

	var created struct {
		CardID any `json:"card_id"`
	}
	if err := json.Unmarshal(data, &created); err != nil {
		s.log.Debug(ctx, "create response not decoded", "err", err)
		return "", nil
	}
	return stringify(created.CardID), nil
}

func (s *cardService) Update(ctx context.Context, c models.SavedCard) error {
	uid, err := s.userID(ctx)
	if err != nil {
		return err
	}
	if err := ValidateUpdate(c); err != nil {
		return err
	}

	_, err = s.client.UpdateCard(ctx, client.UpdateCardRequest{
		UserID:       uid,
		CardID:       c.CardID,
		Name:         c.Name,
		Phone:        c.Phone,
		Email:        c.Email,
		Website:      c.Website,
		Address:      c.Address,
		ImageStorage: c.ImageStorage,
	})
	if err != nil {
		return repositoryError("update card", err)
	}
	return nil
}

func (s *cardService) Delete(ctx context.Context, cardID string) error {
	uid, err := s.userID(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(cardID) == "" {
		return common.Required("card_id", "card id is required")
	}

	if _, err := s.client.DeleteCard(ctx, uid, cardID); err != nil {
		return repositoryError("delete card", err)
	}
	return nil
}

// ValidateCreate checks the fields required when creating from the list.
func ValidateCreate(d models.CardDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return common.Required("name", "name is required")
	}
	if strings.TrimSpace(d.Email) == "" {
		return common.Required("email", "email is required")
	}
	return nil
}

// ValidateUpdate checks card id, name and email.
func ValidateUpdate(c models.SavedCard) error {
	if strings.TrimSpace(c.CardID) == "" {
		return common.Required("card_id", "card id is required")
	}
	return ValidateCreate(c.Draft())
}

var errNotArray = errors.New("cards response is not an array")

// Alternative backend field names, most specific first.
var cardFieldNames = map[string][]string{
	"name":    {"name", "company_name", "user_names"},
	"phone":   {"phone", "telephone_numbers"},
	"email":   {"email", "email_addresses"},
	"website": {"website", "company_website"},
	"address": {"address", "company_address"},
}

// decodeCards maps a list response to cards. It returns errNotArray (or a
// JSON error) when the body is not an array; rows that are not objects are
// skipped and counted.
func decodeCards(data []byte) ([]models.SavedCard, int, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) {
			return nil, 0, errNotArray
		}
		return nil, 0, err
	}
	if rows == nil {
		return nil, 0, errNotArray
	}

	cards := make([]models.SavedCard, 0, len(rows))
	skipped := 0
	for _, raw := range rows {
		var row map[string]any
		if err := json.Unmarshal(raw, &row); err != nil || row == nil {
			skipped++
			continue
		}

		cards = append(cards, models.SavedCard{
			ID:           len(cards) + 1,
			CardID:       stringify(row["card_id"]),
			UserID:       stringify(row["user_id"]),
			Name:         pick(row, "name"),
			Phone:        pick(row, "phone"),
			Email:        pick(row, "email"),
			Website:      pick(row, "website"),
			Address:      pick(row, "address"),
			ImageStorage: stringify(row["image_storage"]),
		})
	}
	return cards, skipped, nil
}

func pick(row map[string]any, field string) string {
	for _, name := range cardFieldNames[field] {
		if v := stringify(row[name]); v != "" {
			return v
		}
	}
	return ""
}

// stringify renders a JSON value as a display string. Arrays yield their
// first non-empty element.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		for _, e := range t {
			if s := stringify(e); s != "" {
				return s
			}
		}
		return ""
	default:
		return fmt.Sprint(t)
	}
}
