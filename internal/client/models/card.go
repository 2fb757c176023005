package models

import "fmt"

// CardDraft is the editable form state of a card being captured.
type CardDraft struct {
	Name     string
	Phone    string
	Email    string
	Address  string
	Website  string
	ImageURL string
}

// DraftFromRecognition takes the first candidate of every entity list.
func DraftFromRecognition(r Recognition, imageURL string) CardDraft {
	return CardDraft{
		Name:     first(r.Name),
		Phone:    first(r.Phone),
		Email:    first(r.Email),
		Address:  first(r.Address),
		Website:  first(r.URL),
		ImageURL: imageURL,
	}
}

// Blank clears every text field but keeps the image reference.
func (d CardDraft) Blank() CardDraft {
	return CardDraft{ImageURL: d.ImageURL}
}

// DraftField names an editable field of CardDraft.
type DraftField string

const (
	FieldName    DraftField = "name"
	FieldPhone   DraftField = "phone"
	FieldEmail   DraftField = "email"
	FieldAddress DraftField = "address"
	FieldWebsite DraftField = "website"
)

// DraftFields lists the editable fields in form order.
var DraftFields = []DraftField{FieldName, FieldPhone, FieldEmail, FieldWebsite, FieldAddress}

// Get returns the value of f.
func (d *CardDraft) Get(f DraftField) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldPhone:
		return d.Phone
	case FieldEmail:
		return d.Email
	case FieldAddress:
		return d.Address
	case FieldWebsite:
		return d.Website
	}
	return ""
}

// Set assigns v to f.
func (d *CardDraft) Set(f DraftField, v string) error {
	switch f {
	case FieldName:
		d.Name = v
	case FieldPhone:
		d.Phone = v
	case FieldEmail:
		d.Email = v
	case FieldAddress:
		d.Address = v
	case FieldWebsite:
		d.Website = v
	default:
		return fmt.Errorf("unknown field %q", f)
	}
	return nil
}

// SavedCard is a card persisted by the backend, in the flat shape returned
// by GET /cards/{user_id}. ID is a 1-based display row number assigned on
// listing; CardID is the backend identity.
type SavedCard struct {
	ID           int    `json:"id"`
	CardID       string `json:"card_id"`
	UserID       string `json:"user_id,omitempty"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	Address      string `json:"address"`
	ImageStorage string `json:"image_storage"`
}

// Draft converts the card into form state.
func (c SavedCard) Draft() CardDraft {
	return CardDraft{
		Name:     c.Name,
		Phone:    c.Phone,
		Email:    c.Email,
		Address:  c.Address,
		Website:  c.Website,
		ImageURL: c.ImageStorage,
	}
}
