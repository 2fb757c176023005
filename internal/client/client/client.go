package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/cardscan/internal/client/models"
	"github.com/dmitrijs2005/cardscan/internal/logging"
	"github.com/google/uuid"
)

// Client is the backend contract used by the services.
type Client interface {
	UploadImage(ctx context.Context, filename string, data []byte) (*models.UploadedImage, error)
	RecognizeEntities(ctx context.Context, fileID string) (*models.Recognition, error)
	ListCards(ctx context.Context, userID string) ([]byte, error)
	CreateCard(ctx context.Context, card CreateCardRequest) ([]byte, error)
	UpdateCard(ctx context.Context, card UpdateCardRequest) ([]byte, error)
	DeleteCard(ctx context.Context, userID, cardID string) ([]byte, error)
}

// UploadImageRequest is the body of POST /images. FileBytes is plain base64
// without a data URI prefix.
type UploadImageRequest struct {
	Filename  string `json:"filename"`
	FileBytes string `json:"filebytes"`
}

// CreateCardRequest is the body of POST /cards. CardID is always sent as
// null; the backend assigns it.
type CreateCardRequest struct {
	CardID           *string  `json:"card_id"`
	UserID           string   `json:"user_id"`
	UserNames        string   `json:"user_names"`
	TelephoneNumbers []string `json:"telephone_numbers"`
	EmailAddresses   []string `json:"email_addresses"`
	CompanyName      string   `json:"company_name"`
	CompanyWebsite   string   `json:"company_website"`
	CompanyAddress   string   `json:"company_address"`
	ImageStorage     string   `json:"image_storage"`
}

// UpdateCardRequest is the flat body of PUT /cards.
type UpdateCardRequest struct {
	UserID       string `json:"user_id"`
	CardID       string `json:"card_id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	Address      string `json:"address"`
	ImageStorage string `json:"image_storage"`
}

// TokenSource returns the bearer token for the next request, or "" for none.
type TokenSource func(ctx context.Context) string

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
	log        logging.Logger
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.token = ts }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *HTTPClient) UploadImage(ctx context.Context, filename string, data []byte) (*models.UploadedImage, error) {
	body := UploadImageRequest{
		Filename:  filename,
		FileBytes: base64.StdEncoding.EncodeToString(data),
	}

	var out models.UploadedImage
	if err := c.doJSON(ctx, http.MethodPost, "/images", body, &out); err != nil {
		return nil, fmt.Errorf("client.UploadImage: %w", err)
	}
	return &out, nil
}

func (c *HTTPClient) RecognizeEntities(ctx context.Context, fileID string) (*models.Recognition, error) {
	var out models.Recognition
	path := "/images/" + url.PathEscape(fileID) + "/recognize_entities"
	if err := c.doJSON(ctx, http.MethodPost, path, struct{}{}, &out); err != nil {
		return nil, fmt.Errorf("client.RecognizeEntities: %w", err)
	}
	return &out, nil
}

// ListCards returns the raw response body; its shape is checked by the caller.
func (c *HTTPClient) ListCards(ctx context.Context, userID string) ([]byte, error) {
	data, err := c.doRequest(ctx, http.MethodGet, "/cards/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, fmt.Errorf("client.ListCards: %w", err)
	}
	return data, nil
}

func (c *HTTPClient) CreateCard(ctx context.Context, card CreateCardRequest) ([]byte, error) {
	card.CardID = nil
	data, err := c.doRequest(ctx, http.MethodPost, "/cards", card)
	if err != nil {
		return nil, fmt.Errorf("client.CreateCard: %w", err)
	}
	return data, nil
}

func (c *HTTPClient) UpdateCard(ctx context.Context, card UpdateCardRequest) ([]byte, error) {
	data, err := c.doRequest(ctx, http.MethodPut, "/cards", card)
	if err != nil {
		return nil, fmt.Errorf("client.UpdateCard: %w", err)
	}
	return data, nil
}

func (c *HTTPClient) DeleteCard(ctx context.Context, userID, cardID string) ([]byte, error) {
	path := "/cards/" + url.PathEscape(userID) + "/" + url.PathEscape(cardID)
	data, err := c.doRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return nil, fmt.Errorf("client.DeleteCard: %w", err)
	}
	return data, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	data, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) doRequest(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	if c.token != nil {
		if tok := c.token(ctx); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "backend request failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	c.log.Debug(ctx, "backend request", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}
	return respBody, nil
}
