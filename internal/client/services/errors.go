package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cardscan/internal/client/client"
)

// ErrNewPasswordRequired is returned by Login when the provider asks the
// user to choose a new password before signing in.
var ErrNewPasswordRequired = errors.New("New password required") //nolint:staticcheck // shown to the user as is

var errMissingFileID = errors.New("response has no fileId")

// UploadError means the image could not be uploaded.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// RecognitionError means entity recognition failed, either with a non-2xx
// status (Err) or with an error reported in the response body (Message).
type RecognitionError struct {
	Message string
	Err     error
}

func (e *RecognitionError) Error() string {
	if e.Message != "" {
		return "recognition failed: " + e.Message
	}
	return fmt.Sprintf("recognition failed: %v", e.Err)
}

func (e *RecognitionError) Unwrap() error { return e.Err }

// RepositoryError is a non-2xx answer from the cards endpoints.
type RepositoryError struct {
	Status int
	Body   string
}

func (e *RepositoryError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("cards request failed with status %d", e.Status)
	}
	return fmt.Sprintf("cards request failed with status %d: %s", e.Status, e.Body)
}

// repositoryError turns an HTTP error from the client into *RepositoryError
// and passes transport errors through.
func repositoryError(op string, err error) error {
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) {
		return &RepositoryError{Status: httpErr.StatusCode, Body: httpErr.Body}
	}
	return fmt.Errorf("%s: %w", op, err)
}
