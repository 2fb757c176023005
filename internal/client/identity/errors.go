package identity

import (
	"errors"

	"github.com/aws/smithy-go"
)

// ProviderError carries an error reported by the identity provider. Its
// message is shown to the user as is.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// providerError converts SDK API errors into *ProviderError and returns any
// other error (transport, context) unchanged.
func providerError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &ProviderError{Code: apiErr.ErrorCode(), Message: apiErr.ErrorMessage()}
	}
	return err
}
