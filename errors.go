package imagify

import (
	"errors"
	"fmt"
)

// GenericFailureMessage is the user-facing fallback when a provider error
// carries no message of its own.
const GenericFailureMessage = "Failed to generate image. Please try again."

// ProviderErrorKind classifies provider failures by what went wrong.
type ProviderErrorKind string

const (
	// KindHTTPStatus indicates the backend answered with a non-2xx status.
	KindHTTPStatus ProviderErrorKind = "http_status"

	// KindMalformedResponse indicates a 2xx response that did not contain
	// the expected image payload.
	KindMalformedResponse ProviderErrorKind = "malformed_response"

	// KindNoImage indicates the backend answered successfully but produced
	// no image content.
	KindNoImage ProviderErrorKind = "no_image"

	// KindNetwork indicates the request never completed at the transport level.
	KindNetwork ProviderErrorKind = "network"

	// KindBadRequest indicates the request could not be built from the
	// given options.
	KindBadRequest ProviderErrorKind = "bad_request"
)

// ProviderError is a categorized failure from an image generation backend.
type ProviderError struct {
	Provider Provider
	Kind     ProviderErrorKind
	Status   int    // HTTP status code, 0 if not applicable
	Msg      string // user-presentable message
	Cause    error  // underlying error
}

// Error returns the error message.
func (e *ProviderError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Kind)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewHTTPStatusError creates a ProviderError for a non-2xx backend response.
func NewHTTPStatusError(provider Provider, status int, cause error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Kind:     KindHTTPStatus,
		Status:   status,
		Msg:      fmt.Sprintf("%s API request failed: %d", provider, status),
		Cause:    cause,
	}
}

// NewMalformedResponseError creates a ProviderError for a response missing
// the expected image payload.
func NewMalformedResponseError(provider Provider, msg string) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Kind:     KindMalformedResponse,
		Msg:      msg,
	}
}

// NewNoImageError creates a ProviderError for a successful response that
// contained no image content.
func NewNoImageError(provider Provider) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Kind:     KindNoImage,
		Msg:      fmt.Sprintf("no image generated from %s", provider),
	}
}

// NewNetworkError creates a ProviderError for a transport-level failure.
func NewNetworkError(provider Provider, cause error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Kind:     KindNetwork,
		Msg:      fmt.Sprintf("%s request failed: %v", provider, cause),
		Cause:    cause,
	}
}

// NewBadRequestError creates a ProviderError for a request that could not
// be built from the given options.
func NewBadRequestError(provider Provider, msg string) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Kind:     KindBadRequest,
		Msg:      msg,
	}
}

// AsProviderError returns the ProviderError in err's chain, if any.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// UserMessage derives the user-facing message for a failed generation.
// It falls back to [GenericFailureMessage] when the error carries no
// message of its own.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return GenericFailureMessage
}
