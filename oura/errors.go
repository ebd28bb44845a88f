package oura

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Credential errors, raised at construction or call time before any network
// I/O happens.
var (
	// ErrMissingToken indicates no access token was available for a call
	// that requires one.
	ErrMissingToken = errors.New("oura: missing access token")

	// ErrMissingClientID indicates an OAuth client was constructed without
	// a client ID.
	ErrMissingClientID = errors.New("oura: missing client id")

	// ErrMissingClientSecret indicates an OAuth client was constructed
	// without a client secret.
	ErrMissingClientSecret = errors.New("oura: missing client secret")

	// ErrMissingRedirectURI indicates an OAuth client was constructed
	// without a redirect URI.
	ErrMissingRedirectURI = errors.New("oura: missing redirect uri")
)

// Kind discriminates the closed set of API error variants.
type Kind int

const (
	// KindAPI covers any unsuccessful vendor response without a more
	// specific kind, including OAuth token endpoint failures.
	KindAPI Kind = iota

	// KindValidation covers malformed caller input caught before dispatch
	// and vendor HTTP 400 responses.
	KindValidation

	// KindRateLimit covers vendor HTTP 429 responses. The client never
	// retries; backoff policy belongs to the caller.
	KindRateLimit
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindRateLimit:
		return "rate limit"
	default:
		return "api"
	}
}

// Error represents a failed Oura API interaction. Callers branch
// exhaustively on Kind after an errors.As match:
//
//	var apiErr *oura.Error
//	if errors.As(err, &apiErr) {
//	    switch apiErr.Kind {
//	    case oura.KindRateLimit: ...
//	    case oura.KindValidation: ...
//	    case oura.KindAPI: ...
//	    }
//	}
type Error struct {
	Kind       Kind
	StatusCode int    // HTTP status code; zero for pre-dispatch validation failures
	Status     string // HTTP status text
	Detail     string // vendor-supplied detail message, or "No details"
	URL        string // request URL
	Method     string // request method
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("oura %s error: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("oura %s error: %d %s - %s (%s %s)",
		e.Kind, e.StatusCode, e.Status, e.Detail, e.Method, e.URL)
}

// noDetails is the fallback when the vendor error body carries no parseable
// detail field.
const noDetails = "No details"

// errorDetail best-effort extracts the human-readable detail field from a
// vendor error body.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Detail == "" {
		return noDetails
	}
	return payload.Detail
}

// mapHTTPError converts an unsuccessful HTTP response to the matching Error
// kind. 400 and 429 get their own kinds so callers can branch on them;
// everything else is a generic API error.
func mapHTTPError(resp *http.Response, body []byte) error {
	e := &Error{
		Kind:       KindAPI,
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
		Detail:     errorDetail(body),
	}
	if resp.Request != nil {
		e.URL = resp.Request.URL.String()
		e.Method = resp.Request.Method
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		e.Kind = KindValidation
	case http.StatusTooManyRequests:
		e.Kind = KindRateLimit
	}
	return e
}

// validationError reports malformed caller input before any request is
// dispatched.
func validationError(format string, args ...any) error {
	return &Error{Kind: KindValidation, Detail: fmt.Sprintf(format, args...)}
}
