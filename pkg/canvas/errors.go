package canvas

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrBaseURLRequired      = errors.New("base URL is required")
	ErrLinkNotFound         = errors.New("link relation not found")
	ErrMissingLinkHeader    = errors.New("response carried no Link header")
	ErrMalformedPair        = errors.New("malformed query pair")
	ErrUnsupportedQueryType = errors.New("unsupported query value type")
	ErrInvalidMode          = errors.New("invalid pagination mode")
	ErrNotCollection        = errors.New("response body is not a JSON array")
)

// HTTPError represents a 4xx or 5xx response from the Canvas API. Data
// holds the decoded error body when the response carried parseable JSON.
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
	Body       []byte
	Data       any
}

// Error implements the error interface. The message mirrors the
// "<code> Client Error: <reason> for url: <url>" form Canvas clients have
// historically logged.
func (e *HTTPError) Error() string {
	kind := "Client"
	if e.StatusCode >= 500 {
		kind = "Server"
	}

	return fmt.Sprintf("%d %s Error: %s for url: %s", e.StatusCode, kind, http.StatusText(e.StatusCode), e.URL)
}

// AuthenticationError is the 401 sub-case distinguished by a
// WWW-Authenticate response header: the session or token has expired and
// the caller should re-authenticate rather than treat this as a plain
// permission denial.
type AuthenticationError struct {
	HTTPError
}

// Unwrap lets errors.As match the embedded *HTTPError too.
func (e *AuthenticationError) Unwrap() error {
	return &e.HTTPError
}

// DecodeError reports a response body that was not valid JSON when JSON
// was expected. Body retains the offending text for diagnostics.
type DecodeError struct {
	Err  error
	URL  string
	Body []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is a 401 response of either kind.
func IsUnauthorized(err error) bool {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsAuthenticationExpired checks if the error is the re-authenticate
// sub-case of 401.
func IsAuthenticationExpired(err error) bool {
	authErr := &AuthenticationError{}

	return errors.As(err, &authErr)
}
