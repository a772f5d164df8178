// Package canvasclient provides the main entry point for creating Canvas API clients
package canvasclient

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/ntucool/canvas/internal/client"
	"github.com/ntucool/canvas/pkg/canvas"
)

// New creates a new Canvas API client.
func New(config *canvas.Config) (canvas.Client, error) {
	if config == nil {
		return nil, canvas.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, canvas.ErrBaseURLRequired
	}

	// Normalize base URL
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	// Use the internal client implementation
	canvasClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return canvasClient, nil
}

// NewWithToken creates a client for a deployment using a user-generated
// access token.
func NewWithToken(baseURL, accessToken string) (canvas.Client, error) {
	return New(&canvas.Config{
		BaseURL:     baseURL,
		AccessToken: accessToken,
	})
}

// NewWithCookies creates a client that authenticates through a browser
// session instead of an access token. The cookies are loaded into a fresh
// jar scoped to the deployment; write requests pick up the CSRF header
// from the jar automatically.
func NewWithCookies(baseURL string, cookies []*http.Cookie) (canvas.Client, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	origin, err := parseOrigin(baseURL)
	if err != nil {
		return nil, err
	}

	jar.SetCookies(origin, cookies)

	return New(&canvas.Config{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Jar: jar},
	})
}

func parseOrigin(baseURL string) (*url.URL, error) {
	origin, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	return origin, nil
}
