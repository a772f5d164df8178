// Package http implements the transport layer for the Canvas API:
// URL assembly, header injection, Link header parsing, and response
// decoding. Requests are synchronous and single-shot; there is no retry,
// caching, or batching by design.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ntucool/canvas/internal/auth"
	"github.com/ntucool/canvas/pkg/canvas"
	"github.com/peterhellberg/link"
)

// Canvas prefixes JSON bodies with an anti-hijacking guard that has to be
// stripped before decoding.
var jsonGuardPrefix = []byte("while(1);")

const (
	csrfCookieName  = "_csrf_token"
	csrfHeaderName  = "X-CSRF-Token"
	defaultTimeout  = 30 * time.Second
	defaultAgent    = "canvas-go"
	headerAccept    = "application/json+canvas-string-ids, application/json"
	headerMediaJSON = "application/json"
)

// Client is the HTTP transport for the Canvas API.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokenManager auth.TokenManager
	userAgent    string
	logger       canvas.Logger
	debug        bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger for the client.
func WithLogger(logger canvas.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = agent
	}
}

// WithHTTPClient supplies the underlying *http.Client, typically one
// carrying a cookie jar with an authenticated session. The transport
// borrows it; the caller keeps ownership.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the default timeout on the underlying http.Client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Canvas HTTP client. tokenManager may be nil for
// cookie-session or anonymous use.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   &http.Client{Timeout: defaultTimeout},
		tokenManager: tokenManager,
		userAgent:    defaultAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the deployment origin this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request represents an HTTP request. Path may be relative to the base
// URL or a fully absolute URL (pagination follows absolute links the
// server handed back). Query pairs keep their order on the wire.
type Request struct {
	Method  string
	Path    string
	Query   []canvas.Pair
	Body    any
	Headers map[string]string
}

// Response represents an HTTP response with the anti-hijacking prefix
// already stripped from Body and the Link header parsed into Links.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Links      canvas.Links
}

// Do executes the request. On 4xx/5xx it returns the response together
// with a *canvas.HTTPError (or *canvas.AuthenticationError for the
// re-authenticate sub-case of 401).
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.resolveURL(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.buildRequest(ctx, req, fullURL)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	body = bytes.TrimPrefix(body, jsonGuardPrefix)

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
		Links:      parseLinks(httpResp.Header),
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
			"links":  len(resp.Links),
		})
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, c.statusError(req.Method, fullURL, resp)
	}

	return resp, nil
}

// RequestJSON implements canvas.Session: one request against an absolute
// URL, returning the validated JSON body and the parsed link relations.
func (c *Client) RequestJSON(ctx context.Context, method, rawurl string) (json.RawMessage, canvas.Links, error) {
	resp, err := c.Do(ctx, &Request{Method: method, Path: rawurl})
	if err != nil {
		return nil, nil, err
	}

	if !json.Valid(resp.Body) {
		return nil, nil, &canvas.DecodeError{
			Err:  errors.New("invalid JSON"),
			URL:  rawurl,
			Body: resp.Body,
		}
	}

	return json.RawMessage(resp.Body), resp.Links, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query []canvas.Pair) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with query-encoded parameters, the form
// Canvas write endpoints accept.
func (c *Client) Post(ctx context.Context, path string, query []canvas.Pair) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Query: query})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, query []canvas.Pair) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Query: query})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query []canvas.Pair) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Query: query})
}

// GetJSON performs a GET and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, path string, query []canvas.Pair, out any) error {
	resp, err := c.Get(ctx, path, query)
	if err != nil {
		return err
	}

	return c.decode(path, resp, out)
}

// decode unmarshals a response body, wrapping parse failures in
// *canvas.DecodeError.
func (c *Client) decode(path string, resp *Response, out any) error {
	err := json.Unmarshal(resp.Body, out)
	if err != nil {
		return &canvas.DecodeError{Err: err, URL: path, Body: resp.Body}
	}

	return nil
}

// Decode exposes decode for the resource clients.
func (c *Client) Decode(path string, resp *Response, out any) error {
	return c.decode(path, resp, out)
}

func (c *Client) resolveURL(req *Request) (string, error) {
	target := req.Path

	if !strings.Contains(target, "://") {
		base, err := url.Parse(c.baseURL)
		if err != nil {
			return "", fmt.Errorf("parsing base URL: %w", err)
		}

		ref, err := url.Parse(target)
		if err != nil {
			return "", fmt.Errorf("parsing request path: %w", err)
		}

		target = base.ResolveReference(ref).String()
	}

	if len(req.Query) > 0 {
		parsed, err := url.Parse(target)
		if err != nil {
			return "", fmt.Errorf("parsing request URL: %w", err)
		}

		parsed.RawQuery = canvas.EncodePairs(req.Query)
		target = parsed.String()
	}

	return target, nil
}

func (c *Client) buildRequest(ctx context.Context, req *Request, fullURL string) (*http.Request, error) {
	var bodyReader io.Reader

	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", headerAccept)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", headerMediaJSON)
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}

		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	// Write methods on cookie-session deployments require the CSRF token
	// mirrored from the session cookie into a header.
	switch req.Method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		if csrf := c.csrfToken(httpReq.URL); csrf != "" {
			httpReq.Header.Set(csrfHeaderName, csrf)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// csrfToken pulls the _csrf_token cookie from the session jar, if any.
func (c *Client) csrfToken(u *url.URL) string {
	if c.httpClient.Jar == nil {
		return ""
	}

	for _, cookie := range c.httpClient.Jar.Cookies(u) {
		if cookie.Name == csrfCookieName {
			token, err := url.QueryUnescape(cookie.Value)
			if err != nil {
				return cookie.Value
			}

			return token
		}
	}

	return ""
}

// statusError maps a 4xx/5xx response to the error taxonomy. The decoded
// error body is attached when the response carried parseable JSON.
func (c *Client) statusError(method, fullURL string, resp *Response) error {
	httpErr := canvas.HTTPError{
		StatusCode: resp.StatusCode,
		Method:     method,
		URL:        fullURL,
		Body:       resp.Body,
	}

	var data any
	if err := json.Unmarshal(resp.Body, &data); err == nil {
		httpErr.Data = data
	}

	if resp.StatusCode == http.StatusUnauthorized && resp.Headers.Get("WWW-Authenticate") != "" {
		return &canvas.AuthenticationError{HTTPError: httpErr}
	}

	return &httpErr
}

func parseLinks(header http.Header) canvas.Links {
	group := link.ParseHeader(header)
	if len(group) == 0 {
		return canvas.Links{}
	}

	links := make(canvas.Links, len(group))
	for rel, l := range group {
		links[rel] = canvas.Link{URL: l.URI, Rel: rel}
	}

	return links
}
