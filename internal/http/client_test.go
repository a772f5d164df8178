package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ntucool/canvas/internal/auth"
	canvashttp "github.com/ntucool/canvas/internal/http"
	"github.com/ntucool/canvas/pkg/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/courses", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json+canvas-string-ids, application/json", request.Header.Get("Accept"))

			response := []map[string]any{{"id": 1, "name": "Calculus"}}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		tokenManager := auth.NewStaticTokenManager("test-token")
		client := canvashttp.NewClient(server.URL, tokenManager)

		req := &canvashttp.Request{
			Method: "GET",
			Path:   "/api/v1/courses",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result []map[string]any

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("query pair order is preserved", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "per_page=100&include%5B%5D=term&include%5B%5D=sections", request.URL.RawQuery)
			_, _ = writer.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := canvashttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/api/v1/courses", []canvas.Pair{
			{Name: "per_page", Value: "100"},
			{Name: "include[]", Value: "term"},
			{Name: "include[]", Value: "sections"},
		})
		require.NoError(t, err)
	})

	t.Run("anti-hijacking prefix is stripped", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`while(1);[{"id":1}]`))
		}))
		defer server.Close()

		client := canvashttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/api/v1/courses", nil)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1}]`, string(resp.Body))
	})

	t.Run("link header is parsed", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Link",
				`<https://example.test/api/v1/courses?page=2>; rel="next", `+
					`<https://example.test/api/v1/courses?page=1>; rel="current"`)
			_, _ = writer.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := canvashttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/api/v1/courses", nil)
		require.NoError(t, err)

		require.True(t, resp.Links.Has(canvas.RelNext))
		assert.Equal(t, "https://example.test/api/v1/courses?page=2", resp.Links[canvas.RelNext].URL)
		assert.True(t, resp.Links.Has(canvas.RelCurrent))
	})

	t.Run("absolute URL bypasses base resolution", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/courses", request.URL.Path)
			assert.Equal(t, "page=2", request.URL.RawQuery)
			_, _ = writer.Write([]byte(`[]`))
		}))
		defer server.Close()

		// The client's configured base points elsewhere; the absolute URL
		// wins, the way pagination follows server-issued links.
		client := canvashttp.NewClient("https://unreachable.invalid", nil)

		req := &canvashttp.Request{
			Method: "GET",
			Path:   server.URL + "/api/v1/courses?page=2",
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_StatusErrors(t *testing.T) {
	t.Parallel()
	t.Run("404 maps to HTTPError with decoded body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"errors":[{"message":"The specified resource does not exist."}]}`))
		}))
		defer server.Close()

		client := canvashttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/api/v1/courses/999", nil)
		require.Error(t, err)
		assert.True(t, canvas.IsNotFound(err))

		httpErr := &canvas.HTTPError{}
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
		assert.NotNil(t, httpErr.Data)
	})

	t.Run("401 with WWW-Authenticate is an AuthenticationError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("WWW-Authenticate", `Bearer realm="canvas-lms"`)
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"errors":[{"message":"Invalid access token."}]}`))
		}))
		defer server.Close()

		client := canvashttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/api/v1/courses", nil)
		require.Error(t, err)
		assert.True(t, canvas.IsAuthenticationExpired(err))
		assert.True(t, canvas.IsUnauthorized(err))
	})

	t.Run("401 without WWW-Authenticate stays a plain HTTPError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
			_, _ = writer.Write([]byte(`{"status":"unauthorized"}`))
		}))
		defer server.Close()

		client := canvashttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/api/v1/courses", nil)
		require.Error(t, err)
		assert.True(t, canvas.IsUnauthorized(err))
		assert.False(t, canvas.IsAuthenticationExpired(err))
	})

	t.Run("500 maps to a server error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`oops`))
		}))
		defer server.Close()

		client := canvashttp.NewClient(server.URL, nil)

		_, err := client.Get(context.Background(), "/api/v1/courses", nil)
		require.Error(t, err)

		httpErr := &canvas.HTTPError{}
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
		assert.Contains(t, httpErr.Error(), "Server Error")
	})
}

func TestClient_CSRFHeader(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method == http.MethodPut {
			// The jar cookie is percent-encoded; the header carries the
			// decoded token.
			assert.Equal(t, "to+ken=", request.Header.Get("X-CSRF-Token"))
		}

		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)

	jar.SetCookies(serverURL, []*http.Cookie{
		{Name: "_csrf_token", Value: "to%2Bken%3D"},
	})

	client := canvashttp.NewClient(server.URL, nil,
		canvashttp.WithHTTPClient(&http.Client{Jar: jar}))

	_, err = client.Put(context.Background(), "/api/v1/users/self/bookmarks/1", nil)
	require.NoError(t, err)
}

func TestClient_RequestJSON(t *testing.T) {
	t.Parallel()
	t.Run("valid JSON with links", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Link", `<https://example.test/next>; rel="next"`)
			_, _ = writer.Write([]byte(`while(1);[{"id":1}]`))
		}))
		defer server.Close()

		client := canvashttp.NewClient(server.URL, nil)

		body, links, err := client.RequestJSON(context.Background(), "GET", server.URL+"/api/v1/courses")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1}]`, string(body))
		assert.True(t, links.Has(canvas.RelNext))
	})

	t.Run("non-JSON body is a DecodeError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`<html>maintenance window</html>`))
		}))
		defer server.Close()

		client := canvashttp.NewClient(server.URL, nil)

		_, _, err := client.RequestJSON(context.Background(), "GET", server.URL+"/api/v1/courses")
		require.Error(t, err)

		decodeErr := &canvas.DecodeError{}
		require.ErrorAs(t, err, &decodeErr)
		assert.Contains(t, string(decodeErr.Body), "maintenance")
	})
}

func TestClient_GetJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`while(1);{"id":42,"name":"Linear Algebra"}`))
	}))
	defer server.Close()

	client := canvashttp.NewClient(server.URL, nil)

	var course canvas.Course

	err := client.GetJSON(context.Background(), "/api/v1/courses/42", nil, &course)
	require.NoError(t, err)
	assert.Equal(t, int64(42), course.ID)
	assert.Equal(t, "Linear Algebra", course.Name)
}
