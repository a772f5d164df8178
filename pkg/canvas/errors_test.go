package canvas_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ntucool/canvas/pkg/canvas"
	"github.com/stretchr/testify/assert"
)

func TestHTTPError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *canvas.HTTPError
		expected string
	}{
		{
			name: "client error",
			err: &canvas.HTTPError{
				StatusCode: 404,
				Method:     "GET",
				URL:        "https://example.test/api/v1/courses/1",
			},
			expected: "404 Client Error: Not Found for url: https://example.test/api/v1/courses/1",
		},
		{
			name: "server error",
			err: &canvas.HTTPError{
				StatusCode: 503,
				Method:     "GET",
				URL:        "https://example.test/api/v1/courses",
			},
			expected: "503 Server Error: Service Unavailable for url: https://example.test/api/v1/courses",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.err.Error())
		})
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	notFound := &canvas.HTTPError{StatusCode: 404}
	assert.True(t, canvas.IsNotFound(notFound))
	assert.True(t, canvas.IsNotFound(fmt.Errorf("getting course: %w", notFound)))

	assert.False(t, canvas.IsNotFound(&canvas.HTTPError{StatusCode: 403}))
	assert.False(t, canvas.IsNotFound(errors.New("plain")))
	assert.False(t, canvas.IsNotFound(nil))
}

func TestIsUnauthorized(t *testing.T) {
	t.Parallel()

	plain := &canvas.HTTPError{StatusCode: 401}
	expired := &canvas.AuthenticationError{HTTPError: canvas.HTTPError{StatusCode: 401}}

	// Both flavors of 401 count as unauthorized.
	assert.True(t, canvas.IsUnauthorized(plain))
	assert.True(t, canvas.IsUnauthorized(expired))
	assert.True(t, canvas.IsUnauthorized(fmt.Errorf("listing courses: %w", expired)))

	assert.False(t, canvas.IsUnauthorized(&canvas.HTTPError{StatusCode: 404}))
}

func TestIsAuthenticationExpired(t *testing.T) {
	t.Parallel()

	expired := &canvas.AuthenticationError{HTTPError: canvas.HTTPError{StatusCode: 401}}
	assert.True(t, canvas.IsAuthenticationExpired(expired))
	assert.True(t, canvas.IsAuthenticationExpired(fmt.Errorf("wrapped: %w", expired)))

	// A bare 401 is not the re-authenticate sub-case.
	assert.False(t, canvas.IsAuthenticationExpired(&canvas.HTTPError{StatusCode: 401}))
}

func TestDecodeError(t *testing.T) {
	t.Parallel()

	cause := errors.New("invalid character '<'")
	decodeErr := &canvas.DecodeError{
		Err:  cause,
		URL:  "https://example.test/api/v1/courses",
		Body: []byte("<html>maintenance</html>"),
	}

	assert.ErrorIs(t, decodeErr, cause)
	assert.Contains(t, decodeErr.Error(), "https://example.test/api/v1/courses")
}
