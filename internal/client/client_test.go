package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ntucool/canvas/internal/client"
	"github.com/ntucool/canvas/pkg/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("requires a base URL", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&canvas.Config{})
		require.Error(t, err)
		assert.ErrorIs(t, err, client.ErrBaseURLRequired)
	})

	t.Run("wires every resource client", func(t *testing.T) {
		t.Parallel()

		canvasClient, err := client.New(&canvas.Config{BaseURL: "https://example.test"})
		require.NoError(t, err)

		assert.NotNil(t, canvasClient.Courses())
		assert.NotNil(t, canvasClient.Bookmarks())
		assert.NotNil(t, canvasClient.Sections())
		assert.NotNil(t, canvasClient.Tabs())
		assert.NotNil(t, canvasClient.Modules())
		assert.NotNil(t, canvasClient.Pages())
		assert.NotNil(t, canvasClient.Files())
		assert.NotNil(t, canvasClient.Announcements())
		assert.NotNil(t, canvasClient.DiscussionTopics())
	})
}

func TestNew_AccessTokenFlowsToRequests(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer secret-token", request.Header.Get("Authorization"))
		_, _ = writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	canvasClient, err := client.New(&canvas.Config{
		BaseURL:     server.URL,
		AccessToken: "secret-token",
	})
	require.NoError(t, err)

	_, err = canvasClient.Courses().List(context.Background(), nil)
	require.NoError(t, err)
}

func TestNew_StrictPaginationFlowsToCursors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// No Link header on a paginated endpoint.
		_, _ = writer.Write([]byte(`[{"id":1}]`))
	}))
	defer server.Close()

	canvasClient, err := client.New(&canvas.Config{
		BaseURL:          server.URL,
		StrictPagination: true,
	})
	require.NoError(t, err)

	_, err = canvasClient.Courses().ListAll(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, canvas.ErrMissingLinkHeader)
}
