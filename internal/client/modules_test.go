package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ntucool/canvas/internal/client"
	canvashttp "github.com/ntucool/canvas/internal/http"
	"github.com/ntucool/canvas/pkg/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModulesClient(serverURL string) *client.ModulesClient {
	return client.NewModulesClient(canvashttp.NewClient(serverURL, nil))
}

func TestModulesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/courses/42/modules", request.URL.Path)
		assert.Equal(t, "include%5B%5D=items", request.URL.RawQuery)
		_, _ = writer.Write([]byte(`[{"id":1,"name":"Week 1","position":1,"items_count":3}]`))
	}))
	defer server.Close()

	modulesClient := newModulesClient(server.URL)

	modules, err := modulesClient.List(context.Background(), 42, &canvas.ListModulesOptions{
		Include: []string{"items"},
	})
	require.NoError(t, err)

	require.Len(t, modules, 1)
	assert.Equal(t, "Week 1", modules[0].Name)
	assert.Equal(t, 3, modules[0].ItemsCount)
}

func TestModulesClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/courses/42/modules/7", request.URL.Path)
		_, _ = writer.Write([]byte(`{"id":7,"name":"Week 7"}`))
	}))
	defer server.Close()

	modulesClient := newModulesClient(server.URL)

	module, err := modulesClient.Get(context.Background(), 42, 7, nil)
	require.NoError(t, err)
	assert.Equal(t, "Week 7", module.Name)
}

func TestModulesClient_ListItems(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/courses/42/modules/7/items", request.URL.Path)
		_, _ = writer.Write([]byte(`[{"id":100,"module_id":7,"title":"Reading","type":"Page","page_url":"week-7-reading"}]`))
	}))
	defer server.Close()

	modulesClient := newModulesClient(server.URL)

	items, err := modulesClient.ListItems(context.Background(), 42, 7, nil)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Page", items[0].Type)
	assert.Equal(t, "week-7-reading", items[0].PageURL)
}

func TestModulesClient_GetItem(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/courses/42/modules/7/items/100", request.URL.Path)
		_, _ = writer.Write([]byte(`{"id":100,"title":"Reading"}`))
	}))
	defer server.Close()

	modulesClient := newModulesClient(server.URL)

	item, err := modulesClient.GetItem(context.Background(), 42, 7, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, "Reading", item.Title)
}
