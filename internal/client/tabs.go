package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ntucool/canvas/internal/http"
	"github.com/ntucool/canvas/pkg/canvas"
)

// TabsClient implements canvas.TabsClient.
type TabsClient struct {
	httpClient *http.Client
	opts       []canvas.Option
}

// NewTabsClient creates a new tabs client.
func NewTabsClient(httpClient *http.Client, opts ...canvas.Option) *TabsClient {
	return &TabsClient{
		httpClient: httpClient,
		opts:       opts,
	}
}

// List implements canvas.TabsClient.List. Tabs are served complete; the
// endpoint never paginates in practice, so one request is enough.
func (c *TabsClient) List(ctx context.Context, courseID int64, opts *canvas.ListTabsOptions) ([]canvas.Tab, error) {
	path := "/api/v1/courses/" + strconv.FormatInt(courseID, 10) + "/tabs"

	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building tabs query: %w", err)
	}

	_, tabs, err := canvas.Paginate[canvas.Tab](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), path, query, canvas.ModeSinglePage, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing tabs: %w", err)
	}

	return tabs, nil
}

// Update implements canvas.TabsClient.Update.
func (c *TabsClient) Update(ctx context.Context, courseID int64, tabID string, request *canvas.TabUpdateRequest) (*canvas.Tab, error) {
	path := "/api/v1/courses/" + strconv.FormatInt(courseID, 10) + "/tabs/" + tabID

	query, err := request.Query()
	if err != nil {
		return nil, fmt.Errorf("building tab request: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("updating tab: %w", err)
	}

	var tab canvas.Tab

	err = c.httpClient.Decode(path, resp, &tab)
	if err != nil {
		return nil, fmt.Errorf("parsing tab response: %w", err)
	}

	return &tab, nil
}
