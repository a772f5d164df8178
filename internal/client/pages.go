package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/ntucool/canvas/internal/http"
	"github.com/ntucool/canvas/pkg/canvas"
)

// PagesClient implements canvas.PagesClient.
type PagesClient struct {
	httpClient *http.Client
	opts       []canvas.Option
}

// NewPagesClient creates a new wiki pages client.
func NewPagesClient(httpClient *http.Client, opts ...canvas.Option) *PagesClient {
	return &PagesClient{
		httpClient: httpClient,
		opts:       opts,
	}
}

func pagesPath(courseID int64) string {
	return "/api/v1/courses/" + strconv.FormatInt(courseID, 10) + "/pages"
}

// List implements canvas.PagesClient.List.
func (c *PagesClient) List(ctx context.Context, courseID int64, opts *canvas.ListPagesOptions) ([]canvas.WikiPage, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building pages query: %w", err)
	}

	_, pages, err := canvas.Paginate[canvas.WikiPage](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), pagesPath(courseID), query, canvas.ModeSinglePage, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}

	return pages, nil
}

// ListAll implements canvas.PagesClient.ListAll.
func (c *PagesClient) ListAll(ctx context.Context, courseID int64, opts *canvas.ListPagesOptions) ([]canvas.WikiPage, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building pages query: %w", err)
	}

	_, pages, err := canvas.Paginate[canvas.WikiPage](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), pagesPath(courseID), query, canvas.ModeEager, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing all pages: %w", err)
	}

	return pages, nil
}

// Paginate implements canvas.PagesClient.Paginate.
func (c *PagesClient) Paginate(ctx context.Context, courseID int64, opts *canvas.ListPagesOptions) (*canvas.Pagination[canvas.WikiPage], error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building pages query: %w", err)
	}

	pagination, _, err := canvas.Paginate[canvas.WikiPage](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), pagesPath(courseID), query, canvas.ModeLazy, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("paginating pages: %w", err)
	}

	return pagination, nil
}

// Get implements canvas.PagesClient.Get. pageURL is the page's URL slug,
// not a numeric ID.
func (c *PagesClient) Get(ctx context.Context, courseID int64, pageURL string) (*canvas.WikiPage, error) {
	path := pagesPath(courseID) + "/" + url.PathEscape(pageURL)

	var page canvas.WikiPage

	err := c.httpClient.GetJSON(ctx, path, nil, &page)
	if err != nil {
		return nil, fmt.Errorf("getting page: %w", err)
	}

	return &page, nil
}

// GetFrontPage implements canvas.PagesClient.GetFrontPage.
func (c *PagesClient) GetFrontPage(ctx context.Context, courseID int64) (*canvas.WikiPage, error) {
	path := "/api/v1/courses/" + strconv.FormatInt(courseID, 10) + "/front_page"

	var page canvas.WikiPage

	err := c.httpClient.GetJSON(ctx, path, nil, &page)
	if err != nil {
		return nil, fmt.Errorf("getting front page: %w", err)
	}

	return &page, nil
}
