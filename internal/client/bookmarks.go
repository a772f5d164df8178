package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ntucool/canvas/internal/http"
	"github.com/ntucool/canvas/pkg/canvas"
)

// BookmarksClient implements canvas.BookmarksClient.
type BookmarksClient struct {
	httpClient *http.Client
	opts       []canvas.Option
}

// NewBookmarksClient creates a new bookmarks client.
func NewBookmarksClient(httpClient *http.Client, opts ...canvas.Option) *BookmarksClient {
	return &BookmarksClient{
		httpClient: httpClient,
		opts:       opts,
	}
}

// List implements canvas.BookmarksClient.List.
func (c *BookmarksClient) List(ctx context.Context, opts *canvas.ListOptions) ([]canvas.Bookmark, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building bookmarks query: %w", err)
	}

	_, bookmarks, err := canvas.Paginate[canvas.Bookmark](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), "/api/v1/users/self/bookmarks", query, canvas.ModeSinglePage, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}

	return bookmarks, nil
}

// ListAll implements canvas.BookmarksClient.ListAll.
func (c *BookmarksClient) ListAll(ctx context.Context, opts *canvas.ListOptions) ([]canvas.Bookmark, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building bookmarks query: %w", err)
	}

	_, bookmarks, err := canvas.Paginate[canvas.Bookmark](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), "/api/v1/users/self/bookmarks", query, canvas.ModeEager, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing all bookmarks: %w", err)
	}

	return bookmarks, nil
}

// Paginate implements canvas.BookmarksClient.Paginate.
func (c *BookmarksClient) Paginate(ctx context.Context, opts *canvas.ListOptions) (*canvas.Pagination[canvas.Bookmark], error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building bookmarks query: %w", err)
	}

	pagination, _, err := canvas.Paginate[canvas.Bookmark](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), "/api/v1/users/self/bookmarks", query, canvas.ModeLazy, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("paginating bookmarks: %w", err)
	}

	return pagination, nil
}

// Get implements canvas.BookmarksClient.Get.
func (c *BookmarksClient) Get(ctx context.Context, bookmarkID int64) (*canvas.Bookmark, error) {
	path := "/api/v1/users/self/bookmarks/" + strconv.FormatInt(bookmarkID, 10)

	var bookmark canvas.Bookmark

	err := c.httpClient.GetJSON(ctx, path, nil, &bookmark)
	if err != nil {
		return nil, fmt.Errorf("getting bookmark: %w", err)
	}

	return &bookmark, nil
}

// Create implements canvas.BookmarksClient.Create.
//
// TODO: the documented method is POST; the NTU COOL frontend issues GET
// here and the server accepts it. Switch to POST once verified against a
// stock Canvas deployment.
func (c *BookmarksClient) Create(ctx context.Context, request *canvas.BookmarkRequest) (*canvas.Bookmark, error) {
	query, err := request.Query()
	if err != nil {
		return nil, fmt.Errorf("building bookmark request: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, "/api/v1/users/self/bookmarks", query)
	if err != nil {
		return nil, fmt.Errorf("creating bookmark: %w", err)
	}

	var bookmark canvas.Bookmark

	err = c.httpClient.Decode("/api/v1/users/self/bookmarks", resp, &bookmark)
	if err != nil {
		return nil, fmt.Errorf("parsing bookmark response: %w", err)
	}

	return &bookmark, nil
}

// Update implements canvas.BookmarksClient.Update.
func (c *BookmarksClient) Update(ctx context.Context, bookmarkID int64, request *canvas.BookmarkRequest) (*canvas.Bookmark, error) {
	path := "/api/v1/users/self/bookmarks/" + strconv.FormatInt(bookmarkID, 10)

	query, err := request.Query()
	if err != nil {
		return nil, fmt.Errorf("building bookmark request: %w", err)
	}

	resp, err := c.httpClient.Put(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("updating bookmark: %w", err)
	}

	var bookmark canvas.Bookmark

	err = c.httpClient.Decode(path, resp, &bookmark)
	if err != nil {
		return nil, fmt.Errorf("parsing bookmark response: %w", err)
	}

	return &bookmark, nil
}

// Delete implements canvas.BookmarksClient.Delete.
//
// TODO: the documented method is DELETE; see Create.
func (c *BookmarksClient) Delete(ctx context.Context, bookmarkID int64) error {
	path := "/api/v1/users/self/bookmarks/" + strconv.FormatInt(bookmarkID, 10)

	_, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting bookmark: %w", err)
	}

	return nil
}
