package client

import (
	"context"
	"fmt"

	"github.com/ntucool/canvas/internal/http"
	"github.com/ntucool/canvas/pkg/canvas"
)

// AnnouncementsClient implements canvas.AnnouncementsClient.
//
// Announcements are discussion topics served from a cross-course
// endpoint; the context_codes parameter decides which courses to pull
// from.
type AnnouncementsClient struct {
	httpClient *http.Client
	opts       []canvas.Option
}

// NewAnnouncementsClient creates a new announcements client.
func NewAnnouncementsClient(httpClient *http.Client, opts ...canvas.Option) *AnnouncementsClient {
	return &AnnouncementsClient{
		httpClient: httpClient,
		opts:       opts,
	}
}

// List implements canvas.AnnouncementsClient.List.
func (c *AnnouncementsClient) List(ctx context.Context, opts *canvas.ListAnnouncementsOptions) ([]canvas.Announcement, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building announcements query: %w", err)
	}

	_, announcements, err := canvas.Paginate[canvas.Announcement](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), "/api/v1/announcements", query, canvas.ModeSinglePage, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing announcements: %w", err)
	}

	return announcements, nil
}

// ListAll implements canvas.AnnouncementsClient.ListAll.
func (c *AnnouncementsClient) ListAll(ctx context.Context, opts *canvas.ListAnnouncementsOptions) ([]canvas.Announcement, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building announcements query: %w", err)
	}

	_, announcements, err := canvas.Paginate[canvas.Announcement](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), "/api/v1/announcements", query, canvas.ModeEager, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing all announcements: %w", err)
	}

	return announcements, nil
}

// Paginate implements canvas.AnnouncementsClient.Paginate.
func (c *AnnouncementsClient) Paginate(ctx context.Context, opts *canvas.ListAnnouncementsOptions) (*canvas.Pagination[canvas.Announcement], error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building announcements query: %w", err)
	}

	pagination, _, err := canvas.Paginate[canvas.Announcement](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), "/api/v1/announcements", query, canvas.ModeLazy, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("paginating announcements: %w", err)
	}

	return pagination, nil
}
