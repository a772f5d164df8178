package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ntucool/canvas/internal/http"
	"github.com/ntucool/canvas/pkg/canvas"
)

// SectionsClient implements canvas.SectionsClient.
type SectionsClient struct {
	httpClient *http.Client
	opts       []canvas.Option
}

// NewSectionsClient creates a new sections client.
func NewSectionsClient(httpClient *http.Client, opts ...canvas.Option) *SectionsClient {
	return &SectionsClient{
		httpClient: httpClient,
		opts:       opts,
	}
}

func sectionsPath(courseID int64) string {
	return "/api/v1/courses/" + strconv.FormatInt(courseID, 10) + "/sections"
}

// List implements canvas.SectionsClient.List.
func (c *SectionsClient) List(ctx context.Context, courseID int64, opts *canvas.ListSectionsOptions) ([]canvas.Section, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building sections query: %w", err)
	}

	_, sections, err := canvas.Paginate[canvas.Section](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), sectionsPath(courseID), query, canvas.ModeSinglePage, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}

	return sections, nil
}

// ListAll implements canvas.SectionsClient.ListAll.
func (c *SectionsClient) ListAll(ctx context.Context, courseID int64, opts *canvas.ListSectionsOptions) ([]canvas.Section, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building sections query: %w", err)
	}

	_, sections, err := canvas.Paginate[canvas.Section](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), sectionsPath(courseID), query, canvas.ModeEager, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing all sections: %w", err)
	}

	return sections, nil
}

// Paginate implements canvas.SectionsClient.Paginate.
func (c *SectionsClient) Paginate(ctx context.Context, courseID int64, opts *canvas.ListSectionsOptions) (*canvas.Pagination[canvas.Section], error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building sections query: %w", err)
	}

	pagination, _, err := canvas.Paginate[canvas.Section](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), sectionsPath(courseID), query, canvas.ModeLazy, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("paginating sections: %w", err)
	}

	return pagination, nil
}

// Get implements canvas.SectionsClient.Get.
func (c *SectionsClient) Get(ctx context.Context, courseID, sectionID int64, opts *canvas.ListSectionsOptions) (*canvas.Section, error) {
	path := sectionsPath(courseID) + "/" + strconv.FormatInt(sectionID, 10)

	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building section query: %w", err)
	}

	var section canvas.Section

	err = c.httpClient.GetJSON(ctx, path, query, &section)
	if err != nil {
		return nil, fmt.Errorf("getting section: %w", err)
	}

	return &section, nil
}
