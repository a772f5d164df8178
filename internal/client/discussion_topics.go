package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ntucool/canvas/internal/http"
	"github.com/ntucool/canvas/pkg/canvas"
)

// DiscussionTopicsClient implements canvas.DiscussionTopicsClient.
type DiscussionTopicsClient struct {
	httpClient *http.Client
	opts       []canvas.Option
}

// NewDiscussionTopicsClient creates a new discussion topics client.
func NewDiscussionTopicsClient(httpClient *http.Client, opts ...canvas.Option) *DiscussionTopicsClient {
	return &DiscussionTopicsClient{
		httpClient: httpClient,
		opts:       opts,
	}
}

func discussionTopicsPath(courseID int64) string {
	return "/api/v1/courses/" + strconv.FormatInt(courseID, 10) + "/discussion_topics"
}

// List implements canvas.DiscussionTopicsClient.List.
func (c *DiscussionTopicsClient) List(ctx context.Context, courseID int64, opts *canvas.ListDiscussionTopicsOptions) ([]canvas.DiscussionTopic, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building discussion topics query: %w", err)
	}

	_, topics, err := canvas.Paginate[canvas.DiscussionTopic](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), discussionTopicsPath(courseID), query, canvas.ModeSinglePage, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing discussion topics: %w", err)
	}

	return topics, nil
}

// ListAll implements canvas.DiscussionTopicsClient.ListAll.
func (c *DiscussionTopicsClient) ListAll(ctx context.Context, courseID int64, opts *canvas.ListDiscussionTopicsOptions) ([]canvas.DiscussionTopic, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building discussion topics query: %w", err)
	}

	_, topics, err := canvas.Paginate[canvas.DiscussionTopic](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), discussionTopicsPath(courseID), query, canvas.ModeEager, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing all discussion topics: %w", err)
	}

	return topics, nil
}

// Paginate implements canvas.DiscussionTopicsClient.Paginate.
func (c *DiscussionTopicsClient) Paginate(ctx context.Context, courseID int64, opts *canvas.ListDiscussionTopicsOptions) (*canvas.Pagination[canvas.DiscussionTopic], error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building discussion topics query: %w", err)
	}

	pagination, _, err := canvas.Paginate[canvas.DiscussionTopic](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), discussionTopicsPath(courseID), query, canvas.ModeLazy, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("paginating discussion topics: %w", err)
	}

	return pagination, nil
}

// Get implements canvas.DiscussionTopicsClient.Get.
func (c *DiscussionTopicsClient) Get(ctx context.Context, courseID, topicID int64) (*canvas.DiscussionTopic, error) {
	path := discussionTopicsPath(courseID) + "/" + strconv.FormatInt(topicID, 10)

	var topic canvas.DiscussionTopic

	err := c.httpClient.GetJSON(ctx, path, nil, &topic)
	if err != nil {
		return nil, fmt.Errorf("getting discussion topic: %w", err)
	}

	return &topic, nil
}
