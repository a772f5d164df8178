// Package client implements the canvas.Client interface: one resource
// client per endpoint family, all sharing a single HTTP transport.
package client

import (
	"errors"

	"github.com/ntucool/canvas/internal/auth"
	"github.com/ntucool/canvas/internal/http"
	"github.com/ntucool/canvas/pkg/canvas"
)

// Static errors for config validation.
var (
	ErrBaseURLRequired = errors.New("base URL is required")
)

// Client implements the canvas.Client interface.
type Client struct {
	httpClient *http.Client
	logger     canvas.Logger

	// Resource clients
	courses          canvas.CoursesClient
	bookmarks        canvas.BookmarksClient
	sections         canvas.SectionsClient
	tabs             canvas.TabsClient
	modules          canvas.ModulesClient
	pages            canvas.PagesClient
	files            canvas.FilesClient
	announcements    canvas.AnnouncementsClient
	discussionTopics canvas.DiscussionTopicsClient
}

// New creates a new Canvas API client.
func New(config *canvas.Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	var tokenManager auth.TokenManager
	if config.AccessToken != "" {
		tokenManager = auth.NewStaticTokenManager(config.AccessToken)
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.BaseURL, tokenManager, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}

	client.initializeResourceClients(paginationOptions(config))

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *canvas.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// paginationOptions builds the cursor options every resource client
// forwards into the pagination dispatcher.
func paginationOptions(config *canvas.Config) []canvas.Option {
	var opts []canvas.Option

	if config.Logger != nil {
		opts = append(opts, canvas.WithPaginationLogger(config.Logger))
	}

	if config.StrictPagination {
		opts = append(opts, canvas.WithLinkPolicy(canvas.LinkPolicyStrict))
	}

	return opts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients(opts []canvas.Option) {
	c.courses = NewCoursesClient(c.httpClient, opts...)
	c.bookmarks = NewBookmarksClient(c.httpClient, opts...)
	c.sections = NewSectionsClient(c.httpClient, opts...)
	c.tabs = NewTabsClient(c.httpClient, opts...)
	c.modules = NewModulesClient(c.httpClient, opts...)
	c.pages = NewPagesClient(c.httpClient, opts...)
	c.files = NewFilesClient(c.httpClient, opts...)
	c.announcements = NewAnnouncementsClient(c.httpClient, opts...)
	c.discussionTopics = NewDiscussionTopicsClient(c.httpClient, opts...)
}

// Resource client accessors

// Courses implements canvas.Client.Courses.
func (c *Client) Courses() canvas.CoursesClient {
	return c.courses
}

// Bookmarks implements canvas.Client.Bookmarks.
func (c *Client) Bookmarks() canvas.BookmarksClient {
	return c.bookmarks
}

// Sections implements canvas.Client.Sections.
func (c *Client) Sections() canvas.SectionsClient {
	return c.sections
}

// Tabs implements canvas.Client.Tabs.
func (c *Client) Tabs() canvas.TabsClient {
	return c.tabs
}

// Modules implements canvas.Client.Modules.
func (c *Client) Modules() canvas.ModulesClient {
	return c.modules
}

// Pages implements canvas.Client.Pages.
func (c *Client) Pages() canvas.PagesClient {
	return c.pages
}

// Files implements canvas.Client.Files.
func (c *Client) Files() canvas.FilesClient {
	return c.files
}

// Announcements implements canvas.Client.Announcements.
func (c *Client) Announcements() canvas.AnnouncementsClient {
	return c.announcements
}

// DiscussionTopics implements canvas.Client.DiscussionTopics.
func (c *Client) DiscussionTopics() canvas.DiscussionTopicsClient {
	return c.discussionTopics
}
