package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ntucool/canvas/internal/http"
	"github.com/ntucool/canvas/pkg/canvas"
)

// CoursesClient implements canvas.CoursesClient.
type CoursesClient struct {
	httpClient *http.Client
	opts       []canvas.Option
}

// NewCoursesClient creates a new courses client.
func NewCoursesClient(httpClient *http.Client, opts ...canvas.Option) *CoursesClient {
	return &CoursesClient{
		httpClient: httpClient,
		opts:       opts,
	}
}

// List implements canvas.CoursesClient.List.
func (c *CoursesClient) List(ctx context.Context, opts *canvas.ListCoursesOptions) ([]canvas.Course, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building courses query: %w", err)
	}

	_, courses, err := canvas.Paginate[canvas.Course](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), "/api/v1/courses", query, canvas.ModeSinglePage, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}

	return courses, nil
}

// ListAll implements canvas.CoursesClient.ListAll.
func (c *CoursesClient) ListAll(ctx context.Context, opts *canvas.ListCoursesOptions) ([]canvas.Course, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building courses query: %w", err)
	}

	_, courses, err := canvas.Paginate[canvas.Course](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), "/api/v1/courses", query, canvas.ModeEager, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing all courses: %w", err)
	}

	return courses, nil
}

// Paginate implements canvas.CoursesClient.Paginate.
func (c *CoursesClient) Paginate(ctx context.Context, opts *canvas.ListCoursesOptions) (*canvas.Pagination[canvas.Course], error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building courses query: %w", err)
	}

	pagination, _, err := canvas.Paginate[canvas.Course](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), "/api/v1/courses", query, canvas.ModeLazy, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("paginating courses: %w", err)
	}

	return pagination, nil
}

// Get implements canvas.CoursesClient.Get.
func (c *CoursesClient) Get(ctx context.Context, courseID int64, opts *canvas.GetCourseOptions) (*canvas.Course, error) {
	path := "/api/v1/courses/" + strconv.FormatInt(courseID, 10)

	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building course query: %w", err)
	}

	var course canvas.Course

	err = c.httpClient.GetJSON(ctx, path, query, &course)
	if err != nil {
		return nil, fmt.Errorf("getting course: %w", err)
	}

	return &course, nil
}

// ListUsers implements canvas.CoursesClient.ListUsers.
func (c *CoursesClient) ListUsers(ctx context.Context, courseID int64, opts *canvas.ListCourseUsersOptions) ([]canvas.User, error) {
	path := "/api/v1/courses/" + strconv.FormatInt(courseID, 10) + "/users"

	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building course users query: %w", err)
	}

	_, users, err := canvas.Paginate[canvas.User](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), path, query, canvas.ModeSinglePage, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing course users: %w", err)
	}

	return users, nil
}
