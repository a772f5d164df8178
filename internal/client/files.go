package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ntucool/canvas/internal/http"
	"github.com/ntucool/canvas/pkg/canvas"
)

// FilesClient implements canvas.FilesClient.
type FilesClient struct {
	httpClient *http.Client
	opts       []canvas.Option
}

// NewFilesClient creates a new files client.
func NewFilesClient(httpClient *http.Client, opts ...canvas.Option) *FilesClient {
	return &FilesClient{
		httpClient: httpClient,
		opts:       opts,
	}
}

func filesPath(courseID int64) string {
	return "/api/v1/courses/" + strconv.FormatInt(courseID, 10) + "/files"
}

// List implements canvas.FilesClient.List.
func (c *FilesClient) List(ctx context.Context, courseID int64, opts *canvas.ListFilesOptions) ([]canvas.File, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building files query: %w", err)
	}

	_, files, err := canvas.Paginate[canvas.File](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), filesPath(courseID), query, canvas.ModeSinglePage, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	return files, nil
}

// ListAll implements canvas.FilesClient.ListAll.
func (c *FilesClient) ListAll(ctx context.Context, courseID int64, opts *canvas.ListFilesOptions) ([]canvas.File, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building files query: %w", err)
	}

	_, files, err := canvas.Paginate[canvas.File](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), filesPath(courseID), query, canvas.ModeEager, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing all files: %w", err)
	}

	return files, nil
}

// Paginate implements canvas.FilesClient.Paginate.
func (c *FilesClient) Paginate(ctx context.Context, courseID int64, opts *canvas.ListFilesOptions) (*canvas.Pagination[canvas.File], error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building files query: %w", err)
	}

	pagination, _, err := canvas.Paginate[canvas.File](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), filesPath(courseID), query, canvas.ModeLazy, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("paginating files: %w", err)
	}

	return pagination, nil
}

// Get implements canvas.FilesClient.Get. Files are addressable without
// their course context.
func (c *FilesClient) Get(ctx context.Context, fileID int64) (*canvas.File, error) {
	path := "/api/v1/files/" + strconv.FormatInt(fileID, 10)

	var file canvas.File

	err := c.httpClient.GetJSON(ctx, path, nil, &file)
	if err != nil {
		return nil, fmt.Errorf("getting file: %w", err)
	}

	return &file, nil
}

// ListFolders implements canvas.FilesClient.ListFolders.
func (c *FilesClient) ListFolders(ctx context.Context, courseID int64, opts *canvas.ListOptions) ([]canvas.Folder, error) {
	path := "/api/v1/courses/" + strconv.FormatInt(courseID, 10) + "/folders"

	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building folders query: %w", err)
	}

	_, folders, err := canvas.Paginate[canvas.Folder](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), path, query, canvas.ModeSinglePage, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}

	return folders, nil
}

// GetFolder implements canvas.FilesClient.GetFolder.
func (c *FilesClient) GetFolder(ctx context.Context, folderID int64) (*canvas.Folder, error) {
	path := "/api/v1/folders/" + strconv.FormatInt(folderID, 10)

	var folder canvas.Folder

	err := c.httpClient.GetJSON(ctx, path, nil, &folder)
	if err != nil {
		return nil, fmt.Errorf("getting folder: %w", err)
	}

	return &folder, nil
}
