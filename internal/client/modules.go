package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ntucool/canvas/internal/http"
	"github.com/ntucool/canvas/pkg/canvas"
)

// ModulesClient implements canvas.ModulesClient.
type ModulesClient struct {
	httpClient *http.Client
	opts       []canvas.Option
}

// NewModulesClient creates a new modules client.
func NewModulesClient(httpClient *http.Client, opts ...canvas.Option) *ModulesClient {
	return &ModulesClient{
		httpClient: httpClient,
		opts:       opts,
	}
}

func modulesPath(courseID int64) string {
	return "/api/v1/courses/" + strconv.FormatInt(courseID, 10) + "/modules"
}

// List implements canvas.ModulesClient.List.
func (c *ModulesClient) List(ctx context.Context, courseID int64, opts *canvas.ListModulesOptions) ([]canvas.Module, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building modules query: %w", err)
	}

	_, modules, err := canvas.Paginate[canvas.Module](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), modulesPath(courseID), query, canvas.ModeSinglePage, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}

	return modules, nil
}

// ListAll implements canvas.ModulesClient.ListAll.
func (c *ModulesClient) ListAll(ctx context.Context, courseID int64, opts *canvas.ListModulesOptions) ([]canvas.Module, error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building modules query: %w", err)
	}

	_, modules, err := canvas.Paginate[canvas.Module](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), modulesPath(courseID), query, canvas.ModeEager, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing all modules: %w", err)
	}

	return modules, nil
}

// Paginate implements canvas.ModulesClient.Paginate.
func (c *ModulesClient) Paginate(ctx context.Context, courseID int64, opts *canvas.ListModulesOptions) (*canvas.Pagination[canvas.Module], error) {
	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building modules query: %w", err)
	}

	pagination, _, err := canvas.Paginate[canvas.Module](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), modulesPath(courseID), query, canvas.ModeLazy, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("paginating modules: %w", err)
	}

	return pagination, nil
}

// Get implements canvas.ModulesClient.Get.
func (c *ModulesClient) Get(ctx context.Context, courseID, moduleID int64, opts *canvas.ListModulesOptions) (*canvas.Module, error) {
	path := modulesPath(courseID) + "/" + strconv.FormatInt(moduleID, 10)

	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building module query: %w", err)
	}

	var module canvas.Module

	err = c.httpClient.GetJSON(ctx, path, query, &module)
	if err != nil {
		return nil, fmt.Errorf("getting module: %w", err)
	}

	return &module, nil
}

// ListItems implements canvas.ModulesClient.ListItems.
func (c *ModulesClient) ListItems(ctx context.Context, courseID, moduleID int64, opts *canvas.ListModuleItemsOptions) ([]canvas.ModuleItem, error) {
	path := modulesPath(courseID) + "/" + strconv.FormatInt(moduleID, 10) + "/items"

	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building module items query: %w", err)
	}

	_, items, err := canvas.Paginate[canvas.ModuleItem](ctx, c.httpClient, "GET",
		c.httpClient.BaseURL(), path, query, canvas.ModeSinglePage, nil, c.opts...)
	if err != nil {
		return nil, fmt.Errorf("listing module items: %w", err)
	}

	return items, nil
}

// GetItem implements canvas.ModulesClient.GetItem.
func (c *ModulesClient) GetItem(ctx context.Context, courseID, moduleID, itemID int64, opts *canvas.ListModuleItemsOptions) (*canvas.ModuleItem, error) {
	path := modulesPath(courseID) + "/" + strconv.FormatInt(moduleID, 10) + "/items/" + strconv.FormatInt(itemID, 10)

	query, err := opts.Query()
	if err != nil {
		return nil, fmt.Errorf("building module item query: %w", err)
	}

	var item canvas.ModuleItem

	err = c.httpClient.GetJSON(ctx, path, query, &item)
	if err != nil {
		return nil, fmt.Errorf("getting module item: %w", err)
	}

	return &item, nil
}
