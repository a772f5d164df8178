// Package commands implements the subcommands of the canvas CLI.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ntucool/canvas/pkg/canvas"
	"github.com/ntucool/canvas/pkg/canvasclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	defaultPageSize = 50
)

// Common static errors used throughout the commands package.
var (
	ErrBaseURLNotConfigured  = errors.New("no Canvas URL configured (use --base-url, CANVAS_BASE_URL, or 'canvas config set base_url')")
	ErrCourseIDRequired      = errors.New("course ID is required")
	ErrModuleIDRequired      = errors.New("module ID is required")
	ErrBookmarkIDRequired    = errors.New("bookmark ID is required")
	ErrBookmarkNameRequired  = errors.New("bookmark name is required")
	ErrBookmarkURLRequired   = errors.New("bookmark URL is required")
	ErrUnknownConfigKey      = errors.New("unknown configuration key")
)

// CreateClient builds a canvas.Client from the resolved configuration.
func CreateClient() (canvas.Client, error) {
	baseURL := viper.GetString("base_url")
	if baseURL == "" {
		return nil, ErrBaseURLNotConfigured
	}

	return canvasclient.New(&canvas.Config{
		BaseURL:          baseURL,
		AccessToken:      viper.GetString("token"),
		StrictPagination: viper.GetBool("strict_pagination"),
	})
}

// renderJSON writes v to stdout as indented JSON.
func renderJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// renderYAML writes v to stdout as YAML.
func renderYAML(v any) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return nil
}

// formatTime renders an optional timestamp for table cells.
func formatTime(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return t.Local().Format("2006-01-02 15:04")
}

var titleCaser = cases.Title(language.English)

// formatState renders a workflow state like "available" as "Available".
func formatState(state string) string {
	if state == "" {
		return NotAvailable
	}

	return titleCaser.String(state)
}
