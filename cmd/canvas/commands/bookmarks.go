package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/ntucool/canvas/pkg/canvas"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewBookmarksCommand creates the bookmarks command group.
func NewBookmarksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookmarks",
		Aliases: []string{"bookmark", "bm"},
		Short:   "Manage bookmarks",
		Long:    "List, create, and delete Canvas user bookmarks",
	}

	cmd.AddCommand(newBookmarksListCommand())
	cmd.AddCommand(newBookmarksCreateCommand())
	cmd.AddCommand(newBookmarksDeleteCommand())

	return cmd
}

func newBookmarksListCommand() *cobra.Command {
	var allPages bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var bookmarks []canvas.Bookmark
			if allPages {
				bookmarks, err = client.Bookmarks().ListAll(ctx, nil)
			} else {
				bookmarks, err = client.Bookmarks().List(ctx, nil)
			}

			if err != nil {
				return fmt.Errorf("failed to list bookmarks: %w", err)
			}

			return outputBookmarks(bookmarks)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func outputBookmarks(bookmarks []canvas.Bookmark) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(bookmarks)
	case OutputFormatYAML:
		return renderYAML(bookmarks)
	default:
		if len(bookmarks) == 0 {
			_, _ = os.Stdout.WriteString("No bookmarks found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "URL")

		for _, bookmark := range bookmarks {
			_ = table.Append(strconv.FormatInt(bookmark.ID, 10), bookmark.Name, bookmark.URL)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newBookmarksCreateCommand() *cobra.Command {
	var (
		name     string
		url      string
		position int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a bookmark",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrBookmarkNameRequired
			}

			if url == "" {
				return ErrBookmarkURLRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			bookmark, err := client.Bookmarks().Create(context.Background(), &canvas.BookmarkRequest{
				Name:     name,
				URL:      url,
				Position: position,
			})
			if err != nil {
				return fmt.Errorf("failed to create bookmark: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created bookmark %d\n", bookmark.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "bookmark name")
	cmd.Flags().StringVar(&url, "url", "", "bookmark URL")
	cmd.Flags().IntVar(&position, "position", 0, "position in the bookmark list")

	return cmd
}

func newBookmarksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete BOOKMARK_ID",
		Short: "Delete a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookmarkID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %s", ErrBookmarkIDRequired, args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Bookmarks().Delete(context.Background(), bookmarkID)
			if err != nil {
				return fmt.Errorf("failed to delete bookmark: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted bookmark %d\n", bookmarkID)

			return nil
		},
	}
}
