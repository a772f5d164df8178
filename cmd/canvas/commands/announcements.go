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

// NewAnnouncementsCommand creates the announcements command group.
func NewAnnouncementsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "announcements",
		Aliases: []string{"announcement", "ann"},
		Short:   "Read course announcements",
		Long:    "List announcements across one or more Canvas courses",
	}

	cmd.AddCommand(newAnnouncementsListCommand())

	return cmd
}

// AnnouncementsListOptions holds the options for listing announcements.
type AnnouncementsListOptions struct {
	AllPages   bool
	ActiveOnly bool
	StartDate  string
	EndDate    string
}

func newAnnouncementsListCommand() *cobra.Command {
	var opts AnnouncementsListOptions

	cmd := &cobra.Command{
		Use:   "list COURSE_ID...",
		Short: "List announcements",
		Long:  "List announcements for the given courses, newest first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contextCodes := make([]string, 0, len(args))

			for _, arg := range args {
				courseID, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("%w: %s", ErrCourseIDRequired, arg)
				}

				contextCodes = append(contextCodes, "course_"+strconv.FormatInt(courseID, 10))
			}

			return runAnnouncementsListCommand(contextCodes, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.AllPages, "all", false, "fetch all pages")
	cmd.Flags().BoolVar(&opts.ActiveOnly, "active-only", false, "only announcements currently posted")
	cmd.Flags().StringVar(&opts.StartDate, "start-date", "", "only announcements posted on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.EndDate, "end-date", "", "only announcements posted on or before this date (YYYY-MM-DD)")

	return cmd
}

func runAnnouncementsListCommand(contextCodes []string, opts AnnouncementsListOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	listOpts := &canvas.ListAnnouncementsOptions{
		ContextCodes: contextCodes,
		ActiveOnly:   opts.ActiveOnly,
		StartDate:    opts.StartDate,
		EndDate:      opts.EndDate,
	}

	var announcements []canvas.Announcement
	if opts.AllPages {
		announcements, err = client.Announcements().ListAll(ctx, listOpts)
	} else {
		announcements, err = client.Announcements().List(ctx, listOpts)
	}

	if err != nil {
		return fmt.Errorf("failed to list announcements: %w", err)
	}

	return outputAnnouncements(announcements)
}

func outputAnnouncements(announcements []canvas.Announcement) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(announcements)
	case OutputFormatYAML:
		return renderYAML(announcements)
	default:
		if len(announcements) == 0 {
			_, _ = os.Stdout.WriteString("No announcements found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Context", "Title", "Posted")

		for _, announcement := range announcements {
			_ = table.Append(
				strconv.FormatInt(announcement.ID, 10),
				announcement.ContextCode,
				announcement.Title,
				formatTime(announcement.PostedAt),
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}
