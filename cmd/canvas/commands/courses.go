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

// NewCoursesCommand creates the courses command group.
func NewCoursesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "courses",
		Aliases: []string{"course"},
		Short:   "Manage courses",
		Long:    "List and inspect Canvas courses",
	}

	cmd.AddCommand(newCoursesListCommand())
	cmd.AddCommand(newCoursesShowCommand())
	cmd.AddCommand(newCoursesUsersCommand())

	return cmd
}

// CoursesListOptions holds the options for listing courses.
type CoursesListOptions struct {
	AllPages        bool
	PerPage         int
	EnrollmentState string
}

func newCoursesListCommand() *cobra.Command {
	var opts CoursesListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		Long:  "List the courses visible to the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCoursesListCommand(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.AllPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", defaultPageSize, "results per page")
	cmd.Flags().StringVar(&opts.EnrollmentState, "enrollment-state", "", "filter by enrollment state (active, invited_or_pending, completed)")

	return cmd
}

func runCoursesListCommand(opts CoursesListOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	listOpts := &canvas.ListCoursesOptions{
		EnrollmentState: opts.EnrollmentState,
		Include:         []string{"term"},
		ListOptions:     canvas.ListOptions{PerPage: opts.PerPage},
	}

	var courses []canvas.Course
	if opts.AllPages {
		courses, err = client.Courses().ListAll(ctx, listOpts)
	} else {
		courses, err = client.Courses().List(ctx, listOpts)
	}

	if err != nil {
		return fmt.Errorf("failed to list courses: %w", err)
	}

	return outputCourses(courses)
}

func outputCourses(courses []canvas.Course) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(courses)
	case OutputFormatYAML:
		return renderYAML(courses)
	default:
		return outputCoursesTable(courses)
	}
}

func outputCoursesTable(courses []canvas.Course) error {
	if len(courses) == 0 {
		_, _ = os.Stdout.WriteString("No courses found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Code", "Name", "State", "Term")

	for _, course := range courses {
		term := NotAvailable
		if course.Term != nil {
			term = course.Term.Name
		}

		_ = table.Append(
			strconv.FormatInt(course.ID, 10),
			course.CourseCode,
			course.Name,
			formatState(course.WorkflowState),
			term,
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newCoursesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show COURSE_ID",
		Short: "Show course details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %s", ErrCourseIDRequired, args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			course, err := client.Courses().Get(context.Background(), courseID, &canvas.GetCourseOptions{
				Include: []string{"term", "total_students"},
			})
			if err != nil {
				return fmt.Errorf("failed to get course: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(course)
			case OutputFormatYAML:
				return renderYAML(course)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.FormatInt(course.ID, 10))
				_ = table.Append("Name", course.Name)
				_ = table.Append("Code", course.CourseCode)
				_ = table.Append("State", formatState(course.WorkflowState))
				_ = table.Append("Students", strconv.Itoa(course.TotalStudents))
				_ = table.Append("Starts", formatTime(course.StartAt))
				_ = table.Append("Ends", formatTime(course.EndAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newCoursesUsersCommand() *cobra.Command {
	var enrollmentType []string

	cmd := &cobra.Command{
		Use:   "users COURSE_ID",
		Short: "List users in a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %s", ErrCourseIDRequired, args[0])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			users, err := client.Courses().ListUsers(context.Background(), courseID, &canvas.ListCourseUsersOptions{
				EnrollmentType: enrollmentType,
			})
			if err != nil {
				return fmt.Errorf("failed to list course users: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(users)
			case OutputFormatYAML:
				return renderYAML(users)
			default:
				if len(users) == 0 {
					_, _ = os.Stdout.WriteString("No users found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Login")

				for _, user := range users {
					_ = table.Append(strconv.FormatInt(user.ID, 10), user.Name, user.LoginID)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&enrollmentType, "enrollment-type", nil, "filter by enrollment type (teacher, student, ta, observer, designer)")

	return cmd
}
