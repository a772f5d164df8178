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

// NewModulesCommand creates the modules command group.
func NewModulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "modules",
		Aliases: []string{"module"},
		Short:   "Manage course modules",
		Long:    "List Canvas course modules and their items",
	}

	cmd.AddCommand(newModulesListCommand())
	cmd.AddCommand(newModulesItemsCommand())

	return cmd
}

func newModulesListCommand() *cobra.Command {
	var allPages bool

	cmd := &cobra.Command{
		Use:   "list COURSE_ID",
		Short: "List modules in a course",
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

			ctx := context.Background()
			listOpts := &canvas.ListModulesOptions{
				Include: []string{"items"},
			}

			var modules []canvas.Module
			if allPages {
				modules, err = client.Modules().ListAll(ctx, courseID, listOpts)
			} else {
				modules, err = client.Modules().List(ctx, courseID, listOpts)
			}

			if err != nil {
				return fmt.Errorf("failed to list modules: %w", err)
			}

			return outputModules(modules)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func outputModules(modules []canvas.Module) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(modules)
	case OutputFormatYAML:
		return renderYAML(modules)
	default:
		if len(modules) == 0 {
			_, _ = os.Stdout.WriteString("No modules found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Position", "Name", "Items", "State")

		for _, module := range modules {
			_ = table.Append(
				strconv.FormatInt(module.ID, 10),
				strconv.Itoa(module.Position),
				module.Name,
				strconv.Itoa(module.ItemsCount),
				formatState(module.WorkflowState),
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newModulesItemsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "items COURSE_ID MODULE_ID",
		Short: "List items in a module",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %s", ErrCourseIDRequired, args[0])
			}

			moduleID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %s", ErrModuleIDRequired, args[1])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			items, err := client.Modules().ListItems(context.Background(), courseID, moduleID, nil)
			if err != nil {
				return fmt.Errorf("failed to list module items: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(items)
			case OutputFormatYAML:
				return renderYAML(items)
			default:
				if len(items) == 0 {
					_, _ = os.Stdout.WriteString("No module items found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Type", "Title")

				for _, item := range items {
					_ = table.Append(strconv.FormatInt(item.ID, 10), item.Type, item.Title)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
