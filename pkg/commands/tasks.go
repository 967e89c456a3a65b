package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/commands/options"
	"github.com/stintapp/stint/pkg/runner/tasks"
)

func addTasks(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	all := false

	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Manage tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := tasks.List{ShowID: io.ShowID, All: all, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks.")

	addTasksAdd(cmd)
	addTasksDone(cmd)
	addTasksList(cmd)
	addTasksRollover(cmd)

	topLevel.AddCommand(cmd)
}

func addTasksAdd(topLevel *cobra.Command) {
	subject := ""
	title := ""
	daily := false
	due := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task under a subject",
		Example: `
stint tasks add "problem set 4" --subject algebra
stint tasks add "review flashcards" --subject algebra --daily
stint tasks add "mock exam" --subject algebra --due 2026-09-15
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := tasks.Add{
				Subject: subject,
				Title:   title,
				Daily:   daily,
				DueDate: due,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject the task belongs to, by name or id.")
	cmd.Flags().BoolVar(&daily, "daily", false, "Recreate the task each day it rolls over.")
	cmd.Flags().StringVar(&due, "due", "", `Due date, example: --due="2026-09-15".`)
	_ = cmd.MarkFlagRequired("subject")

	topLevel.AddCommand(cmd)
}

func addTasksDone(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "done <task-id>",
		Aliases: []string{"complete"},
		Short:   "Mark a task completed",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := tasks.Done{TaskID: io.ID, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTasksList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	all := false

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := tasks.List{ShowID: io.ShowID, All: all, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks.")

	topLevel.AddCommand(cmd)
}

func addTasksRollover(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rollover",
		Short: "Carry daily and overdue tasks forward to today",
		Example: `
stint tasks rollover
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := tasks.Rollover{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
