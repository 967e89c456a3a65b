package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/commands/options"
	"github.com/stintapp/stint/pkg/runner/subjects"
)

func addSubjects(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "subjects",
		Aliases: []string{"subject"},
		Short:   "Manage subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := subjects.List{ShowID: io.ShowID, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	addSubjectsAdd(cmd)
	addSubjectsList(cmd)

	topLevel.AddCommand(cmd)
}

func addSubjectsAdd(topLevel *cobra.Command) {
	name := ""
	category := ""

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a subject",
		Example: `
stint subjects add algebra
stint subjects add "organic chemistry" --category science
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a subject name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := subjects.Add{Name: name, Category: category, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Optional subject category.")

	topLevel.AddCommand(cmd)
}

func addSubjectsList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := subjects.List{ShowID: io.ShowID, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
