package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/runner/profiles"
)

func addProfile(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles"},
		Short:   "Manage profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := profiles.List{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addProfileCreate(cmd)
	addProfileUse(cmd)
	addProfileList(cmd)
	addProfileRename(cmd)
	addProfileDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addProfileCreate(topLevel *cobra.Command) {
	name := ""

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a profile and make it active",
		Example: `
stint profile create alice
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a profile name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := profiles.Create{Name: name, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addProfileUse(topLevel *cobra.Command) {
	id := ""

	cmd := &cobra.Command{
		Use:     "use <profile-id>",
		Aliases: []string{"switch"},
		Short:   "Make a profile active",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a profile id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := profiles.Use{ProfileID: id, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addProfileList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List profiles, the active one starred",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := profiles.List{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addProfileRename(topLevel *cobra.Command) {
	id := ""
	name := ""

	cmd := &cobra.Command{
		Use:   "rename <profile-id> <name>",
		Short: "Rename a profile",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a profile id and a new name")
			}
			id = args[0]
			name = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := profiles.Rename{ProfileID: id, Name: name, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addProfileDelete(topLevel *cobra.Command) {
	id := ""

	cmd := &cobra.Command{
		Use:     "delete <profile-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a profile and its data",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a profile id")
			}
			id = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := profiles.Delete{ProfileID: id, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
