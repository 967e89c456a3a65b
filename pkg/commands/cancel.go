package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/runner/cancel"
)

func addCancel(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Discard the running timer without recording",
		Example: `
stint cancel
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := cancel.Cancel{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
