package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/runner/status"
)

func addStatus(topLevel *cobra.Command) {
	follow := false

	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Show the timer snapshot with live elapsed time",
		Example: `
stint status
stint status --follow
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := status.Status{Follow: follow, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false,
		"Keep printing as the clock ticks and the store changes.")

	topLevel.AddCommand(cmd)
}
