package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/runner/pause"
)

func addPause(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause the running timer",
		Example: `
stint pause
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := pause.Pause{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
