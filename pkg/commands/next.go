package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/runner/next"
)

func addNext(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Advance the pomodoro to its next phase",
		Example: `
stint next
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := next.Next{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
