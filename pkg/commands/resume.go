package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/runner/resume"
)

func addResume(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Resume a paused timer",
		Example: `
stint resume
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := resume.Resume{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
