package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/commands/options"
	"github.com/stintapp/stint/pkg/runner/stop"
)

func addStop(topLevel *cobra.Command) {
	ro := &options.RatingOptions{}

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the timer and record a session",
		Example: `
stint stop
stint stop --rating productive --comment "finished the problem set"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, ok := ro.Parsed()
			if !ok {
				return fmt.Errorf("unknown rating %q", ro.Rating)
			}

			svc, err := loadService()
			if err != nil {
				return err
			}
			s := stop.Stop{
				Rating:  rating,
				Comment: ro.Comment,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddRatingArgs(cmd, ro)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
