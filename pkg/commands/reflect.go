package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/commands/options"
	"github.com/stintapp/stint/pkg/runner/sessions"
	"github.com/stintapp/stint/pkg/session"
)

func addReflect(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	ro := &options.RatingOptions{}

	cmd := &cobra.Command{
		Use:   "reflect <session-id>",
		Short: "Attach a reflection to a recorded session",
		Example: `
stint reflect 4f2a… --rating productive
stint reflect 4f2a… --rating average --comment "kept drifting off"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a session id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, ok := ro.Parsed()
			if !ok || rating == session.RatingNone {
				return fmt.Errorf("a rating of productive, average, or distracted is required, got %q", ro.Rating)
			}

			svc, err := loadService()
			if err != nil {
				return err
			}
			s := sessions.Reflect{
				SessionID: io.ID,
				Rating:    rating,
				Comment:   ro.Comment,
				Service:   svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddRatingArgs(cmd, ro)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
