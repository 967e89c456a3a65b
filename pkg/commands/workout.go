package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/runner/workout"
)

func addWorkout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "workout",
		Aliases: []string{"workouts"},
		Short:   "Log workouts alongside the study ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := workout.List{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addWorkoutLog(cmd)
	addWorkoutList(cmd)

	topLevel.AddCommand(cmd)
}

func addWorkoutLog(topLevel *cobra.Command) {
	name := ""
	started := ""
	ended := ""

	cmd := &cobra.Command{
		Use:   "log <name>",
		Short: "Record a finished workout",
		Example: `
stint workout log "morning run" --started 2026-08-28T07:00:00Z --ended 2026-08-28T07:40:00Z
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a workout name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse(time.RFC3339, started)
			if err != nil {
				return err
			}
			to, err := time.Parse(time.RFC3339, ended)
			if err != nil {
				return err
			}

			svc, err := loadService()
			if err != nil {
				return err
			}
			s := workout.Log{
				Name:    name,
				Started: from,
				Ended:   to,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&started, "started", "", "Workout start time, RFC3339.")
	cmd.Flags().StringVar(&ended, "ended", "", "Workout end time, RFC3339.")
	_ = cmd.MarkFlagRequired("started")
	_ = cmd.MarkFlagRequired("ended")

	topLevel.AddCommand(cmd)
}

func addWorkoutList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := workout.List{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
