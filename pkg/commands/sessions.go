package commands

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/commands/options"
	"github.com/stintapp/stint/pkg/runner/sessions"
)

func addSessions(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "sessions",
		Aliases: []string{"session", "log"},
		Short:   "Work with the session ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := sessions.List{ShowID: io.ShowID, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	addSessionsList(cmd)
	addSessionsDelete(cmd)
	addSessionsEdit(cmd)
	addSessionsContinue(cmd)

	topLevel.AddCommand(cmd)
}

func addSessionsList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions, newest first",
		Example: `
stint sessions list --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := sessions.List{ShowID: io.ShowID, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addSessionsDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete <session-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a session and give back its task time",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a session id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := sessions.Delete{SessionID: io.ID, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addSessionsEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	started := ""
	ended := ""

	cmd := &cobra.Command{
		Use:   "edit <session-id>",
		Short: "Correct a session's start and end times",
		Example: `
stint sessions edit 4f2a… --started 2026-08-28T09:00:00Z --ended 2026-08-28T09:45:00Z
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a session id")
			}
			io.ID = args[0]
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
			s := sessions.Edit{
				SessionID: io.ID,
				StartedAt: from,
				EndedAt:   to,
				Service:   svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&started, "started", "", "New start time, RFC3339.")
	cmd.Flags().StringVar(&ended, "ended", "", "New end time, RFC3339.")
	_ = cmd.MarkFlagRequired("started")
	_ = cmd.MarkFlagRequired("ended")

	topLevel.AddCommand(cmd)
}

func addSessionsContinue(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "continue <session-id>",
		Short: "Stage a session so the next start resumes its clock",
		Example: `
stint sessions continue 4f2a…
stint start --continue
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a session id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := sessions.Continue{SessionID: io.ID, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
