package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/commands/options"
	"github.com/stintapp/stint/pkg/runner/start"
)

func addStart(topLevel *cobra.Command) {
	to := &options.TimerOptions{}

	cmd := &cobra.Command{
		Use:       "start [stopwatch|pomodoro]",
		Short:     "Start timing a subject",
		ValidArgs: []string{"stopwatch", "pomodoro"},
		Example: `
stint start --subject algebra
stint start pomodoro --subject "organic chemistry" --task 4f2a…
stint start --continue
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			mode, ok := options.ModeForArg(arg)
			if !ok {
				return fmt.Errorf("unknown timer mode %q", arg)
			}

			svc, err := loadService()
			if err != nil {
				return err
			}
			s := start.Start{
				Mode:     mode,
				Subject:  to.Subject,
				TaskID:   to.Task,
				Continue: to.Continue,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddTimerArgs(cmd, to)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
