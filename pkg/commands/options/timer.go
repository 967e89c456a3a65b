package options

import (
	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/timer"
)

// TimerOptions captures the flags shared by the start command family.
type TimerOptions struct {
	Subject  string
	Task     string
	Continue bool
}

func AddTimerArgs(cmd *cobra.Command, o *TimerOptions) {
	cmd.Flags().StringVarP(&o.Subject, "subject", "s", "",
		"Subject to time, by name or id.")
	cmd.Flags().StringVarP(&o.Task, "task", "t", "",
		"Optional task id to credit the time to.")
	cmd.Flags().BoolVar(&o.Continue, "continue", false,
		"Resume the most recently staged session.")
}

// ModeForArg maps the positional mode argument, defaulting to stopwatch.
func ModeForArg(arg string) (timer.Mode, bool) {
	switch arg {
	case "", "stopwatch", "watch":
		return timer.Stopwatch, true
	case "pomodoro", "pomo":
		return timer.Pomodoro, true
	}
	return timer.Stopwatch, false
}
