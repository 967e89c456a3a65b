package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/runner/settings"
)

func addSettings(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change pomodoro cadence and goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := settings.Show{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addSettingsSet(cmd)

	topLevel.AddCommand(cmd)
}

func addSettingsSet(topLevel *cobra.Command) {
	focus := 0
	short := 0
	long := 0
	interval := 0
	auto := false
	daily := 0
	weekly := 0
	monthly := 0

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings; omitted flags keep their current value",
		Example: `
stint settings set --focus 50 --short-break 10
stint settings set --daily-goal 180
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			d, err := svc.Data()
			if err != nil {
				return err
			}

			next := d.Settings
			if cmd.Flags().Changed("focus") {
				next.FocusMinutes = focus
			}
			if cmd.Flags().Changed("short-break") {
				next.ShortBreakMinutes = short
			}
			if cmd.Flags().Changed("long-break") {
				next.LongBreakMinutes = long
			}
			if cmd.Flags().Changed("interval") {
				next.LongBreakInterval = interval
			}
			if cmd.Flags().Changed("auto-start") {
				next.AutoStartNextPhase = auto
			}
			if cmd.Flags().Changed("daily-goal") {
				next.DailyGoalMinutes = daily
			}
			if cmd.Flags().Changed("weekly-goal") {
				next.WeeklyGoalMinutes = weekly
			}
			if cmd.Flags().Changed("monthly-goal") {
				next.MonthlyGoalMinutes = monthly
			}

			s := settings.Set{Settings: next, Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&focus, "focus", 25, "Focus phase length in minutes.")
	cmd.Flags().IntVar(&short, "short-break", 5, "Short break length in minutes.")
	cmd.Flags().IntVar(&long, "long-break", 15, "Long break length in minutes.")
	cmd.Flags().IntVar(&interval, "interval", 4, "Focus phases between long breaks.")
	cmd.Flags().BoolVar(&auto, "auto-start", false, "Start the next phase without pausing.")
	cmd.Flags().IntVar(&daily, "daily-goal", 120, "Daily goal in minutes.")
	cmd.Flags().IntVar(&weekly, "weekly-goal", 840, "Weekly goal in minutes.")
	cmd.Flags().IntVar(&monthly, "monthly-goal", 3600, "Monthly goal in minutes.")

	topLevel.AddCommand(cmd)
}
