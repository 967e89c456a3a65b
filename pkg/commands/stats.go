package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/analytics"
	"github.com/stintapp/stint/pkg/commands/options"
	"github.com/stintapp/stint/pkg/runner/stats"
	"github.com/stintapp/stint/pkg/timeutil"
)

func addStats(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show goal progress, streak, and per-subject totals",
		Example: `
stint stats
stint stats --last 2w
stint stats --last 3mo --unit week
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := analytics.Unit(wo.Unit)
			switch unit {
			case analytics.ByDay, analytics.ByWeek, analytics.ByMonth:
			default:
				return fmt.Errorf("unknown unit %q", wo.Unit)
			}

			svc, err := loadService()
			if err != nil {
				return err
			}
			s := stats.Stats{
				Unit:    unit,
				Service: svc,
			}
			if wo.Last != "" {
				d, _, err := timeutil.ParseWindow(wo.Last)
				if err != nil {
					return err
				}
				s.Window = d
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
