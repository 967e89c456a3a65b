package options

import (
	"github.com/spf13/cobra"
)

// WindowOptions selects the reporting window and bucket granularity.
type WindowOptions struct {
	Last string
	Unit string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Last, "last", "",
		`Include a history table over the window, example: --last=2w.`)
	cmd.Flags().StringVarP(&o.Unit, "unit", "u", "day",
		"History bucket size. One of 'day', 'week' or 'month'.")
}
