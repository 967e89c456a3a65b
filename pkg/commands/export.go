package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/runner/exportdata"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the active profile as the legacy flat JSON bundle",
		Example: `
stint export > backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := exportdata.Export{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
