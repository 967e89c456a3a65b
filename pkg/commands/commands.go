package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/commands/options"
	"github.com/stintapp/stint/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "stint",
		Short: options.Wrap80("Track timed study sessions from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addStart(topLevel)
	addPause(topLevel)
	addResume(topLevel)
	addStop(topLevel)
	addCancel(topLevel)
	addStatus(topLevel)
	addNext(topLevel)
	addReflect(topLevel)
	addSessions(topLevel)
	addStats(topLevel)
	addProfile(topLevel)
	addSubjects(topLevel)
	addTasks(topLevel)
	addSettings(topLevel)
	addWorkout(topLevel)
	addExport(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// loadService opens the configured store and hydrates the active profile.
// Every leaf command goes through here so they all share one wiring path.
func loadService() (*app.Service, error) {
	s, err := store.Open(nil)
	if err != nil {
		return nil, err
	}
	return app.Load(s, time.Now()), nil
}
