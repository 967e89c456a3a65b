// Package resume provides the runner that restarts a paused timer.
package resume

import (
	"context"
	"errors"
	"time"

	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/printers"
	"github.com/stintapp/stint/pkg/timer"
)

type Resume struct {
	Service *app.Service
}

func (n *Resume) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not resume, no service")
	}
	now := time.Now()
	if err := n.Service.ResumeTimer(now); err != nil {
		if errors.Is(err, timer.ErrInvalidTransition) {
			pp := printers.PrettyPrint{}
			pp.Warn("no paused timer to resume")
			return nil
		}
		return err
	}
	elapsed, err := n.Service.Elapsed(now)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Resumed at " + elapsed.Round(time.Second).String())
	return nil
}
