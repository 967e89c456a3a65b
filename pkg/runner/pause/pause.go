// Package pause provides the runner that suspends the running timer.
package pause

import (
	"context"
	"errors"
	"time"

	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/printers"
	"github.com/stintapp/stint/pkg/timer"
)

type Pause struct {
	Service *app.Service
}

func (n *Pause) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not pause, no service")
	}
	now := time.Now()
	if err := n.Service.PauseTimer(now); err != nil {
		if errors.Is(err, timer.ErrInvalidTransition) {
			pp := printers.PrettyPrint{}
			pp.Warn("no running timer to pause")
			return nil
		}
		return err
	}
	elapsed, err := n.Service.Elapsed(now)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Paused at " + elapsed.Round(time.Second).String())
	return nil
}
