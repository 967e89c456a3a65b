// Package cancel provides the runner that discards the current timer run.
package cancel

import (
	"context"
	"errors"
	"time"

	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/printers"
	"github.com/stintapp/stint/pkg/timer"
)

type Cancel struct {
	Service *app.Service
}

func (n *Cancel) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not cancel, no service")
	}
	if err := n.Service.CancelTimer(time.Now()); err != nil {
		if errors.Is(err, timer.ErrInvalidTransition) {
			pp := printers.PrettyPrint{}
			pp.Warn("no timer to cancel")
			return nil
		}
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Timer cancelled; nothing recorded")
	return nil
}
