// Package next provides the runner that advances a pomodoro phase boundary.
package next

import (
	"context"
	"errors"
	"time"

	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/printers"
	"github.com/stintapp/stint/pkg/timer"
)

type Next struct {
	Service *app.Service
}

func (n *Next) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not advance, no service")
	}
	now := time.Now()
	if err := n.Service.AdvancePomodoro(now); err != nil {
		if errors.Is(err, timer.ErrInvalidTransition) {
			pp := printers.PrettyPrint{}
			pp.Warn("no pomodoro timer to advance")
			return nil
		}
		return err
	}

	snap, err := n.Service.Snapshot()
	if err != nil {
		return err
	}
	d, err := n.Service.Data()
	if err != nil {
		return err
	}
	name := snap.SubjectID
	if subj, ok := d.Subject(snap.SubjectID); ok {
		name = subj.Name
	}
	pp := printers.PrettyPrint{}
	pp.Title("Phase advanced")
	pp.Snapshot(snap, name, d.Settings.Pomodoro(), now)
	return nil
}
