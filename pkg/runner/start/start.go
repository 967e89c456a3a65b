// Package start provides the runner that begins a timed activity.
package start

import (
	"context"
	"errors"
	"time"

	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/printers"
	"github.com/stintapp/stint/pkg/timer"
)

type Start struct {
	Mode     timer.Mode
	Subject  string
	TaskID   string
	Continue bool

	Service *app.Service
}

func (n *Start) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not start, no service")
	}
	now := time.Now()

	err := n.Service.StartTimer(app.StartOptions{
		Mode:       n.Mode,
		SubjectRef: n.Subject,
		TaskID:     n.TaskID,
		Continue:   n.Continue,
	}, now)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
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
	pp.Title("Timer started")
	pp.Snapshot(snap, name, d.Settings.Pomodoro(), now)
	return nil
}
