// Package status provides the runner that shows the live timer snapshot.
package status

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/printers"
	"github.com/stintapp/stint/pkg/profile"
	"github.com/stintapp/stint/pkg/store"
)

type Status struct {
	// Follow keeps printing: once a second for the ticking clock, and
	// whenever another process writes the store.
	Follow bool

	Service *app.Service
}

// Do prints the snapshot with elapsed time computed now. Pure read: nothing
// is persisted, which is what lets a status poll run at any frequency.
func (n *Status) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get status, no service")
	}
	if err := n.print(time.Now()); err != nil {
		return err
	}
	if !n.Follow {
		return nil
	}
	return n.follow(ctx)
}

func (n *Status) print(now time.Time) error {
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
	pp.Snapshot(snap, name, d.Settings.Pomodoro(), now)
	return nil
}

// follow rehydrates on external writes so a stop or a profile switch from
// another terminal shows up here. This side only ever reads; the writer in
// the other process stays the single writer.
func (n *Status) follow(ctx context.Context) error {
	disk, ok := n.Service.Store.(*store.Disk)
	if !ok {
		return errors.New("can not follow, store does not support watching")
	}
	events, err := disk.Watch(ctx)
	if err != nil {
		return err
	}

	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-tick.C:
			if err := n.print(now); err != nil {
				return err
			}
		case evt, open := <-events:
			if !open {
				return nil
			}
			if evt.Type == store.EventKeyChanged &&
				!strings.HasPrefix(evt.Key, "data:") && evt.Key != profile.StateKey {
				continue
			}
			n.Service = app.Load(n.Service.Store, time.Now())
			if err := n.print(time.Now()); err != nil {
				return err
			}
		}
	}
}
