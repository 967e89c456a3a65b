// Package workout provides runners for the workout log, which sits beside
// the study ledger but never feeds study analytics.
package workout

import (
	"context"
	"errors"
	"fmt"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/printers"
)

type Log struct {
	Name    string
	Started time.Time
	Ended   time.Time

	Service *app.Service
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log workout, no service")
	}
	entry, err := n.Service.LogWorkout(n.Name, n.Started, n.Ended, time.Now())
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Workout logged")
	fmt.Printf("  %s for %s\n", entry.Name, time.Duration(entry.DurationMs)*time.Millisecond)
	return nil
}

type List struct {
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list workouts, no service")
	}
	d, err := n.Service.Data()
	if err != nil {
		return err
	}

	if len(d.Workout.Entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("no workouts logged")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("NAME", "DURATION", "WHEN")
	for _, e := range d.Workout.Entries {
		tbl.AddRow(e.Name, (time.Duration(e.DurationMs) * time.Millisecond).Round(time.Second), humanize.Time(e.EndedAt.Time))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
