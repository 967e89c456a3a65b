// Package settings provides runners that show and update the pomodoro
// cadence and goal targets.
package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/printers"
	"github.com/stintapp/stint/pkg/userdata"
)

type Show struct {
	Service *app.Service
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show settings, no service")
	}
	d, err := n.Service.Data()
	if err != nil {
		return err
	}
	s := d.Settings

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("focus", fmt.Sprintf("%dm", s.FocusMinutes))
	tbl.AddRow("short break", fmt.Sprintf("%dm", s.ShortBreakMinutes))
	tbl.AddRow("long break", fmt.Sprintf("%dm", s.LongBreakMinutes))
	tbl.AddRow("long break every", fmt.Sprintf("%d focus phases", s.LongBreakInterval))
	tbl.AddRow("auto-start next phase", fmt.Sprintf("%v", s.AutoStartNextPhase))
	tbl.AddRow("daily goal", fmt.Sprintf("%dm", s.DailyGoalMinutes))
	tbl.AddRow("weekly goal", fmt.Sprintf("%dm", s.WeeklyGoalMinutes))
	tbl.AddRow("monthly goal", fmt.Sprintf("%dm", s.MonthlyGoalMinutes))
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

type Set struct {
	Settings userdata.Settings

	Service *app.Service
}

func (n *Set) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not update settings, no service")
	}
	if err := n.Service.SetSettings(n.Settings, time.Now()); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Settings saved")
	return nil
}
