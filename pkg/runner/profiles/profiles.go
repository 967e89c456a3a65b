// Package profiles provides runners for profile lifecycle and switching.
package profiles

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

type Create struct {
	Name string

	Service *app.Service
}

func (n *Create) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not create profile, no service")
	}
	p, err := n.Service.CreateProfile(n.Name, time.Now())
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Profile created")
	fmt.Printf("  %s (%s)\n", p.Name, p.ID)
	return nil
}

type Use struct {
	ProfileID string

	Service *app.Service
}

func (n *Use) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not switch profile, no service")
	}
	if err := n.Service.SwitchProfile(n.ProfileID, time.Now()); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Profile switched")
	return nil
}

type List struct {
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list profiles, no service")
	}
	all := n.Service.Registry.List()
	active, _ := n.Service.ActiveProfile()

	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("no profiles yet; create one with: stint profile create <name>")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "NAME", "ID", "LAST ACTIVE")
	for _, p := range all {
		mark := " "
		if p.ID == active.ID {
			mark = "*"
		}
		tbl.AddRow(mark, p.Name, p.ID, humanize.Time(p.LastActiveAt.Time))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

type Rename struct {
	ProfileID string
	Name      string

	Service *app.Service
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not rename profile, no service")
	}
	if err := n.Service.Registry.Rename(n.ProfileID, n.Name, time.Now()); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Profile renamed")
	return nil
}

type Delete struct {
	ProfileID string

	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete profile, no service")
	}
	if err := n.Service.DeleteProfile(n.ProfileID, time.Now()); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Profile deleted")
	return nil
}
