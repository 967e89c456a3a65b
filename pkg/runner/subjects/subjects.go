// Package subjects provides runners for adding and listing subjects.
package subjects

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/printers"
)

type Add struct {
	Name     string
	Category string

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add subject, no service")
	}
	subj, err := n.Service.AddSubject(n.Name, n.Category, time.Now())
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Subject ready")
	fmt.Printf("  %s (%s)\n", subj.Name, subj.ID)
	return nil
}

type List struct {
	ShowID bool

	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list subjects, no service")
	}
	d, err := n.Service.Data()
	if err != nil {
		return err
	}

	if len(d.Subjects) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("no subjects yet; add one with: stint subject add <name>")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if n.ShowID {
		tbl.AddRow("NAME", "CATEGORY", "ID")
	} else {
		tbl.AddRow("NAME", "CATEGORY")
	}
	for _, subj := range d.Subjects {
		cat := subj.Category
		if cat == "" {
			cat = "-"
		}
		if n.ShowID {
			tbl.AddRow(subj.Name, cat, subj.ID)
		} else {
			tbl.AddRow(subj.Name, cat)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
