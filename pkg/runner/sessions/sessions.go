// Package sessions provides runners over the session ledger: listing,
// reflection, correction, deletion, and staging a continue handoff.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/printers"
	"github.com/stintapp/stint/pkg/session"
)

type List struct {
	ShowID bool

	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list sessions, no service")
	}
	records, err := n.Service.Sessions()
	if err != nil {
		return err
	}
	d, err := n.Service.Data()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Sessions")
	pp.Sessions(records, func(id string) string {
		if subj, ok := d.Subject(id); ok {
			return subj.Name
		}
		return id
	})
	return nil
}

type Reflect struct {
	SessionID string
	Rating    session.Rating
	Comment   string

	Service *app.Service
}

func (n *Reflect) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not reflect, no service")
	}
	if err := n.Service.Reflect(n.SessionID, n.Rating, n.Comment, time.Now()); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Reflection saved")
	return nil
}

type Delete struct {
	SessionID string

	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete session, no service")
	}
	if err := n.Service.DeleteSession(n.SessionID, time.Now()); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Session deleted")
	return nil
}

type Edit struct {
	SessionID string
	StartedAt time.Time
	EndedAt   time.Time

	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit session, no service")
	}
	if err := n.Service.EditSession(n.SessionID, n.StartedAt, n.EndedAt, time.Now()); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Session updated")
	return nil
}

type Continue struct {
	SessionID string

	Service *app.Service
}

func (n *Continue) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not continue session, no service")
	}
	if _, err := n.Service.ContinueSession(n.SessionID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Session staged")
	fmt.Println("  pick it up with: stint start --continue")
	return nil
}
