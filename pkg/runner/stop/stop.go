// Package stop provides the runner that finalizes the running timer into a
// ledger session.
package stop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/printers"
	"github.com/stintapp/stint/pkg/session"
)

type Stop struct {
	Rating  session.Rating
	Comment string

	Service *app.Service
}

func (n *Stop) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not stop, no service")
	}
	if !session.ValidRating(n.Rating) {
		return session.ErrBadRating
	}

	rec, saved, err := n.Service.StopTimer(n.Rating, n.Comment, time.Now())
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	if !saved {
		pp.Warn("nothing recorded; session discarded")
		return nil
	}
	pp.Title("Session recorded")
	fmt.Printf("  %s  (%s)\n", rec.Duration(), rec.ID)
	if rec.Rating == session.RatingNone {
		fmt.Printf("  reflect later with: stint reflect %s\n", rec.ID)
	}
	return nil
}
