// Package stats provides the runner that prints goal progress, the streak,
// and per-subject rollups.
package stats

import (
	"context"
	"errors"
	"time"

	"github.com/stintapp/stint/pkg/analytics"
	"github.com/stintapp/stint/pkg/app"
	"github.com/stintapp/stint/pkg/printers"
)

type Stats struct {
	// Window bounds the optional time-series table, parsed upstream.
	Window time.Duration
	Unit   analytics.Unit

	Service *app.Service
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get stats, no service")
	}
	now := time.Now()
	stats, err := n.Service.Stats(now)
	if err != nil {
		return err
	}
	d, err := n.Service.Data()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Progress")
	pp.Stats(stats, d.Settings)

	if n.Window > 0 {
		buckets, err := n.Service.Series(n.Unit, now.Add(-n.Window), now)
		if err != nil {
			return err
		}
		pp.NewLine()
		pp.Title("History")
		pp.Series(buckets)
	}
	return nil
}
