// Package exportdata provides the runner that dumps the active profile's
// document as the frozen legacy key/value export.
package exportdata

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/stintapp/stint/pkg/app"
)

type Export struct {
	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	dump, err := n.Service.Export()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(dump))
	for k := range dump {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println("{")
	for i, k := range keys {
		comma := ","
		if i == len(keys)-1 {
			comma = ""
		}
		fmt.Printf("  %q: %s%s\n", k, dump[k], comma)
	}
	fmt.Println("}")
	return nil
}
