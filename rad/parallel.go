// SPDX-License-Identifier: MIT

package rad

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ProcessAll runs Process over independent windows that share schema, at
// most WithConcurrency windows at a time. results[i] belongs to windows[i].
// The first error cancels windows not yet started and is returned with its
// window index; no results are returned in that case.
func (d *Detector) ProcessAll(ctx context.Context, schema Schema, windows [][]Record) ([][]Record, error) {
	results := make([][]Record, len(windows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)
	for i, w := range windows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := d.process(d.log.With().Int("window", i).Logger(), schema, w)
			if err != nil {
				return fmt.Errorf("window %d: %w", i, err)
			}
			results[i] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
