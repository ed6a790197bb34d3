// SPDX-License-Identifier: MIT

package walker

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/decolab/profile"
)

// CalculateSetup runs CalculateTissueLoading for every dive of setup in
// parallel. All dives use setup.Gases and one table snapshot pinned before
// the first dive starts. Results are in dive order.
func CalculateSetup(ctx context.Context, setup *profile.DiveSetup, opts ...Option) ([]*Result, error) {
	if setup == nil {
		return nil, walkerErrorf(MethodCalculateSetup, ErrNilSetup)
	}
	if err := setup.Validate(); err != nil {
		return nil, walkerErrorf(MethodCalculateSetup, err)
	}
	cfg := gatherOptions(opts)
	pinned := append(opts[:len(opts):len(opts)], WithTable(cfg.Table), WithGases(setup.Gases))

	results := make([]*Result, len(setup.Dives))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, d := range setup.Dives {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := CalculateTissueLoading(d.Waypoints, setup.SurfaceInterval, pinned...)
			if err != nil {
				return fmt.Errorf("%s: dive %d: %w", MethodCalculateSetup, i, err)
			}
			results[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
