// SPDX-License-Identifier: MIT

package balance

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one equation of a batch. Exactly one of Result
// and Err is non-nil.
type Outcome struct {
	Index  int
	Input  string
	Result *Result
	Err    error
}

// OK reports whether the equation balanced.
func (o Outcome) OK() bool { return o.Err == nil }

// All balances inputs concurrently on at most workers goroutines
// (workers <= 0 means GOMAXPROCS). Outcomes are returned in input order.
//
// A failing equation is recorded in its Outcome and does not stop the batch;
// only cancellation of ctx does, in which case ctx's error is returned along
// with the outcomes completed so far (unfinished ones carry ctx's error).
func All(ctx context.Context, inputs []string, workers int, opts ...Option) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]Outcome, len(inputs))
	for i, in := range inputs {
		out[i] = Outcome{Index: i, Input: in}
	}

	errg, gctx := errgroup.WithContext(ctx)
	errg.SetLimit(workers)
	for i := range inputs {
		if gctx.Err() != nil {
			break
		}
		i := i
		errg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Balance(inputs[i], opts...)
			if err != nil {
				out[i].Err = err
				return nil
			}
			out[i].Result = res

			return nil
		})
	}
	if err := errg.Wait(); err != nil || ctx.Err() != nil {
		cause := context.Cause(ctx)
		unfinished := false
		for i := range out {
			if out[i].Result == nil && out[i].Err == nil {
				out[i].Err = cause
				unfinished = true
			}
		}
		if unfinished {
			return out, cause
		}
	}

	return out, nil
}
