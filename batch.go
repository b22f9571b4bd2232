package suntime

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Request is one input to CalculateAll.
type Request struct {
	Date     Date
	Location Location
	Offset   UTCOffset
}

// Result pairs a Request with its Sun, or the error Calculate returned
// for it.
type Result struct {
	Request
	Sun Sun
	Err error
}

// CalculateAll calculates every request concurrently, running at most
// limit at once when limit is positive. A failing request only sets its
// own Result.Err. If ctx is done before the batch finishes, requests not
// yet started are left zero and ctx.Err() is returned.
func CalculateAll(ctx context.Context, reqs []Request, limit int) ([]Result, error) {
	results := make([]Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, req := range reqs {
		if gctx.Err() != nil {
			break
		}

		i, req := i, req
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sun, err := Calculate(req.Date, req.Location, req.Offset)
			results[i] = Result{Request: req, Sun: sun, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
