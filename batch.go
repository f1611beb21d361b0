package formfill

import (
	"context"
	"fmt"
)

// Request is one independent extraction in a batch. Each request owns its
// FieldSet; nothing is shared between requests.
type Request struct {
	Utterance string
	Fields    FieldSet
	Hint      string
}

// ExtractBatch runs several independent extraction cycles concurrently.
// Results are returned in request order. The first failing cycle cancels
// the remaining ones and its error is returned; partial results are
// discarded so the batch stays all-or-nothing like a single cycle.
func (x *Extractor) ExtractBatch(ctx context.Context, reqs []Request, optFns ...func(*Options)) ([]*Result, error) {
	if len(reqs) == 0 {
		return nil, nil
	}

	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}

	r := opts.Runner
	if r == nil {
		r = DefaultRunner(ctx)
	}
	egCtx := ctx
	if d, ok := r.(*errGroupRunner); ok {
		egCtx = d.ctx
	}

	results := make([]*Result, len(reqs))
	for i, req := range reqs {
		i, req := i, req
		r.Go(func() error {
			perCall := append(append([]func(*Options){}, optFns...), WithHint(req.Hint))
			res, err := x.Extract(egCtx, req.Utterance, req.Fields, perCall...)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := r.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
