// Package batch translates many independent inputs (file lines, CSV cells)
// with a bounded worker pool. Results keep the order of the inputs.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/valpere/romawi/internal"
	"github.com/valpere/romawi/internal/translator"
)

type Config struct {
	// Workers bounds concurrent translations; <= 0 means GOMAXPROCS.
	Workers int

	// Resolve picks the mode per request. Nil keeps req.Mode.
	Resolve func(req internal.TranslationRequest) internal.Mode
}

type Result struct {
	Results   []*translator.Result
	Errors    []error
	Succeeded int
	Failed    int
}

type Runner struct {
	config Config
}

func New(config Config) *Runner {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{config: config}
}

// Execute translates every request. Translation failures are recorded in
// the Result, not returned; the returned error is only the context error
// when ctx is cancelled before all requests are scheduled.
func (r *Runner) Execute(ctx context.Context, reqs []internal.TranslationRequest) (*Result, error) {
	result := &Result{
		Results: make([]*translator.Result, len(reqs)),
		Errors:  make([]error, 0),
	}

	slog.Debug("batch started", "requests", len(reqs), "workers", r.config.Workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)

	for i, req := range reqs {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			mode := req.Mode
			if r.config.Resolve != nil {
				mode = r.config.Resolve(req)
			}
			res := translator.Translate(req.Text, mode)
			result.Results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, res := range result.Results {
		if res.OK() {
			result.Succeeded++
			continue
		}
		result.Failed++
		result.Errors = append(result.Errors, fmt.Errorf("%s: %w", label(reqs[i], i), res.Err))
	}

	slog.Debug("batch finished", "succeeded", result.Succeeded, "failed", result.Failed)
	return result, nil
}

func label(req internal.TranslationRequest, index int) string {
	if req.ID != "" {
		return req.ID
	}
	return fmt.Sprintf("#%d", index+1)
}
