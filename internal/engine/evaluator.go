// Package engine drives factor evaluation over a panel. It isolates
// per-factor failures: a formula that panics or returns a malformed
// matrix costs that factor, never the run.
package engine

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"alphapanel/internal/alpha"
	"alphapanel/internal/panel"
)

// Evaluator computes registered factors over one immutable panel. It is
// stateless between calls and safe for concurrent use.
type Evaluator struct {
	panel   *panel.Panel
	logger  zerolog.Logger
	metrics *Metrics
}

// Option customizes an Evaluator.
type Option func(*Evaluator)

// WithLogger routes evaluation diagnostics to the given logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Evaluator) { e.logger = l }
}

// WithMetrics attaches prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(e *Evaluator) { e.metrics = m }
}

// New builds an evaluator over p.
func New(p *panel.Panel, opts ...Option) *Evaluator {
	e := &Evaluator{panel: p, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EvaluateOne computes a single factor. On any failure (unknown id,
// formula panic, malformed result) it returns an all-missing matrix on
// the panel's axes together with the error.
func (e *Evaluator) EvaluateOne(id alpha.FactorID) (*panel.Matrix, error) {
	f, err := alpha.Lookup(id)
	if err != nil {
		return panel.NewMatrix(e.panel.Axes()), err
	}
	return e.evaluate(f)
}

func (e *Evaluator) evaluate(f alpha.Factor) (m *panel.Matrix, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("factor %s: %v", f.ID, r)
			m = panel.NewMatrix(e.panel.Axes())
		}
		outcome := "ok"
		if err != nil {
			outcome = "error"
			e.logger.Warn().Err(err).Str("factor", string(f.ID)).Msg("factor evaluation failed")
		}
		e.metrics.observe(outcome, time.Since(start))
	}()

	out := f.Fn(e.panel)
	if out == nil {
		return panel.NewMatrix(e.panel.Axes()), fmt.Errorf("factor %s: nil result", f.ID)
	}
	if out.Rows() != e.panel.Axes().NumDates() || out.Cols() != e.panel.Axes().NumSymbols() {
		return panel.NewMatrix(e.panel.Axes()),
			fmt.Errorf("factor %s: result shape %dx%d, panel is %dx%d",
				f.ID, out.Rows(), out.Cols(),
				e.panel.Axes().NumDates(), e.panel.Axes().NumSymbols())
	}
	return out, nil
}

// EvaluateAll computes every registered factor. Failed factors land in
// the error map and are absent from the result map.
func (e *Evaluator) EvaluateAll() (map[alpha.FactorID]*panel.Matrix, map[alpha.FactorID]error) {
	results := make(map[alpha.FactorID]*panel.Matrix)
	failures := make(map[alpha.FactorID]error)
	for _, f := range alpha.All() {
		m, err := e.evaluate(f)
		if err != nil {
			failures[f.ID] = err
			continue
		}
		results[f.ID] = m
	}
	e.logger.Info().
		Int("ok", len(results)).
		Int("failed", len(failures)).
		Msg("evaluated factor set")
	return results, failures
}

// EvaluateAllParallel shards the registry across workers. workers <= 0
// uses GOMAXPROCS. Cancellation stops scheduling new factors; factors
// already in flight finish.
func (e *Evaluator) EvaluateAllParallel(ctx context.Context, workers int) (map[alpha.FactorID]*panel.Matrix, map[alpha.FactorID]error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var mu sync.Mutex
	results := make(map[alpha.FactorID]*panel.Matrix)
	failures := make(map[alpha.FactorID]error)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, f := range alpha.All() {
		if ctx.Err() != nil {
			break
		}
		f := f
		g.Go(func() error {
			m, err := e.evaluate(f)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[f.ID] = err
				return nil
			}
			results[f.ID] = m
			return nil
		})
	}
	_ = g.Wait()

	e.logger.Info().
		Int("ok", len(results)).
		Int("failed", len(failures)).
		Int("workers", workers).
		Msg("evaluated factor set in parallel")
	return results, failures
}
