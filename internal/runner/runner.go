// internal/runner/runner.go

// Package runner drives repeated extraction passes against one target. It
// owns the engine instance for the target, so dedup state spans every pass of
// one run, and forwards each pass's newly seen rows to the output writer.
package runner

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/dverbeek/PairScraper/internal/config"
	"github.com/dverbeek/PairScraper/internal/dom"
	"github.com/dverbeek/PairScraper/internal/extract"
	"github.com/dverbeek/PairScraper/internal/fetch"
	"github.com/dverbeek/PairScraper/internal/monitoring"
	"github.com/dverbeek/PairScraper/internal/output"
	"github.com/dverbeek/PairScraper/internal/utils"
)

// Summary reports what a full run produced.
type Summary struct {
	Passes     int
	NewRows    int
	Suppressed int
	Applicable bool
}

// Runner executes extraction passes for one configured target.
type Runner struct {
	cfg     *config.ScrapeConfig
	engine  *extract.Engine
	writer  output.Writer
	metrics *monitoring.Metrics
	logger  utils.Logger
	limiter *rate.Limiter
}

// New creates a runner. The metrics argument may be nil.
func New(cfg *config.ScrapeConfig, writer output.Writer, metrics *monitoring.Metrics, logger utils.Logger) *Runner {
	if logger == nil {
		logger = utils.NewLogger()
	}

	rps := cfg.Polling.RequestsPerSecond
	if rps <= 0 {
		rps = 1.0
	}
	burst := cfg.Polling.Burst
	if burst < 1 {
		burst = 1
	}

	return &Runner{
		cfg:     cfg,
		engine:  extract.NewEngine(cfg.SelectorPairs),
		writer:  writer,
		metrics: metrics,
		logger:  logger.WithField("target", cfg.Name),
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Run executes passes until the configured bounds are reached or the context
// is cancelled. With no polling interval configured it runs a single pass.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	if r.cfg.DOMRead {
		return r.runLive(ctx)
	}
	return r.runStatic(ctx)
}

// runStatic fetches a fresh page snapshot per pass.
func (r *Runner) runStatic(ctx context.Context) (*Summary, error) {
	client := fetch.NewClient(r.cfg.Target, r.cfg.Request)
	defer client.Close()

	acquire := func(ctx context.Context) (dom.Tree, string, error) {
		page, err := client.Fetch(ctx, r.cfg.Target.URL)
		if err != nil {
			return nil, "", err
		}
		tree, err := dom.NewDocument(page.Body)
		if err != nil {
			return nil, "", err
		}
		return tree, page.ContentType, nil
	}

	return r.loop(ctx, acquire)
}

// runLive drives a browser session and re-snapshots it per pass.
func (r *Runner) runLive(ctx context.Context) (*Summary, error) {
	tree, err := dom.NewLiveTree(r.cfg.Browser)
	if err != nil {
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	defer tree.Close()

	if err := tree.Navigate(ctx, r.cfg.Target.URL); err != nil {
		return nil, err
	}

	first := true
	acquire := func(ctx context.Context) (dom.Tree, string, error) {
		if !first {
			if err := tree.Refresh(ctx); err != nil {
				return nil, "", err
			}
		}
		first = false
		return tree, "text/html", nil
	}

	return r.loop(ctx, acquire)
}

// loop is the shared pass loop: rate-limit, acquire a tree, run the engine,
// write new rows, and decide whether to continue.
func (r *Runner) loop(ctx context.Context, acquire func(context.Context) (dom.Tree, string, error)) (*Summary, error) {
	summary := &Summary{Applicable: true}
	columns := r.engine.Columns()
	idlePasses := 0

	for {
		if err := r.limiter.Wait(ctx); err != nil {
			return summary, err
		}

		tree, contentType, err := acquire(ctx)
		if err != nil {
			if r.metrics != nil {
				r.metrics.RecordFetchError(r.cfg.Name)
			}
			return summary, fmt.Errorf("failed to acquire document tree: %w", err)
		}

		start := time.Now()
		result, err := r.engine.Run(ctx, extract.Request{
			Tree:        tree,
			ContentType: contentType,
			DOMRead:     r.cfg.DOMRead,
		})
		if err != nil {
			return summary, err
		}

		summary.Passes++
		newRows := len(result.Rows)
		summary.Suppressed += result.Suppressed

		if r.metrics != nil {
			r.metrics.RecordPass(r.cfg.Name, result.Applicable, newRows, result.Suppressed, time.Since(start))
			r.metrics.SetSeenRows(r.cfg.Name, r.engine.SeenRows())
		}

		if !result.Applicable {
			summary.Applicable = false
			r.logger.Warn("Target is not applicable for pair extraction, skipping")
			return summary, nil
		}

		if newRows > 0 {
			if err := r.writer.Write(columns, result.Rows); err != nil {
				return summary, fmt.Errorf("failed to write rows: %w", err)
			}
			summary.NewRows += newRows
			idlePasses = 0
			r.logger.Infof("Pass %d extracted %d new rows", summary.Passes, newRows)
		} else {
			idlePasses++
			r.logger.Debugf("Pass %d extracted no new rows", summary.Passes)
		}

		if r.done(summary.Passes, idlePasses) {
			return summary, nil
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		case <-time.After(r.cfg.Polling.Interval):
		}
	}
}

// done reports whether the polling bounds have been reached.
func (r *Runner) done(passes, idlePasses int) bool {
	if r.cfg.Polling.Interval <= 0 && r.cfg.Polling.MaxPasses == 0 {
		return true // single-pass mode
	}
	if r.cfg.Polling.MaxPasses > 0 && passes >= r.cfg.Polling.MaxPasses {
		return true
	}
	if r.cfg.Polling.StopOnIdle > 0 && idlePasses >= r.cfg.Polling.StopOnIdle {
		return true
	}
	return false
}
