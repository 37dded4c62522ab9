// internal/dom/browser.go
package dom

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
)

// BrowserConfig defines browser automation settings for live-tree scraping.
type BrowserConfig struct {
	Headless       bool          `yaml:"headless" json:"headless"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout"`
	ViewportWidth  int           `yaml:"viewport_width" json:"viewport_width"`
	ViewportHeight int           `yaml:"viewport_height" json:"viewport_height"`
	UserAgent      string        `yaml:"user_agent,omitempty" json:"user_agent,omitempty"`
	WaitForElement string        `yaml:"wait_for_element,omitempty" json:"wait_for_element,omitempty"`
	WaitDelay      time.Duration `yaml:"wait_delay,omitempty" json:"wait_delay,omitempty"`
	ScrollOnPass   bool          `yaml:"scroll_on_pass" json:"scroll_on_pass"`
	DisableImages  bool          `yaml:"disable_images" json:"disable_images"`
}

// DefaultBrowserConfig returns default browser settings.
func DefaultBrowserConfig() *BrowserConfig {
	return &BrowserConfig{
		Headless:       true,
		Timeout:        30 * time.Second,
		ViewportWidth:  1920,
		ViewportHeight: 1080,
		WaitDelay:      2 * time.Second,
		ScrollOnPass:   true,
		DisableImages:  true,
	}
}

// LiveTree is a Tree backed by a headless browser page. Each Refresh snapshots
// the rendered DOM, so repeated extraction passes against the same LiveTree
// observe the page as it mutates (infinite scroll, delayed rendering).
type LiveTree struct {
	ctx      context.Context
	cancel   context.CancelFunc
	config   *BrowserConfig
	mu       sync.RWMutex
	snapshot *Document
}

// NewLiveTree starts a browser session for the given configuration.
func NewLiveTree(config *BrowserConfig) (*LiveTree, error) {
	if config == nil {
		config = DefaultBrowserConfig()
	}

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.DisableGPU,
		chromedp.NoSandbox, // Required for Docker environments
	}
	if config.Headless {
		opts = append(opts, chromedp.Headless)
	}
	if config.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(config.UserAgent))
	}
	if config.DisableImages {
		opts = append(opts, chromedp.Flag("blink-settings", "imagesEnabled=false"))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, ctxCancel := chromedp.NewContext(allocCtx)

	tree := &LiveTree{
		ctx:    ctx,
		config: config,
		cancel: func() {
			ctxCancel()
			allocCancel()
		},
	}

	if err := chromedp.Run(ctx, chromedp.EmulateViewport(
		int64(config.ViewportWidth), int64(config.ViewportHeight))); err != nil {
		tree.Close()
		return nil, fmt.Errorf("failed to initialize browser: %w", err)
	}

	return tree, nil
}

// Navigate loads a URL and waits for the page to become ready.
func (t *LiveTree) Navigate(ctx context.Context, url string) error {
	tasks := []chromedp.Action{
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	}
	if t.config.WaitForElement != "" {
		tasks = append(tasks, chromedp.WaitVisible(t.config.WaitForElement))
	}
	if t.config.WaitDelay > 0 {
		tasks = append(tasks, chromedp.Sleep(t.config.WaitDelay))
	}

	if err := t.run(ctx, tasks...); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	return t.Refresh(ctx)
}

// Refresh re-snapshots the rendered DOM. When ScrollOnPass is set the page is
// scrolled to the bottom first, so lazily loaded content is present in the
// snapshot of the following pass.
func (t *LiveTree) Refresh(ctx context.Context) error {
	if t.config.ScrollOnPass {
		tasks := []chromedp.Action{
			chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		}
		if t.config.WaitDelay > 0 {
			tasks = append(tasks, chromedp.Sleep(t.config.WaitDelay))
		}
		if err := t.run(ctx, tasks...); err != nil {
			return fmt.Errorf("scroll failed: %w", err)
		}
	}

	var html string
	if err := t.run(ctx, chromedp.OuterHTML("html", &html)); err != nil {
		return fmt.Errorf("failed to capture page HTML: %w", err)
	}

	doc, err := NewDocument(html)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.snapshot = doc
	t.mu.Unlock()
	return nil
}

// QueryAll implements Tree against the most recent snapshot.
func (t *LiveTree) QueryAll(selector string, scope Element) []Element {
	t.mu.RLock()
	doc := t.snapshot
	t.mu.RUnlock()

	if doc == nil {
		return nil
	}
	return doc.QueryAll(selector, scope)
}

// Close shuts down the browser session.
func (t *LiveTree) Close() error {
	if t.cancel != nil {
		t.cancel()
	}
	return nil
}

func (t *LiveTree) run(ctx context.Context, tasks ...chromedp.Action) error {
	runCtx := t.ctx
	if t.config.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(t.ctx, t.config.Timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() { done <- chromedp.Run(runCtx, tasks...) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
