package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/cardpie/pkg/asset"
	"github.com/matzehuels/cardpie/pkg/cache"
	"github.com/matzehuels/cardpie/pkg/observability"
	"github.com/matzehuels/cardpie/pkg/render/pie"
	"github.com/matzehuels/cardpie/pkg/render/pie/layout"
	"github.com/matzehuels/cardpie/pkg/render/pie/sink"
)

// Runner executes the pipeline against one image cache and lookup service.
//
// A Runner keeps resolved assets for its lifetime, so a card is fetched at
// most once no matter how many charts it draws. It is safe for concurrent
// use; every Execute draws on its own canvas with its own font faces.
type Runner struct {
	Cache    cache.Cache
	Keyer    cache.Keyer
	Provider *asset.Provider
	Logger   *log.Logger
}

// NewRunner creates a runner.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, lookup asset.Lookup, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:    c,
		Keyer:    keyer,
		Provider: asset.NewProvider(c, lookup, asset.WithKeyer(keyer), asset.WithLogger(logger)),
		Logger:   logger,
	}
}

// Execute draws the chart described by opts.
func (r *Runner) Execute(ctx context.Context, opts Options) (result *Result, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Title, len(opts.Slices))
	defer func() { hooks.OnRenderComplete(ctx, opts.Title, time.Since(start), err) }()

	// Stage 1: Proportions
	slices, err := layout.Compute(opts.Slices)
	if err != nil {
		return nil, fmt.Errorf("compute proportions: %w", err)
	}
	scene, err := pie.NewScene(slices,
		pie.WithTitle(opts.Title),
		pie.WithStyle(opts.Style),
		pie.WithRadius(opts.Radius),
	)
	if err != nil {
		return nil, fmt.Errorf("create scene: %w", err)
	}
	result = &Result{Slices: slices, Wedges: scene.Wedges(), Center: scene.Center()}

	// Stage 2: Assets
	resolveStart := time.Now()
	art, cached, err := r.ResolveAll(ctx, slices, opts.Workers, logger)
	if err != nil {
		return nil, err
	}
	result.Stats.ResolveTime = time.Since(resolveStart)
	result.Stats.Cached = cached
	result.Stats.Fetched = len(art) - cached
	logger.Info("resolved card images",
		"cached", result.Stats.Cached,
		"fetched", result.Stats.Fetched,
		"duration", result.Stats.ResolveTime)

	// Stage 3: Render
	renderStart := time.Now()
	scene.DrawBase()
	for i, w := range result.Wedges {
		if w.Empty() {
			logger.Debug("skipping empty wedge", "deck", slices[i].Name)
			continue
		}
		scene.Composite(w, art[i], opts.Zoom)
	}

	result.Bounds = scene.Bounds()
	result.PNG, err = sink.RenderPNG(scene.Image(), result.Bounds)
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	result.Stats.RenderTime = time.Since(renderStart)
	logger.Info("rendered chart",
		"wedges", len(result.Wedges),
		"size", fmt.Sprintf("%dx%d", result.Bounds.Dx(), result.Bounds.Dy()),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ResolveAll resolves and crops the artwork of every slice and returns it in
// slice order along with how many assets came from the cache. Each asset is
// cropped as soon as it is resolved, so an unusable image stops the run
// before the remaining cards are fetched. With workers above one the
// resolves run concurrently; the first failure cancels the rest.
func (r *Runner) ResolveAll(ctx context.Context, slices []layout.Slice, workers int, logger *log.Logger) ([]*asset.Asset, int, error) {
	if logger == nil {
		logger = r.Logger
	}
	assets := make([]*asset.Asset, len(slices))
	hits := make([]bool, len(slices))

	if workers <= 1 {
		for i, s := range slices {
			a, hit, err := r.artwork(ctx, s, logger)
			if err != nil {
				return nil, 0, err
			}
			assets[i], hits[i] = a, hit
		}
		return assets, count(hits), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range slices {
		g.Go(func() error {
			a, hit, err := r.artwork(gctx, s, logger)
			if err != nil {
				return err
			}
			assets[i], hits[i] = a, hit
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return assets, count(hits), nil
}

func (r *Runner) artwork(ctx context.Context, s layout.Slice, logger *log.Logger) (*asset.Asset, bool, error) {
	a, hit, err := r.Resolve(ctx, s.Key, logger)
	if err != nil {
		return nil, false, fmt.Errorf("deck %s: %w", s.Name, err)
	}
	art, err := asset.Crop(a)
	if err != nil {
		return nil, false, fmt.Errorf("deck %s: %w", s.Name, err)
	}
	return art, hit, nil
}

// Resolve resolves one card and reports whether it came from the cache.
func (r *Runner) Resolve(ctx context.Context, card string, logger *log.Logger) (*asset.Asset, bool, error) {
	if logger == nil {
		logger = r.Logger
	}
	hooks := observability.Pipeline()
	hooks.OnAssetStart(ctx, card)
	start := time.Now()

	a, hit, err := r.Provider.ResolveCached(ctx, card)
	hooks.OnAssetComplete(ctx, card, hit, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	logger.Debug("resolved asset", "card", card, "cached", hit, "size", fmt.Sprintf("%dx%d", a.Width(), a.Height()))
	return a, hit, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}

func count(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
