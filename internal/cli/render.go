package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardpie/pkg/deck"
	perrors "github.com/matzehuels/cardpie/pkg/errors"
	"github.com/matzehuels/cardpie/pkg/observability"
	"github.com/matzehuels/cardpie/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output PNG path
	cacheDir string  // overrides cache.dir
	noCache  bool    // disables the image cache
	zoom     float64 // overrides zoom_level when set
	workers  int     // overrides workers when set

	zoomSet    bool
	workersSet bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{output: deck.DefaultOutputFile}

	cmd := &cobra.Command{
		Use:   "render [config]",
		Short: "Render a card pie chart from a deck file",
		Long: `Render a card pie chart from a deck file.

The deck file (deck.json by default, or any *.toml file) lists decks with the
number of times each was played and the card whose artwork fills its wedge.
Card images are downloaded once and kept in the image cache.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := deck.DefaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			opts.zoomSet = cmd.Flags().Changed("zoom")
			opts.workersSet = cmd.Flags().Changed("workers")
			return c.runRender(cmd.Context(), path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output PNG file")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "image cache directory (overrides the deck file)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not read or write the image cache")
	cmd.Flags().Float64Var(&opts.zoom, "zoom", deck.DefaultZoom, "artwork zoom level")
	cmd.Flags().IntVar(&opts.workers, "workers", deck.DefaultWorkers, "concurrent image downloads")

	return cmd
}

// apply overrides configuration values with the flags the user set.
func (o renderOpts) apply(cfg *deck.Config) error {
	if o.cacheDir != "" {
		cfg.Cache.Backend = deck.BackendFile
		cfg.Cache.Dir = o.cacheDir
	}
	if o.noCache {
		cfg.Cache.Backend = deck.BackendNone
	}
	if o.zoomSet {
		if o.zoom <= 0 {
			return perrors.New(perrors.ErrCodeInvalidInput, "--zoom must be positive, got %v", o.zoom)
		}
		cfg.ZoomLevel = o.zoom
	}
	if o.workersSet {
		if o.workers < 1 {
			return perrors.New(perrors.ErrCodeInvalidInput, "--workers must be at least 1, got %d", o.workers)
		}
		cfg.Workers = o.workers
	}
	return nil
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := deck.Load(path)
	if err != nil {
		return err
	}
	if err := opts.apply(cfg); err != nil {
		return err
	}
	logger.Debug("loaded deck file", "path", path, "decks", len(cfg.Decks), "cache", cfg.Cache.Backend)

	counter := &cacheCounter{}
	observability.SetCacheHooks(counter)
	defer observability.Reset()

	runner, err := c.newRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts, err := pipeline.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	popts.Logger = logger

	spinner := newSpinnerWithContext(ctx, "Resolving card images...")
	observability.SetPipelineHooks(&spinnerHooks{spinner: spinner})
	spinner.Start()

	result, err := runner.Execute(ctx, popts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if err := deck.WriteFile(opts.output, result.PNG); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	abs, err := filepath.Abs(opts.output)
	if err != nil {
		abs = opts.output
	}
	printSuccess("Rendered %s", cfg.Title)
	printFile(abs)
	for i, w := range result.Wedges {
		if w.Empty() {
			printWarning("%s has no wedge (count 0)", result.Slices[i].Name)
		}
	}
	printStats(len(result.Wedges), result.Stats.Cached, result.Stats.Fetched, counter.bytes.Load())
	printDetail("resolved in %s, rendered in %s",
		result.Stats.ResolveTime.Round(time.Millisecond), result.Stats.RenderTime.Round(time.Millisecond))

	logger.Debug("image cache traffic", "hits", counter.hits.Load(), "misses", counter.misses.Load())
	prog.done("Chart written", "output", opts.output)
	return nil
}

// cacheCounter counts image cache traffic for the render summary.
type cacheCounter struct {
	hits   atomic.Int64
	misses atomic.Int64
	bytes  atomic.Int64
}

func (c *cacheCounter) OnCacheHit(context.Context, string)  { c.hits.Add(1) }
func (c *cacheCounter) OnCacheMiss(context.Context, string) { c.misses.Add(1) }
func (c *cacheCounter) OnCacheSet(_ context.Context, _ string, size int) {
	c.bytes.Add(int64(size))
}

// spinnerHooks shows which card is being resolved.
type spinnerHooks struct {
	observability.NoopPipelineHooks
	spinner *Spinner
}

func (h *spinnerHooks) OnAssetStart(_ context.Context, card string) {
	h.spinner.Update("Resolving " + card + "...")
}

func (h *spinnerHooks) OnRenderComplete(_ context.Context, _ string, _ time.Duration, err error) {
	if err == nil {
		h.spinner.Update("Writing chart...")
	}
}
