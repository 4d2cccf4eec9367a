// Package cli implements the cardpie command-line interface.
//
// # Commands
//
//   - render: draw the chart described by a deck file (deck.json by default)
//   - cache: show or clear the card image cache
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context and handed to the pipeline.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardpie/pkg/buildinfo"
	"github.com/matzehuels/cardpie/pkg/cache"
	"github.com/matzehuels/cardpie/pkg/deck"
	"github.com/matzehuels/cardpie/pkg/integrations/ygoprodeck"
	"github.com/matzehuels/cardpie/pkg/pipeline"
)

// appName is the application name used for display and cache prefixes.
const appName = "cardpie"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// APIURL is the card info endpoint. Tests point it at a local server.
	APIURL string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		APIURL: ygoprodeck.DefaultBaseURL,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "cardpie draws pie charts filled with card artwork",
		Long:         `cardpie turns a deck breakdown into a pie chart where every wedge shows the artwork of a card from that deck.`,
		Version:      buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.APIURL, "api-url", c.APIURL, "card info endpoint")
	_ = root.PersistentFlags().MarkHidden("api-url")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for the configuration.
func (c *CLI) newRunner(ctx context.Context, cfg *deck.Config) (*pipeline.Runner, error) {
	store, err := openCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}
	lookup := ygoprodeck.NewClient(cfg.Retries + 1).WithBaseURL(c.APIURL)
	return pipeline.NewRunner(store, nil, lookup, loggerFromContext(ctx)), nil
}

// openCache opens the image cache backend named in the configuration.
func openCache(ctx context.Context, cfg deck.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case deck.BackendNone:
		return cache.NewNullCache(), nil
	case deck.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:   cfg.RedisAddr,
			Prefix: appName + ":",
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	case "", deck.BackendFile:
		dir := cfg.Dir
		if dir == "" {
			dir = deck.DefaultCacheDir
		}
		fc, err := cache.NewFileCache(dir, 0)
		if err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
		return fc, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
