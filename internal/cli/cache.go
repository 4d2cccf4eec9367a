package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cardpie/pkg/cache"
	"github.com/matzehuels/cardpie/pkg/deck"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the card image cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "clear [config]",
		Short: "Remove all cached card images",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cacheConfig(args, dir)
			if err != nil {
				return err
			}
			return runCacheClear(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&dir, "cache-dir", "", "image cache directory (overrides the deck file)")
	return cmd
}

func runCacheClear(ctx context.Context, cfg deck.CacheConfig) error {
	if cfg.Backend == deck.BackendNone {
		printInfo("Caching is disabled")
		return nil
	}

	store, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	clearer, ok := store.(cache.Clearer)
	if !ok {
		return fmt.Errorf("cache backend %q cannot be cleared", cfg.Backend)
	}
	n, err := clearer.Clear(ctx)
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	printSuccess("Cleared %d cached images", n)
	printKeyValue("Backend", cfg.Backend)
	if cfg.Backend == deck.BackendRedis {
		printKeyValue("Address", cfg.RedisAddr)
	} else {
		printKeyValue("Directory", cfg.Dir)
	}
	loggerFromContext(ctx).Debug("cleared cache", "backend", cfg.Backend, "entries", n)
	return nil
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "path [config]",
		Short: "Print the image cache directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cacheConfig(args, dir)
			if err != nil {
				return err
			}
			if cfg.Backend != deck.BackendFile {
				return fmt.Errorf("cache backend %q has no directory", cfg.Backend)
			}
			abs, err := filepath.Abs(cfg.Dir)
			if err != nil {
				return fmt.Errorf("resolve cache dir: %w", err)
			}
			fmt.Fprintln(stdout, abs)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "cache-dir", "", "image cache directory (overrides the deck file)")
	return cmd
}

// cacheConfig returns the cache settings of the deck file named in args.
// A missing default deck file is not an error; the defaults apply.
func cacheConfig(args []string, dirOverride string) (deck.CacheConfig, error) {
	path, explicit := deck.DefaultConfigFile, false
	if len(args) == 1 {
		path, explicit = args[0], true
	}

	cfg, err := deck.Load(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		cfg = &deck.Config{}
		cfg.SetDefaults()
	default:
		return deck.CacheConfig{}, err
	}

	if dirOverride != "" {
		cfg.Cache.Backend = deck.BackendFile
		cfg.Cache.Dir = dirOverride
	}
	return cfg.Cache, nil
}
