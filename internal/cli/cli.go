// Package cli implements the wordsearch command-line interface.
//
// This package provides commands for generating word search puzzles,
// solving them interactively in the terminal, listing the available
// alphabets, and managing the alphabet cache. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Build a puzzle and print it, optionally exporting its config
//   - play: Solve a puzzle interactively
//   - alphabets: List languages and letter cases in the alphabet catalog
//   - cache: Manage the cache of downloaded alphabet catalogs
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordsearch/pkg/alphabet"
	"github.com/matzehuels/wordsearch/pkg/buildinfo"
	"github.com/matzehuels/wordsearch/pkg/cache"
	"github.com/matzehuels/wordsearch/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "wordsearch"

	// defaultTimeout bounds alphabet resolution.
	defaultTimeout = 10 * time.Second

	// redisPrefix namespaces keys in a shared Redis.
	redisPrefix = appName + ":"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Global flags.
	alphabets string
	noCache   bool
	redisAddr string
	timeout   time.Duration
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		timeout: defaultTimeout,
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
		Short:        "Wordsearch generates word search puzzles in many alphabets",
		Long:         `Wordsearch builds word search puzzles from a word list in any language of its alphabet catalog, prints them with their clues, and lets you solve them in the terminal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetGeneratorHooks(newPlacementStats(c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.alphabets, "alphabets", "", "alphabet catalog: directory, .json file or http(s) URL (default: built-in)")
	flags.BoolVar(&c.noCache, "no-cache", false, "do not cache downloaded alphabet catalogs")
	flags.StringVar(&c.redisAddr, "redis", "", "cache downloaded catalogs in Redis (host:port or redis:// URL)")
	flags.DurationVar(&c.timeout, "timeout", defaultTimeout, "timeout for loading the alphabet catalog")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.alphabetsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Catalog Factory
// =============================================================================

// newCatalog opens the alphabet catalog selected by --alphabets. The returned
// cache must be closed by the caller.
func (c *CLI) newCatalog() (*alphabet.Catalog, cache.Cache, error) {
	store, err := c.newCache()
	if err != nil {
		return nil, nil, err
	}
	cat, err := alphabet.Open(c.alphabets, store, alphabet.WithLogger(c.Logger))
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return cat, store, nil
}

func (c *CLI) newCache() (cache.Cache, error) {
	switch {
	case c.noCache || !alphabet.IsURL(c.alphabets):
		return cache.NewNullCache(), nil
	case c.redisAddr != "":
		cfg := cache.RedisConfig{Prefix: redisPrefix, DialTimeout: 2 * time.Second}
		if strings.Contains(c.redisAddr, "://") {
			cfg.URL = c.redisAddr
		} else {
			cfg.Addr = c.redisAddr
		}
		rc, err := cache.NewRedisCache(cfg)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
		defer cancel()
		if err := rc.Ping(ctx); err != nil {
			c.Logger.Warn("redis unreachable, using file cache", "addr", c.redisAddr, "error", err)
			rc.Close()
			break
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// resolveContext bounds alphabet loading by --timeout.
func (c *CLI) resolveContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/wordsearch/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
