// Package cli implements the tilewright command-line interface.
//
// This package provides commands for computing tile layout plans from
// manifest files, quoting material quantities, running the interactive
// plan wizard, and managing the artifact cache. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tilewright/tilewright/pkg/buildinfo"
	"github.com/tilewright/tilewright/pkg/cache"
	"github.com/tilewright/tilewright/pkg/pipeline"
	"github.com/tilewright/tilewright/pkg/session"
)

const (
	// appName is the application name used for directories and display.
	appName = "tilewright"

	// envRedisAddr selects the shared Redis cache backend when set.
	envRedisAddr = "TILEWRIGHT_REDIS_ADDR"

	// envMongoURI selects the MongoDB session store when set.
	envMongoURI = "TILEWRIGHT_MONGO_URI"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "tilewright",
		Short:        "Tilewright plans tile layouts for DIY rooms",
		Long:         `Tilewright is a CLI tool for planning tile layouts: it enumerates tile placements for a room and pattern, estimates material quantities, and renders the plan as SVG, PNG, or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.planCommand())
	root.AddCommand(c.quoteCommand())
	root.AddCommand(c.wizardCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// newCache selects the cache backend: Redis when TILEWRIGHT_REDIS_ADDR is
// set, the per-user file cache otherwise, and the null cache when caching
// is disabled or no directory can be resolved.
func newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if addr := os.Getenv(envRedisAddr); addr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: addr})
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newSessionStore selects the session backend: MongoDB when
// TILEWRIGHT_MONGO_URI is set, the per-user file store otherwise.
func newSessionStore(ctx context.Context) (session.Store, error) {
	if uri := os.Getenv(envMongoURI); uri != "" {
		return session.NewMongoStore(ctx, session.MongoConfig{URI: uri})
	}
	return session.NewFileStore("")
}

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/tilewright/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	return cache.DefaultDir()
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
