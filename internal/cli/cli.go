package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/orbital/pkg/cache"
	"github.com/matzehuels/orbital/pkg/collection"
	"github.com/matzehuels/orbital/pkg/config"
	orberr "github.com/matzehuels/orbital/pkg/errors"
	"github.com/matzehuels/orbital/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for the root command and completions.
const appName = "orbital"

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

	configPath string
	verbose    bool
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the --config file, $ORBITAL_CONFIG, or the defaults.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}

// =============================================================================
// Runner Factory
// =============================================================================

// openRunner builds the generator, collection and cache described by cfg.
// Table data is validated here, so a broken table stops the command before
// any output is produced. An unreachable cache only disables caching.
func (c *CLI) openRunner(ctx context.Context, cfg config.Config, noCache bool) (*pipeline.Runner, error) {
	coll, err := openCollection(cfg)
	if err != nil {
		return nil, err
	}

	opts := cfg.CacheOptions()
	if noCache {
		opts.Backend = cache.BackendNone
	}
	store, err := cache.Open(ctx, opts)
	if err != nil {
		c.Logger.Warn("cache unavailable, rendering without it", "backend", opts.Backend, "err", err)
		store = cache.NewNullCache()
	}

	runner := pipeline.NewRunner(coll, store, nil, c.Logger)
	if ttl := cfg.Cache.TTL.Duration; ttl > 0 {
		runner.TTL = ttl
	}
	return runner, nil
}

func openCollection(cfg config.Config) (*collection.Collection, error) {
	gen, err := collection.NewGenerator(cfg.Collection.Engine, cfg.EngineOptions())
	if err != nil {
		return nil, err
	}
	return collection.New(cfg.Info(), gen)
}

// =============================================================================
// Errors
// =============================================================================

// FormatError renders err for the terminal. Coded errors show their code
// and message; other errors are printed as-is.
func FormatError(err error) string {
	if code := orberr.GetCode(err); code != "" {
		msg := orberr.UserMessage(err)
		var e *orberr.Error
		if errors.As(err, &e) && e.Cause != nil {
			msg = fmt.Sprintf("%s: %v", msg, e.Cause)
		}
		return fmt.Sprintf("%s: %s", code, msg)
	}
	return err.Error()
}
