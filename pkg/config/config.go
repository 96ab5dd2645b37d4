// Package config loads orbital's TOML configuration.
//
// A configuration names the collection, picks the engine, points the table
// engine at its data files and configures the outer surfaces (cache, HTTP
// server, metadata publisher). Every field has a default, so running without
// a file serves the procedural collection:
//
//	[collection]
//	name   = "Alkane RoyaltyNFT"
//	symbol = "alkane-royalty-nft"
//	supply = 3333
//	engine = "procedural"
//
//	[table]
//	path      = "data/table.jsonc"
//	templates = "data/templates.yaml"
//
//	[cache]
//	backend = "file"          # file | redis | none
//	ttl     = "168h"
package config

import (
	"fmt"
	"time"

	"github.com/matzehuels/orbital/pkg/cache"
	"github.com/matzehuels/orbital/pkg/collection"
	"github.com/matzehuels/orbital/pkg/errors"
	"github.com/matzehuels/orbital/pkg/tabular"
)

// EnvPath names the environment variable consulted when no --config flag
// is given.
const EnvPath = "ORBITAL_CONFIG"

// Defaults.
const (
	DefaultName       = "Alkane RoyaltyNFT"
	DefaultSymbol     = "alkane-royalty-nft"
	DefaultSupply     = 3333
	DefaultEngine     = "procedural"
	DefaultAddr       = ":8080"
	DefaultDatabase   = "orbital"
	DefaultCollection = "tokens"
)

// Config is the root configuration document.
type Config struct {
	Collection Collection `toml:"collection"`
	Table      Table      `toml:"table"`
	Cache      Cache      `toml:"cache"`
	Server     Server     `toml:"server"`
	Publish    Publish    `toml:"publish"`
}

// Collection describes the collection being served.
type Collection struct {
	Name   string `toml:"name"`
	Symbol string `toml:"symbol"`
	Supply uint64 `toml:"supply"`
	Engine string `toml:"engine"`
}

// Table points the table engine at its data files. Relative paths are
// resolved against the directory of the configuration file.
type Table struct {
	Path      string `toml:"path"`
	Templates string `toml:"templates"`
}

// Cache configures the document cache.
type Cache struct {
	Backend  string   `toml:"backend"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`
}

// Server configures the HTTP query server.
type Server struct {
	Addr string `toml:"addr"`
}

// Publish configures the MongoDB metadata publisher.
type Publish struct {
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Duration is a time.Duration written as a string such as "90m".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Collection: Collection{
			Name:   DefaultName,
			Symbol: DefaultSymbol,
			Supply: DefaultSupply,
			Engine: DefaultEngine,
		},
		Cache: Cache{
			Backend: cache.BackendFile,
			TTL:     Duration{cache.TTLImage},
		},
		Server: Server{Addr: DefaultAddr},
		Publish: Publish{
			Database:   DefaultDatabase,
			Collection: DefaultCollection,
		},
	}
}

// Validate checks the configuration. Settings of surfaces that are not in
// use (the table files for the procedural engine, the Redis URL for a file
// cache) are not checked.
func (c Config) Validate() error {
	if err := errors.ValidateName("collection name", c.Collection.Name); err != nil {
		return invalid(err)
	}
	if err := errors.ValidateName("collection symbol", c.Collection.Symbol); err != nil {
		return invalid(err)
	}
	if c.Collection.Supply == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "collection supply must be positive")
	}
	if !collection.IsEngine(c.Collection.Engine) {
		return errors.New(errors.ErrCodeInvalidEngine, "unknown engine %q (supported: %v)", c.Collection.Engine, collection.Engines())
	}
	if c.Collection.Engine == tabular.EngineName && (c.Table.Path == "" || c.Table.Templates == "") {
		return errors.New(errors.ErrCodeInvalidConfig, "engine \"table\" needs table.path and table.templates")
	}

	switch c.Cache.Backend {
	case cache.BackendFile, cache.BackendNone:
	case cache.BackendRedis:
		if err := errors.ValidateURI(c.Cache.RedisURL, "redis", "rediss"); err != nil {
			return fmt.Errorf("cache.redis_url: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	return nil
}

// ValidatePublish checks the publisher settings. It is separate from
// [Config.Validate] because only the publish command needs them.
func (c Config) ValidatePublish() error {
	if err := errors.ValidateURI(c.Publish.MongoURI, "mongodb", "mongodb+srv"); err != nil {
		return fmt.Errorf("publish.mongo_uri: %w", err)
	}
	if err := errors.ValidateName("publish database", c.Publish.Database); err != nil {
		return invalid(err)
	}
	if err := errors.ValidateName("publish collection", c.Publish.Collection); err != nil {
		return invalid(err)
	}
	return nil
}

// Info returns the collection description.
func (c Config) Info() collection.Info {
	return collection.Info{
		Name:   c.Collection.Name,
		Symbol: c.Collection.Symbol,
		Supply: c.Collection.Supply,
		Engine: c.Collection.Engine,
	}
}

// EngineOptions returns the data files for the engine.
func (c Config) EngineOptions() collection.EngineOptions {
	return collection.EngineOptions{TablePath: c.Table.Path, TemplatesPath: c.Table.Templates}
}

// CacheOptions returns the cache backend settings.
func (c Config) CacheOptions() cache.Options {
	return cache.Options{Backend: c.Cache.Backend, Dir: c.Cache.Dir, RedisURL: c.Cache.RedisURL}
}

func invalid(err error) error {
	return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", errors.UserMessage(err))
}
