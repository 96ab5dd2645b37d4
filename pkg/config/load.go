package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/orbital/pkg/errors"
)

// Load reads the configuration at path over the defaults. An empty path
// falls back to $ORBITAL_CONFIG, and with neither set the defaults are
// returned unchanged. The result is validated.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}

	base := filepath.Dir(path)
	cfg.Table.Path = resolve(base, cfg.Table.Path)
	cfg.Table.Templates = resolve(base, cfg.Table.Templates)
	cfg.Cache.Dir = resolve(base, cfg.Cache.Dir)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
