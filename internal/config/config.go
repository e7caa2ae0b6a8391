// Package config loads and validates the dskit configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/dskit/config.toml
// (~/.config/dskit/config.toml when XDG_CONFIG_HOME is unset). Every key is
// optional; missing keys keep their defaults.
//
//	[layout]
//	node_size = 30
//	width = 320
//
//	[render]
//	formats = ["svg", "json"]
//	theme = "dark"
//
//	[render.palette]
//	danger = "#FF0000"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/leetpulse/dskit/pkg/cache"
	"github.com/leetpulse/dskit/pkg/errors"
	"github.com/leetpulse/dskit/pkg/graph"
	"github.com/leetpulse/dskit/pkg/model"
	"github.com/leetpulse/dskit/pkg/pipeline"
	"github.com/leetpulse/dskit/pkg/pointer"
	"github.com/leetpulse/dskit/pkg/tree"
)

// Config is the complete configuration.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// LayoutConfig holds layout engine parameters.
type LayoutConfig struct {
	NodeSize          float64 `toml:"node_size" validate:"gt=0,lte=1000"`
	LevelSpacing      float64 `toml:"level_spacing" validate:"gt=0,lte=1000"`
	Iterations        int     `toml:"iterations" validate:"gte=0,lte=10000"`
	CircularThreshold int     `toml:"circular_threshold" validate:"gte=0,lte=1000"`
	Width             float64 `toml:"width" validate:"gt=0,lte=100000"`
	// Height of zero sizes graphs from their node count and trees from
	// their depth.
	Height float64 `toml:"height" validate:"gte=0,lte=100000"`
}

// RenderConfig holds output parameters.
type RenderConfig struct {
	Formats []string             `toml:"formats" validate:"min=1,dive,oneof=svg dot json txt graphviz"`
	Theme   string               `toml:"theme" validate:"oneof=light dark"`
	Badge   pointer.BadgeMetrics `toml:"badge"`
	Palette map[string]string    `toml:"palette" validate:"dive,keys,palette_slot,endkeys,hexcolor"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend   string   `toml:"backend" validate:"oneof=file redis mongo none"`
	TTL       Duration `toml:"ttl"`
	Dir       string   `toml:"dir,omitempty"`
	RedisAddr string   `toml:"redis_addr,omitempty" validate:"required_if=Backend redis,omitempty,listen_addr"`
	RedisDB   int      `toml:"redis_db,omitempty" validate:"gte=0,lte=15"`
	Prefix    string   `toml:"prefix,omitempty"`
	MongoURI  string   `toml:"mongo_uri,omitempty" validate:"required_if=Backend mongo,omitempty,uri"`
	MongoDB   string   `toml:"mongo_db,omitempty"`
	MongoColl string   `toml:"mongo_collection,omitempty"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr            string   `toml:"addr" validate:"required,listen_addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
	MaxBodyBytes    int64    `toml:"max_body_bytes" validate:"gt=0"`
	// Strict rejects malformed documents instead of laying them out leniently.
	Strict bool `toml:"strict"`
}

// Duration is a time.Duration written as a Go duration string ("30s").
type Duration struct{ time.Duration }

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			NodeSize:          graph.DefaultNodeSize,
			LevelSpacing:      tree.DefaultLevelSpacing,
			Iterations:        graph.DefaultIterations,
			CircularThreshold: graph.DefaultCircularThreshold,
			Width:             320,
		},
		Render: RenderConfig{
			Formats: []string{"svg"},
			Theme:   "light",
			Badge:   pointer.DefaultBadgeMetrics(),
		},
		Cache: CacheConfig{
			Backend: cache.BackendFile,
			TTL:     Duration{cache.TTLLayout},
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     Duration{10 * time.Second},
			WriteTimeout:    Duration{30 * time.Second},
			ShutdownTimeout: Duration{10 * time.Second},
			MaxBodyBytes:    1 << 20,
		},
	}
}

// Dir returns the dskit config directory.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "dskit")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads and validates the config file at path. An empty path means
// [DefaultPath]. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	return load(path, true)
}

func load(path string, allowMissing bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && allowMissing {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if err := Decode(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg. Unknown keys are rejected so typos
// do not silently fall back to defaults.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	return nil
}

// Save writes cfg to path, creating parent directories. An empty path
// means [DefaultPath].
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// EnsureExists writes the defaults to path if no file exists there.
func EnsureExists(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return Save(Default(), path)
}

// Palette returns the default palette with the configured overrides.
func (c *Config) Palette() pointer.Palette {
	return pointer.DefaultPalette.With(c.Render.Palette)
}

// Params returns the layout export parameters.
func (c *Config) Params() model.Params {
	return model.Params{
		NodeSize: c.Layout.NodeSize,
		Badge:    c.Render.Badge,
		Palette:  c.Palette(),
	}
}

// PipelineOptions returns the pipeline options the configuration
// describes. Callers overlay flags or query parameters on the result.
func (c *Config) PipelineOptions() pipeline.Options {
	palette := make(map[string]string, len(c.Render.Palette))
	for slot, color := range c.Render.Palette {
		palette[slot] = color
	}
	return pipeline.Options{
		Width:             c.Layout.Width,
		Height:            c.Layout.Height,
		NodeSize:          c.Layout.NodeSize,
		LevelSpacing:      c.Layout.LevelSpacing,
		Iterations:        c.Layout.Iterations,
		CircularThreshold: c.Layout.CircularThreshold,
		Badge:             c.Render.Badge,
		Palette:           palette,
		Strict:            c.Server.Strict,
		Formats:           append([]string(nil), c.Render.Formats...),
		Theme:             c.Render.Theme,
	}
}

// CacheOptions returns the options for [cache.Open].
func (c *Config) CacheOptions() cache.Options {
	return cache.Options{
		Backend: c.Cache.Backend,
		Dir:     c.Cache.Dir,
		Redis: cache.RedisOptions{
			Addr:   c.Cache.RedisAddr,
			DB:     c.Cache.RedisDB,
			Prefix: c.Cache.Prefix,
		},
		Mongo: cache.MongoOptions{
			URI:        c.Cache.MongoURI,
			Database:   c.Cache.MongoDB,
			Collection: c.Cache.MongoColl,
		},
		Timeout: 5 * time.Second,
	}
}
