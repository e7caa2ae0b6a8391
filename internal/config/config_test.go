package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/leetpulse/dskit/pkg/errors"
	"github.com/leetpulse/dskit/pkg/pointer"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[layout]
node_size = 40
width = 640

[render]
formats = ["svg", "json"]
theme = "dark"

[render.palette]
danger = "#FF0000"

[cache]
backend = "redis"
redis_addr = "localhost:6379"
ttl = "1h"

[server]
addr = "127.0.0.1:9090"
strict = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 40.0, cfg.Layout.NodeSize)
	require.Equal(t, 640.0, cfg.Layout.Width)
	require.Equal(t, Default().Layout.Height, cfg.Layout.Height)
	require.Equal(t, []string{"svg", "json"}, cfg.Render.Formats)
	require.Equal(t, "dark", cfg.Render.Theme)
	require.Equal(t, time.Hour, cfg.Cache.TTL.Duration)
	require.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	require.True(t, cfg.Server.Strict)

	p := cfg.Palette()
	require.Equal(t, "#FF0000", p.Color(pointer.SlotDanger))
	require.Equal(t, pointer.DefaultPalette.Color(pointer.SlotAccent), p.Color(pointer.SlotAccent))

	params := cfg.Params()
	require.Equal(t, 40.0, params.NodeSize)

	opts := cfg.CacheOptions()
	require.Equal(t, "redis", opts.Backend)
	require.Equal(t, "localhost:6379", opts.Redis.Addr)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[layout]\nnode_sise = 40\n")
	_, err := Load(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[layout\n")
	_, err := Load(path)
	require.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		detail string
	}{
		{"zero node size", func(c *Config) { c.Layout.NodeSize = 0 }, "layout.node_size"},
		{"huge width", func(c *Config) { c.Layout.Width = 1e6 }, "layout.width"},
		{"negative iterations", func(c *Config) { c.Layout.Iterations = -1 }, "layout.iterations"},
		{"no formats", func(c *Config) { c.Render.Formats = nil }, "render.formats"},
		{"bad format", func(c *Config) { c.Render.Formats = []string{"png"} }, "render.formats[0]"},
		{"bad theme", func(c *Config) { c.Render.Theme = "neon" }, "render.theme"},
		{"bad palette slot", func(c *Config) { c.Render.Palette = map[string]string{"magenta": "#FF00FF"} }, "render.palette"},
		{"bad palette color", func(c *Config) { c.Render.Palette = map[string]string{"danger": "red-ish"} }, "render.palette[danger]"},
		{"zero badge font", func(c *Config) { c.Render.Badge.FontSize = 0 }, "render.badge.font_size"},
		{"bad backend", func(c *Config) { c.Cache.Backend = "memcached" }, "cache.backend"},
		{"redis without addr", func(c *Config) { c.Cache.Backend = "redis" }, "cache.redis_addr"},
		{"mongo without uri", func(c *Config) { c.Cache.Backend = "mongo" }, "cache.mongo_uri"},
		{"bad listen addr", func(c *Config) { c.Server.Addr = "localhost" }, "server.addr"},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout.Duration = -time.Second }, "server.read_timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			require.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))

			details := errors.Details(err)
			require.NotEmpty(t, details)
			found := false
			for _, d := range details {
				if len(d) >= len(tt.detail) && d[:len(tt.detail)] == tt.detail {
					found = true
				}
			}
			require.Truef(t, found, "no detail starting with %q in %v", tt.detail, details)
		})
	}
}

func TestValidateNil(t *testing.T) {
	require.True(t, errors.Is(Validate(nil), errors.ErrCodeInvalidConfig))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Layout.NodeSize = 42
	cfg.Render.Palette = map[string]string{"accent": "#123456"}
	cfg.Server.ShutdownTimeout = Duration{3 * time.Second}

	require.NoError(t, Save(cfg, path))
	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestEnsureExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, EnsureExists(path))
	require.FileExists(t, path)

	require.NoError(t, os.WriteFile(path, []byte("[layout]\nnode_size = 12\n"), 0o644))
	require.NoError(t, EnsureExists(path))
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 12.0, cfg.Layout.NodeSize)
}

func TestDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	require.Equal(t, filepath.Join("/tmp/xdg", "dskit"), Dir())
	require.Equal(t, filepath.Join("/tmp/xdg", "dskit", "config.toml"), DefaultPath())
}

func TestLoaderReload(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[layout]\nnode_size = 20\n")
	l, err := NewLoader(path, log.New(os.Stderr))
	require.NoError(t, err)
	require.Equal(t, 20.0, l.Config().Layout.NodeSize)

	var calls atomic.Int32
	l.OnChange(func(*Config) { calls.Add(1) })

	require.NoError(t, os.WriteFile(path, []byte("[layout]\nnode_size = 25\n"), 0o644))
	cfg, err := l.Reload()
	require.NoError(t, err)
	require.Equal(t, 25.0, cfg.Layout.NodeSize)
	require.Equal(t, int32(1), calls.Load())

	require.NoError(t, os.WriteFile(path, []byte("[layout]\nnode_size = -1\n"), 0o644))
	_, err = l.Reload()
	require.Error(t, err)
	require.Equal(t, 25.0, l.Config().Layout.NodeSize, "invalid reload must keep previous config")

	require.NoError(t, os.Remove(path))
	_, err = l.Reload()
	require.Error(t, err)
}

func TestLoaderWatch(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[layout]\nnode_size = 20\n")
	l, err := NewLoader(path, log.New(os.Stderr))
	require.NoError(t, err)

	changed := make(chan float64, 4)
	l.OnChange(func(c *Config) { changed <- c.Layout.NodeSize })

	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("[layout]\nnode_size = 33\n"), 0o644))
	require.Eventually(t, func() bool {
		return l.Config().Layout.NodeSize == 33
	}, 5*time.Second, 20*time.Millisecond)

	stop()
	stop()
}

func TestPipelineOptions(t *testing.T) {
	cfg := Default()
	cfg.Layout.Width = 500
	cfg.Render.Formats = []string{"svg", "dot"}
	cfg.Render.Palette = map[string]string{"accent": "#000000"}
	cfg.Server.Strict = true

	opts := cfg.PipelineOptions()
	require.Equal(t, 500.0, opts.Width)
	require.Zero(t, opts.Height)
	require.True(t, opts.Strict)
	require.Equal(t, []string{"svg", "dot"}, opts.Formats)

	opts.Formats[0] = "json"
	opts.Palette["accent"] = "#FFFFFF"
	require.Equal(t, "svg", cfg.Render.Formats[0], "options must not alias the config")
	require.Equal(t, "#000000", cfg.Render.Palette["accent"])

	require.NoError(t, opts.Validate())
}
