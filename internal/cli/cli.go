// Package cli implements the dskit command-line interface.
//
// # Commands
//
//   - layout: compute a graph or tree layout and write it as JSON
//   - render: lay out a document and render it to svg, dot, json, txt or graphviz
//   - visualize: render a previously computed layout
//   - validate: check a document strictly and list every problem
//   - palette: show the palette slot and color of annotation names
//   - play: drive a component store interactively
//   - serve: run the HTTP layout service
//   - cache: inspect and clear the layout cache
//
// # Configuration
//
// Defaults come from the TOML config file (see internal/config); flags
// override it. --config selects another file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/leetpulse/dskit/internal/config"
	"github.com/leetpulse/dskit/pkg/buildinfo"
	"github.com/leetpulse/dskit/pkg/cache"
	"github.com/leetpulse/dskit/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "dskit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Out receives command output; logs go to the logger's writer.
	Out io.Writer

	configPath string
	verbose    bool
	cfg        *config.Config
}

// New creates a CLI that logs to w at the given level and prints to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
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
		Short:        "dskit lays out and renders data-structure visualizations",
		Long:         `dskit computes layouts for graphs and binary trees, annotates them with pointer badges and motions, and renders them as SVG, Graphviz DOT, JSON or terminal text.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: "+config.DefaultPath()+")")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// Execute runs the root command with ctx.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(c.Out)
	return root.ExecuteContext(ctx)
}

// =============================================================================
// Configuration
// =============================================================================

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("loaded config", "path", c.resolvedConfigPath())
	return nil
}

func (c *CLI) config() *config.Config {
	if c.cfg == nil {
		return config.Default()
	}
	return c.cfg
}

func (c *CLI) resolvedConfigPath() string {
	if c.configPath != "" {
		return c.configPath
	}
	return config.DefaultPath()
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache. Keys
// are scoped to the build version so an upgrade never serves layouts an
// older engine computed.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	r := pipeline.NewRunner(cc, keyer, c.Logger)
	if ttl := c.config().Cache.TTL.Duration; ttl > 0 {
		r.TTL = ttl
	}
	return r, nil
}

// newCache opens the configured backend. An unreachable remote backend
// falls back to no caching so layout still works offline.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cc, err := cache.Open(ctx, c.config().CacheOptions())
	if err != nil {
		if stderrors.Is(err, cache.ErrUnavailable) {
			c.Logger.Warn("cache unavailable, continuing without it", "error", err)
			return cache.NewNullCache(), nil
		}
		return nil, err
	}
	return cc, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
