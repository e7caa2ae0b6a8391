package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/leetpulse/dskit/internal/config"
	"github.com/leetpulse/dskit/internal/server"
	"github.com/leetpulse/dskit/pkg/observability"
)

// serveCommand creates the serve command that runs the HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		watch   bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout service",
		Long: `Serve layout, render and palette endpoints over HTTP.

Routes:
  POST /v1/layout/{graph|tree}   compute a layout from a JSON or YAML document
  POST /v1/render/{format}       lay out and render a document
  GET  /v1/palette/{name}        palette slot and color of a name
  GET  /healthz                  liveness
  GET  /metrics                  Prometheus metrics

With --watch, edits to the config file apply to new requests without a
restart. The listen address and cache backend are read once at startup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, addr, watch, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: server.addr from config)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the config file when it changes")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, addr string, watch, noCache bool) error {
	ctx := cmd.Context()

	loader, err := config.NewLoader(c.configPath, c.Logger)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewPrometheus(reg)
	observability.SetPipelineHooks(metrics)
	observability.SetCacheHooks(metrics)
	observability.SetServerHooks(metrics)
	defer observability.Reset()

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	if watch {
		stop, err := loader.Watch()
		if err != nil {
			c.Logger.Warn("config watch disabled", "path", loader.Path(), "error", err)
		} else {
			defer stop()
			loader.OnChange(func(cfg *config.Config) {
				c.Logger.Info("config reloaded", "path", loader.Path(), "theme", cfg.Render.Theme)
			})
		}
	}

	sc := loader.Config().Server
	if addr != "" {
		sc.Addr = addr
	}

	c.Logger.Info("serving", "addr", sc.Addr, "config", loader.Path())
	srv := server.New(runner, loader, c.Logger, server.WithGatherer(reg))
	return srv.ListenAndServe(ctx, sc)
}
