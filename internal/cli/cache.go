package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leetpulse/dskit/internal/config"
	"github.com/leetpulse/dskit/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached layout and artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config()
			cc, err := cache.Open(cmd.Context(), cfg.CacheOptions())
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer cc.Close()

			clearer, ok := cc.(cache.Clearer)
			if !ok {
				c.printWarning("The %s backend keeps nothing to clear", backendName(cfg))
				return nil
			}
			if err := clearer.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			c.printSuccess("Cleared the %s cache", backendName(cfg))
			c.printDetail("Location: %s", cacheLocation(cfg))
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache lives",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.Out, cacheLocation(c.config()))
			return nil
		},
	}
}

func backendName(cfg *config.Config) string {
	if cfg.Cache.Backend == "" {
		return cache.BackendFile
	}
	return cfg.Cache.Backend
}

// cacheLocation describes the configured backend: a directory for the file
// cache, a URL for remote backends.
func cacheLocation(cfg *config.Config) string {
	switch backendName(cfg) {
	case cache.BackendRedis:
		return fmt.Sprintf("redis://%s/%d", cfg.Cache.RedisAddr, cfg.Cache.RedisDB)
	case cache.BackendMongo:
		db, coll := cfg.Cache.MongoDB, cfg.Cache.MongoColl
		if db == "" {
			db = cache.DefaultMongoDatabase
		}
		if coll == "" {
			coll = cache.DefaultMongoCollection
		}
		return fmt.Sprintf("%s (%s.%s)", cfg.Cache.MongoURI, db, coll)
	case cache.BackendNone:
		return "(disabled)"
	}
	if cfg.Cache.Dir != "" {
		return cfg.Cache.Dir
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		return "(unavailable: " + err.Error() + ")"
	}
	return dir
}
