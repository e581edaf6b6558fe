package cli

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dkrasnow/m2scope/internal/server"
	"github.com/dkrasnow/m2scope/pkg/archive"
	"github.com/dkrasnow/m2scope/pkg/cache"
	"github.com/dkrasnow/m2scope/pkg/observability"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analysis API",
		Long: `Serve repository analysis over HTTP. Endpoints cover resolution,
dependency trees, version listings, dependent scans, and artifact search,
plus /healthz and Prometheus /metrics.

Configuration comes from config.toml and the environment; a .env file in
the working directory is loaded if present. Set cache.backend to "redis"
for a shared response cache and server.mongo_uri to archive resolution
reports.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Optional .env for local development.
			if err := godotenv.Load(); err == nil {
				c.Logger.Debug("loaded .env")
			}

			cfg := c.loadConfig()
			r, err := c.openRepo()
			if err != nil {
				return err
			}

			responseCache, err := c.newServeCache(cfg.Cache, noCache)
			if err != nil {
				return err
			}

			var store archive.Store
			mongoURI := cfg.Server.MongoURI
			if env := os.Getenv("M2SCOPE_MONGO_URI"); env != "" {
				mongoURI = env
			}
			if mongoURI != "" {
				store, err = archive.NewMongoStore(cmd.Context(), mongoURI, cfg.Server.database())
				if err != nil {
					return err
				}
				c.Logger.Info("report archive enabled", "database", cfg.Server.database())
			}

			srv, err := server.New(r, server.Options{
				Cache:    responseCache,
				Archive:  store,
				Logger:   c.Logger,
				CacheTTL: time.Duration(cfg.Cache.TTLMinutes) * time.Minute,
			})
			if err != nil {
				return err
			}
			defer srv.Close(cmd.Context())

			resolveHooks, cacheHooks := srv.Hooks()
			observability.SetResolveHooks(resolveHooks)
			observability.SetCacheHooks(cacheHooks)

			if addr == "" {
				addr = cfg.Server.addr()
			}
			return srv.Start(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable response caching")

	return cmd
}

// newServeCache builds the response cache from config.
func (c *CLI) newServeCache(cfg CacheConfig, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Backend == "none" {
		return cache.NewNullCache(), nil
	}

	if cfg.Backend == "redis" {
		addr := cfg.RedisAddr
		if addr == "" {
			addr = "localhost:6379"
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return cache.NewRedisCache(ctx, addr, cfg.RedisPassword, cfg.RedisDB)
	}

	dir := cfg.Dir
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}
