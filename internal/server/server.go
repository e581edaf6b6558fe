// Package server exposes repository analysis over HTTP.
//
// The server is read-only: every endpoint answers queries against the
// local repository and never mutates it. Responses for the expensive
// query surfaces are cached when a cache backend is configured, and
// resolution reports can be archived for later comparison.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/dkrasnow/m2scope/pkg/archive"
	"github.com/dkrasnow/m2scope/pkg/cache"
	"github.com/dkrasnow/m2scope/pkg/catalog"
	"github.com/dkrasnow/m2scope/pkg/repo"
	"github.com/dkrasnow/m2scope/pkg/resolve"
)

// DefaultCacheTTL bounds how long cached responses stay valid. The
// repository can change on disk at any time, so responses expire rather
// than being invalidated.
const DefaultCacheTTL = 5 * time.Minute

// descriptorMemoSize is the parsed-descriptor memo capacity for the
// server's shared resolver.
const descriptorMemoSize = 1024

// Options configures optional server collaborators. Zero values disable
// the corresponding feature.
type Options struct {
	Cache    cache.Cache   // response cache (default: disabled)
	Keyer    cache.Keyer   // cache key builder (default: repo-scoped)
	Archive  archive.Store // report archive (default: disabled)
	Logger   *log.Logger   // request logger (default: log.Default())
	CacheTTL time.Duration // response TTL (default: 5m)
}

// Server wires the resolver and catalog behind an HTTP API.
type Server struct {
	repo     *repo.Repository
	resolver *resolve.Resolver
	catalog  *catalog.Catalog
	cache    cache.Cache
	keyer    cache.Keyer
	archive  archive.Store
	logger   *log.Logger
	ttl      time.Duration
	metrics  *metrics
}

// New creates a server over the given repository.
func New(r *repo.Repository, opts Options) (*Server, error) {
	resolver, err := resolve.NewCached(r, descriptorMemoSize)
	if err != nil {
		return nil, err
	}

	c := opts.Cache
	if c == nil {
		c = cache.NewNullCache()
	}
	keyer := opts.Keyer
	if keyer == nil {
		// Scope keys by repository root so two servers sharing one Redis
		// instance never serve each other's responses.
		keyer = cache.NewScopedKeyer(nil, cache.Hash([]byte(r.Root()))[:12]+":")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	s := &Server{
		repo:     r,
		resolver: resolver,
		catalog:  catalog.New(r),
		cache:    c,
		keyer:    keyer,
		archive:  opts.Archive,
		logger:   logger,
		ttl:      ttl,
		metrics:  newMetrics(),
	}
	return s, nil
}

// Router assembles the chi route tree.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(s.measure)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/resolve/{group}/{artifact}/{version}", s.handleResolve)
		r.Get("/tree/{group}/{artifact}/{version}", s.handleTree)
		r.Get("/versions/{group}/{artifact}", s.handleVersions)
		r.Get("/dependents/{group}/{artifact}", s.handleDependents)
		r.Get("/artifacts", s.handleArtifacts)
		r.Get("/reports", s.handleReports)
		r.Get("/reports/{id}", s.handleReport)
	})

	return r
}

// Start runs the HTTP server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("server listening", "addr", addr, "repository", s.repo.Root())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Close releases the cache and archive backends.
func (s *Server) Close(ctx context.Context) error {
	err := s.cache.Close()
	if s.archive != nil {
		if aerr := s.archive.Close(ctx); err == nil {
			err = aerr
		}
	}
	return err
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":     "ok",
		"repository": s.repo.Root(),
	})
}
