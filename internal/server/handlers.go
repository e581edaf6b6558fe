package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dkrasnow/m2scope/pkg/archive"
	"github.com/dkrasnow/m2scope/pkg/catalog"
	"github.com/dkrasnow/m2scope/pkg/errors"
	"github.com/dkrasnow/m2scope/pkg/observability"
	"github.com/dkrasnow/m2scope/pkg/render"
	"github.com/dkrasnow/m2scope/pkg/resolve"
)

const reportIDHeader = "X-Report-ID"

func coordFromURL(r *http.Request) resolve.Coordinate {
	return resolve.Coordinate{
		Group:    chi.URLParam(r, "group"),
		Artifact: chi.URLParam(r, "artifact"),
		Version:  chi.URLParam(r, "version"),
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func queryBool(r *http.Request, name string) bool {
	return r.URL.Query().Get(name) == "true"
}

// cachedJSON serves a response from the cache or computes, stores and
// serves it. The key prefix (before the first colon) labels cache metrics.
func (s *Server) cachedJSON(w http.ResponseWriter, r *http.Request, key string, compute func() (any, error)) {
	keyType, _, _ := strings.Cut(key, ":")
	ctx := r.Context()

	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, keyType)
		writeJSONBytes(w, http.StatusOK, data)
		return
	}
	observability.Cache().OnCacheMiss(ctx, keyType)

	v, err := compute()
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "encode response"))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("cache write failed", "key", key, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, keyType, len(data))
	}
	writeJSONBytes(w, http.StatusOK, data)
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	coord := coordFromURL(r)
	opts := resolve.Options{
		Transitive: queryBool(r, "transitive"),
		MaxDepth:   queryInt(r, "maxDepth", 0),
		Logger:     s.logger.Debugf,
	}

	start := time.Now()
	observability.Resolve().OnResolveStart(r.Context(), coord.Key())
	res, err := s.resolver.Analyze(r.Context(), coord, opts)
	if err != nil {
		observability.Resolve().OnResolveComplete(r.Context(), coord.Key(), 0, 0, time.Since(start), err)
		writeError(w, err)
		return
	}
	observability.Resolve().OnResolveComplete(r.Context(), coord.Key(),
		len(res.Transitive), len(res.Conflicts), time.Since(start), nil)

	if s.archive != nil {
		id := uuid.NewString()
		report := archive.Report{
			ID:         id,
			Repository: s.repo.Root(),
			CreatedAt:  time.Now().UTC(),
			Result:     res,
		}
		if err := s.archive.Save(r.Context(), report); err != nil {
			s.logger.Warn("archive write failed", "id", id, "err", err)
		} else {
			w.Header().Set(reportIDHeader, id)
		}
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	coord := coordFromURL(r)
	maxDepth := queryInt(r, "maxDepth", 0)
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	buildTree := func() (*resolve.Tree, error) {
		return s.resolver.Tree(r.Context(), coord, resolve.Options{
			MaxDepth: maxDepth,
			Logger:   s.logger.Debugf,
		})
	}

	if format == "json" {
		key := s.keyer.TreeKey(coord.Key(), maxDepth)
		s.cachedJSON(w, r, key, func() (any, error) { return buildTree() })
		return
	}

	tree, err := buildTree()
	if err != nil {
		writeError(w, err)
		return
	}

	switch format {
	case "dot":
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		_, _ = w.Write([]byte(render.ToDOT(tree, render.Options{Detailed: queryBool(r, "detailed")})))
	case "svg":
		svg, err := render.SVG(r.Context(), render.ToDOT(tree, render.Options{}))
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render svg"))
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write(svg)
	case "png":
		png, err := render.PNG(r.Context(), render.ToDOT(tree, render.Options{}))
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render png"))
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	default:
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "unknown format %q", format))
	}
}

func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")
	artifact := chi.URLParam(r, "artifact")
	sortOrder := r.URL.Query().Get("sort")

	key := s.keyer.VersionsKey(group, artifact, sortOrder)
	s.cachedJSON(w, r, key, func() (any, error) {
		return s.catalog.ListVersions(group, artifact, catalog.VersionOptions{
			Sort: catalog.SortOrder(sortOrder),
		})
	})
}

func (s *Server) handleDependents(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")
	artifact := chi.URLParam(r, "artifact")
	version := r.URL.Query().Get("version")
	limit := queryInt(r, "limit", 0)

	key := s.keyer.DependentsKey(group, artifact, version, limit)
	s.cachedJSON(w, r, key, func() (any, error) {
		start := time.Now()
		deps, err := s.catalog.FindDependents(r.Context(), group, artifact, catalog.DependentsOptions{
			Version: version,
			Limit:   limit,
			Logger:  s.logger.Debugf,
		})
		observability.Resolve().OnScanComplete(r.Context(), "dependents", len(deps), time.Since(start), err)
		if err != nil {
			return nil, err
		}
		if deps == nil {
			deps = []catalog.Dependent{}
		}
		return deps, nil
	})
}

func (s *Server) handleArtifacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.ArtifactFilter{
		Group:    q.Get("group"),
		Artifact: q.Get("artifact"),
		Version:  q.Get("version"),
		Limit:    queryInt(r, "limit", 0),
	}

	start := time.Now()
	artifacts, err := s.catalog.ListArtifacts(r.Context(), filter)
	observability.Resolve().OnScanComplete(r.Context(), "artifacts", len(artifacts), time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	if artifacts == nil {
		artifacts = []catalog.Artifact{}
	}
	writeJSON(w, http.StatusOK, artifacts)
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		writeError(w, errors.New(errors.ErrCodeUnsupported, "report archive not configured"))
		return
	}
	reports, err := s.archive.Recent(r.Context(), s.repo.Root(), queryInt(r, "limit", 20))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "list reports"))
		return
	}
	if reports == nil {
		reports = []archive.Report{}
	}
	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		writeError(w, errors.New(errors.ErrCodeUnsupported, "report archive not configured"))
		return
	}
	report, err := s.archive.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == archive.ErrNotFound {
			writeError(w, errors.New(errors.ErrCodeNotFound, "no report %q", chi.URLParam(r, "id")))
			return
		}
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "load report"))
		return
	}
	writeJSON(w, http.StatusOK, report)
}
