package catalog

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dkrasnow/m2scope/pkg/pom"
	"github.com/dkrasnow/m2scope/pkg/repo"
	"github.com/dkrasnow/m2scope/pkg/resolve"
)

const defaultScanWorkers = 8

// Dependent is one artifact whose descriptor declares a dependency on the
// search target.
type Dependent struct {
	resolve.Coordinate
	Path             string        `json:"pomPath"`
	DependsOnVersion string        `json:"dependsOnVersion,omitempty"`
	Scope            resolve.Scope `json:"dependencyScope"`
}

// DependentsOptions configures FindDependents.
type DependentsOptions struct {
	// Version restricts matches to dependencies declaring this exact
	// version. Empty matches any version.
	Version string
	// Limit caps the number of results; 0 means unlimited.
	Limit int
	// Workers bounds concurrent descriptor parsing (default: 8).
	Workers int
	// Logger receives per-descriptor failures (optional).
	Logger func(string, ...any)
}

// FindDependents scans every descriptor in the repository for declared
// dependencies on group:artifact. Malformed descriptors are skipped and
// logged; the scan checks ctx between files and stops early once Limit
// results are collected.
func (c *Catalog) FindDependents(ctx context.Context, group, artifact string, opts DependentsOptions) ([]Dependent, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultScanWorkers
	}
	logger := opts.Logger
	if logger == nil {
		logger = func(string, ...any) {}
	}

	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan string, workers*2)

	var (
		mu      sync.Mutex
		matches []Dependent
		wg      sync.WaitGroup
	)

	collect := func(found []Dependent) {
		mu.Lock()
		defer mu.Unlock()
		for _, d := range found {
			if opts.Limit > 0 && len(matches) >= opts.Limit {
				cancel()
				return
			}
			matches = append(matches, d)
		}
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				found, err := c.scanDescriptor(path, group, artifact, opts.Version)
				if err != nil {
					logger("scan %s: %v", path, err)
					continue
				}
				if len(found) > 0 {
					collect(found)
				}
			}
		}()
	}

	walkErr := filepath.WalkDir(c.repo.Root(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger("walk %s: %v", path, err)
			return nil
		}
		if scanCtx.Err() != nil {
			return fs.SkipAll
		}
		if !d.IsDir() && strings.HasSuffix(path, repo.DescriptorExt) {
			select {
			case jobs <- path:
			case <-scanCtx.Done():
				return fs.SkipAll
			}
		}
		return nil
	})

	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if walkErr != nil {
		return nil, walkErr
	}

	if opts.Limit > 0 && len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}
	return matches, nil
}

// scanDescriptor parses one descriptor and returns a Dependent entry for
// every declared dependency (including managed ones) matching the target.
func (c *Catalog) scanDescriptor(path, group, artifact, version string) ([]Dependent, error) {
	proj, err := pom.ParseFile(path)
	if err != nil {
		return nil, err
	}

	owner, ok := c.coordinateFromPath(path)
	if !ok {
		return nil, nil
	}

	var found []Dependent
	for _, d := range append(proj.Dependencies, proj.Management...) {
		if d.GroupID != group || d.ArtifactID != artifact {
			continue
		}
		if version != "" && d.Version != version {
			continue
		}
		scope := resolve.Scope(d.Scope)
		if scope == "" {
			scope = resolve.ScopeCompile
		}
		found = append(found, Dependent{
			Coordinate:       owner,
			Path:             path,
			DependsOnVersion: d.Version,
			Scope:            scope,
		})
	}
	return found, nil
}

// coordinateFromPath recovers the declaring artifact's coordinate from a
// descriptor path: <root>/<group dirs>/<artifact>/<version>/<file>.pom.
func (c *Catalog) coordinateFromPath(path string) (resolve.Coordinate, bool) {
	rel, err := filepath.Rel(c.repo.Root(), path)
	if err != nil {
		return resolve.Coordinate{}, false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) < 4 {
		return resolve.Coordinate{}, false
	}
	return resolve.Coordinate{
		Group:    strings.Join(parts[:len(parts)-3], "."),
		Artifact: parts[len(parts)-3],
		Version:  parts[len(parts)-2],
	}, true
}
