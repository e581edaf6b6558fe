package catalog

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/dkrasnow/m2scope/pkg/repo"
)

// DefaultArtifactLimit caps ListArtifacts results when no limit is given.
const DefaultArtifactLimit = 50

// Artifact is one published group/artifact/version directory.
type Artifact struct {
	Group    string   `json:"groupId"`
	Artifact string   `json:"artifactId"`
	Version  string   `json:"version"`
	Packages []string `json:"packages,omitempty"`
	Path     string   `json:"path"`
}

// ArtifactFilter narrows ListArtifacts output. String fields are substring
// matches; empty fields match everything.
type ArtifactFilter struct {
	Group    string
	Artifact string
	Version  string
	Limit    int // default: 50
}

// ListArtifacts walks the repository and returns every version directory
// holding a descriptor or package file, up to the filter's limit.
func (c *Catalog) ListArtifacts(ctx context.Context, filter ArtifactFilter) ([]Artifact, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultArtifactLimit
	}

	seen := make(map[string]int) // version dir -> index into out
	var out []Artifact

	err := filepath.WalkDir(c.repo.Root(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}

		isPom := strings.HasSuffix(path, repo.DescriptorExt)
		isJar := strings.HasSuffix(path, repo.PackageExt)
		if !isPom && !isJar {
			return nil
		}

		dir := filepath.Dir(path)
		if idx, ok := seen[dir]; ok {
			if isJar {
				out[idx].Packages = append(out[idx].Packages, filepath.Base(path))
			}
			return nil
		}

		version := filepath.Base(dir)
		artifactDir := filepath.Dir(dir)
		artifact := filepath.Base(artifactDir)
		group := c.repo.GroupFromDir(filepath.Dir(artifactDir))
		if group == "" {
			return nil
		}

		if !strings.Contains(group, filter.Group) ||
			!strings.Contains(artifact, filter.Artifact) ||
			!strings.Contains(version, filter.Version) {
			return nil
		}

		if len(out) >= limit {
			return fs.SkipAll
		}

		entry := Artifact{Group: group, Artifact: artifact, Version: version, Path: dir}
		if isJar {
			entry.Packages = append(entry.Packages, filepath.Base(path))
		}
		seen[dir] = len(out)
		out = append(out, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
