package catalog

import (
	"os"
	"sort"
	"time"

	"github.com/Masterminds/semver/v3"
)

// SortOrder selects the version-ordering strategy for ListVersions.
type SortOrder string

const (
	// SortLexical orders versions as plain strings, descending. This is
	// the default and a documented simplification: "1.10.0" sorts before
	// "1.9.0".
	SortLexical SortOrder = "lexical"

	// SortSemver orders semver-parseable versions numerically, descending.
	// Versions that do not parse sort after all parseable ones,
	// lexicographically.
	SortSemver SortOrder = "semver"
)

// VersionInfo describes one published version of an artifact.
type VersionInfo struct {
	Version       string    `json:"version"`
	HasDescriptor bool      `json:"hasPom"`
	HasPackage    bool      `json:"hasJar"`
	Path          string    `json:"path"`
	PomSize       int64     `json:"pomSize,omitempty"`
	LastModified  time.Time `json:"lastModified,omitempty"`
}

// VersionOptions configures ListVersions.
type VersionOptions struct {
	Sort SortOrder // default: SortLexical
}

// ListVersions enumerates the version subdirectories under an artifact's
// path, reporting which descriptor and package files exist. An artifact with
// no directory yields an empty list, not an error.
func (c *Catalog) ListVersions(group, artifact string, opts VersionOptions) ([]VersionInfo, error) {
	dir := c.repo.ArtifactDir(group, artifact)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []VersionInfo{}, nil
		}
		return nil, err
	}

	versions := make([]VersionInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		version := entry.Name()

		info := VersionInfo{
			Version: version,
			Path:    c.repo.VersionDir(group, artifact, version),
		}

		pomPath, hasPom := c.repo.DescriptorPath(group, artifact, version)
		info.HasDescriptor = hasPom
		_, info.HasPackage = c.repo.PackagePath(group, artifact, version)

		if hasPom {
			if stat, err := os.Stat(pomPath); err == nil {
				info.PomSize = stat.Size()
				info.LastModified = stat.ModTime()
			}
		}

		versions = append(versions, info)
	}

	sortVersions(versions, opts.Sort)
	return versions, nil
}

func sortVersions(versions []VersionInfo, order SortOrder) {
	switch order {
	case SortSemver:
		sort.SliceStable(versions, func(i, j int) bool {
			vi, ei := semver.NewVersion(versions[i].Version)
			vj, ej := semver.NewVersion(versions[j].Version)
			switch {
			case ei == nil && ej == nil:
				return vi.GreaterThan(vj)
			case ei == nil:
				return true
			case ej == nil:
				return false
			default:
				return versions[i].Version > versions[j].Version
			}
		})
	default:
		sort.SliceStable(versions, func(i, j int) bool {
			return versions[i].Version > versions[j].Version
		})
	}
}
