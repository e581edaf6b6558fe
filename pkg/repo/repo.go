// Package repo maps Maven coordinates to paths inside a local,
// filesystem-organized artifact repository (the ~/.m2/repository layout).
//
// A coordinate (group, artifact, version) maps to
//
//	<root>/<group with dots as separators>/<artifact>/<version>/<artifact>-<version>.pom
//
// with the binary package as a sibling .jar. The repository is read-only:
// this package does pure path arithmetic plus existence checks.
package repo

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dkrasnow/m2scope/pkg/errors"
)

// DescriptorExt is the file extension of artifact descriptors.
const DescriptorExt = ".pom"

// PackageExt is the file extension of the default binary package type.
const PackageExt = ".jar"

// Repository is a handle to a local artifact repository root.
// It is immutable and safe for concurrent use.
type Repository struct {
	root string
}

// Open validates root and returns a Repository.
// Returns a REPOSITORY_UNAVAILABLE error if root does not exist or is not a
// directory; this is fatal for the session, not retried.
func Open(root string) (*Repository, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRepositoryUnavailable, err, "repository root %s", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeRepositoryUnavailable, "repository root %s is not a directory", root)
	}
	return &Repository{root: root}, nil
}

// Root returns the repository root directory.
func (r *Repository) Root() string { return r.root }

// DefaultRoot returns the conventional local repository location,
// ~/.m2/repository. Falls back to a relative path if the home directory
// cannot be determined.
func DefaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".m2", "repository")
	}
	return filepath.Join(home, ".m2", "repository")
}

// VersionDir returns the directory holding one artifact version's files.
// No existence check is performed.
func (r *Repository) VersionDir(group, artifact, version string) string {
	return filepath.Join(r.ArtifactDir(group, artifact), version)
}

// ArtifactDir returns the directory holding an artifact's version
// subdirectories. No existence check is performed.
func (r *Repository) ArtifactDir(group, artifact string) string {
	groupPath := filepath.FromSlash(strings.ReplaceAll(group, ".", "/"))
	return filepath.Join(r.root, groupPath, artifact)
}

// DescriptorPath returns the path to the descriptor file for a coordinate
// and whether it exists on disk. A missing descriptor is not an error;
// callers decide whether that is fatal.
func (r *Repository) DescriptorPath(group, artifact, version string) (string, bool) {
	path := filepath.Join(r.VersionDir(group, artifact, version), artifact+"-"+version+DescriptorExt)
	return path, fileExists(path)
}

// PackagePath returns the path to the main binary package for a coordinate
// and whether it exists.
func (r *Repository) PackagePath(group, artifact, version string) (string, bool) {
	path := filepath.Join(r.VersionDir(group, artifact, version), artifact+"-"+version+PackageExt)
	return path, fileExists(path)
}

// GroupFromDir converts a path relative to the repository root back to a
// dotted group ID. Returns empty string if dir is not under the root.
func (r *Repository) GroupFromDir(dir string) string {
	rel, err := filepath.Rel(r.root, dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", ".")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
