// Package catalog answers read-only queries over the whole repository:
// which versions of an artifact exist, which artifacts depend on a target,
// and what artifacts are published at all.
//
// Unlike resolution, these queries do not build dependency graphs; they are
// on-demand diagnostics built on the same descriptor parser. FindDependents
// is O(total descriptors in the repository) and accepts a context plus a
// result cap for that reason.
package catalog

import (
	"github.com/dkrasnow/m2scope/pkg/repo"
)

// Catalog serves repository-wide queries. Safe for concurrent use.
type Catalog struct {
	repo *repo.Repository
}

// New creates a Catalog over the given repository.
func New(r *repo.Repository) *Catalog {
	return &Catalog{repo: r}
}
