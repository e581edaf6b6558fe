package resolve

import "context"

// Transitive expands a set of direct dependencies depth-first up to maxDepth
// levels. A maxDepth of zero or less yields no expansion. The visited set is
// allocated per call; see the walk below for its sharing semantics.
func (r *Resolver) Transitive(ctx context.Context, direct []Dependency, maxDepth int, opts Options) []TransitiveDependency {
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	visited := make(map[string]bool)
	return r.transitive(ctx, direct, maxDepth, visited, opts)
}

// transitive expands direct dependencies depth-first up to depth levels.
//
// The visited set is shared across the whole walk, not per-branch: a
// coordinate expanded once in any branch is never re-expanded, even when
// reached again via a different path. This bounds total work to at most one
// expansion per distinct coordinate and guarantees termination over cyclic
// descriptor graphs.
//
// Optional dependencies are skipped before entering the visited set;
// system-scope dependencies are marked visited but not expanded. A failure
// resolving one dependency's descriptor skips that branch and continues the
// walk.
func (r *Resolver) transitive(ctx context.Context, direct []Dependency, depth int, visited map[string]bool, opts Options) []TransitiveDependency {
	if depth <= 0 {
		return nil
	}

	var out []TransitiveDependency
	for _, d := range direct {
		if ctx.Err() != nil {
			return out
		}

		key := d.Key()
		if visited[key] || d.Optional {
			continue
		}
		visited[key] = true

		if d.Scope == ScopeSystem {
			continue
		}

		desc, err := r.descriptor(ctx, d.Coordinate, opts, nil)
		if err != nil {
			opts.Logger("transitive resolve failed: %s: %v", key, err)
			continue
		}

		for _, sub := range desc.Direct {
			if d.Excludes(sub.Group, sub.Artifact) {
				continue
			}
			out = append(out, TransitiveDependency{Dependency: sub, Via: key, Depth: depth})
		}

		out = append(out, r.transitive(ctx, desc.Direct, depth-1, visited, opts)...)
	}
	return out
}
