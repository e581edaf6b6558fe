// Package resolve implements the dependency-resolution and conflict-analysis
// engine over a local artifact repository.
//
// Resolution reads only descriptor files already present on disk: a
// coordinate is located, its descriptor parsed, parent properties merged
// (child values win), placeholders substituted, and — when requested — the
// transitive closure expanded depth-first up to a depth bound with cycle,
// optional, scope and exclusion filtering. Conflict detection and tree
// assembly are pure post-processing steps over the resolver's output.
//
// A Resolver is safe for concurrent use: every call allocates its own
// visited set and property tables, and the optional descriptor memo is the
// only shared state.
package resolve

import (
	"context"

	"github.com/dkrasnow/m2scope/pkg/errors"
	"github.com/dkrasnow/m2scope/pkg/pom"
	"github.com/dkrasnow/m2scope/pkg/repo"
)

// Resolver resolves descriptors and dependency graphs from a repository.
type Resolver struct {
	repo *repo.Repository
	memo *memo
}

// New creates a Resolver over the given repository.
func New(r *repo.Repository) *Resolver {
	return &Resolver{repo: r}
}

// NewCached creates a Resolver with a bounded, mtime-checked descriptor
// memo of at most size entries. The memo is a read-through performance
// layer; it is not required for correctness.
func NewCached(r *repo.Repository, size int) (*Resolver, error) {
	m, err := newMemo(size)
	if err != nil {
		return nil, err
	}
	return &Resolver{repo: r, memo: m}, nil
}

// Analyze resolves a single coordinate. NotFound and ParseError for the
// requested coordinate itself surface directly as the call's outcome;
// failures on individual branches during transitive expansion are isolated,
// logged via opts.Logger, and skipped.
func (r *Resolver) Analyze(ctx context.Context, coord Coordinate, opts Options) (*Result, error) {
	opts = opts.WithDefaults()

	desc, err := r.descriptor(ctx, coord, opts, nil)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Coordinate: desc.Coordinate,
		Path:       desc.Path,
		Properties: desc.Properties,
		Parent:     desc.Parent,
		Direct:     desc.Direct,
		Management: desc.Management,
		Modules:    desc.Modules,
	}

	if opts.Transitive {
		res.Transitive = r.Transitive(ctx, desc.Direct, opts.MaxDepth, opts)
	}

	res.Conflicts = DetectConflicts(res.Direct, res.Transitive)
	return res, nil
}

// Descriptor resolves a single coordinate non-transitively.
func (r *Resolver) Descriptor(ctx context.Context, coord Coordinate) (*Descriptor, error) {
	return r.descriptor(ctx, coord, Options{}.WithDefaults(), nil)
}

// descriptor builds one fully-resolved descriptor. The chain parameter
// carries the coordinate keys currently being resolved for parent
// properties, guarding against parent cycles in malformed repositories.
func (r *Resolver) descriptor(ctx context.Context, coord Coordinate, opts Options, chain []string) (*Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, ok := r.repo.DescriptorPath(coord.Group, coord.Artifact, coord.Version)
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "no descriptor for %s", coord.Key())
	}

	proj, err := r.parseProject(path)
	if err != nil {
		return nil, err
	}

	properties := make(map[string]string)

	var parent *ParentInfo
	if proj.Parent != nil {
		pc := Coordinate{
			Group:    proj.Parent.GroupID,
			Artifact: proj.Parent.ArtifactID,
			Version:  proj.Parent.Version,
		}
		parent = &ParentInfo{Coordinate: pc}

		parentProps, resolved := r.parentProperties(ctx, pc, opts, append(chain, coord.Key()))
		parent.Resolved = resolved
		for k, v := range parentProps {
			properties[k] = v
		}
	}

	// Local properties win on key collision with inherited ones.
	for k, v := range proj.Properties {
		properties[k] = v
	}

	return &Descriptor{
		Coordinate: coord,
		Path:       path,
		Properties: properties,
		Parent:     parent,
		Direct:     newDependencies(proj.Dependencies, properties),
		Management: newDependencies(proj.Management, properties),
		Modules:    proj.Modules,
	}, nil
}

// parentProperties resolves the parent descriptor's merged property table.
// The parent's own parent is followed by recursing into descriptor. Any
// failure degrades to an empty contribution: resolution proceeds with local
// properties only.
func (r *Resolver) parentProperties(ctx context.Context, parent Coordinate, opts Options, chain []string) (map[string]string, bool) {
	key := parent.Key()
	for _, k := range chain {
		if k == key {
			opts.Logger("parent cycle at %s, skipping inheritance", key)
			return nil, false
		}
	}

	desc, err := r.descriptor(ctx, parent, opts, chain)
	if err != nil {
		opts.Logger("parent %s unresolved: %v", key, err)
		return nil, false
	}
	return desc.Properties, true
}

// parseProject loads a raw descriptor, via the memo when one is configured.
func (r *Resolver) parseProject(path string) (*pom.Project, error) {
	if r.memo != nil {
		if proj, ok := r.memo.get(path); ok {
			return proj, nil
		}
	}
	proj, err := pom.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if r.memo != nil {
		r.memo.put(path, proj)
	}
	return proj, nil
}

// newDependencies converts raw entries, substituting placeholders in
// group/artifact/version once at construction. Entries missing group or
// artifact are dropped; version, scope and type default per the Maven
// conventions.
func newDependencies(raw []pom.Dependency, properties map[string]string) []Dependency {
	deps := make([]Dependency, 0, len(raw))
	for _, d := range raw {
		if d.GroupID == "" || d.ArtifactID == "" {
			continue
		}
		deps = append(deps, newDependency(d, properties))
	}
	return deps
}

func newDependency(raw pom.Dependency, properties map[string]string) Dependency {
	scope := Scope(raw.Scope)
	if scope == "" {
		scope = ScopeCompile
	}
	typ := raw.Type
	if typ == "" {
		typ = "jar"
	}

	var exclusions []Exclusion
	for _, e := range raw.Exclusions {
		if e.GroupID == "" || e.ArtifactID == "" {
			continue
		}
		exclusions = append(exclusions, Exclusion{Group: e.GroupID, Artifact: e.ArtifactID})
	}

	return Dependency{
		Coordinate: Coordinate{
			Group:    Substitute(raw.GroupID, properties),
			Artifact: Substitute(raw.ArtifactID, properties),
			Version:  Substitute(raw.Version, properties),
		},
		Scope:      scope,
		Type:       typ,
		Optional:   raw.Optional == "true",
		Classifier: raw.Classifier,
		Exclusions: exclusions,
	}
}
