package resolve

import (
	"strings"

	"github.com/dkrasnow/m2scope/pkg/errors"
)

// UnknownVersion is used in coordinate keys when a dependency entry declares
// no version (e.g., versions managed by a parent outside the modeled subset).
const UnknownVersion = "unknown"

// DefaultMaxDepth bounds transitive expansion when Options.MaxDepth is unset.
const DefaultMaxDepth = 3

// Coordinate identifies one published artifact. Immutable once constructed.
type Coordinate struct {
	Group    string `json:"groupId"`
	Artifact string `json:"artifactId"`
	Version  string `json:"version,omitempty"`
}

// Key returns the group:artifact:version identity string used for cycle
// detection and tree linking. The version falls back to UnknownVersion when
// absent.
func (c Coordinate) Key() string {
	v := c.Version
	if v == "" {
		v = UnknownVersion
	}
	return c.Group + ":" + c.Artifact + ":" + v
}

// GA returns the group:artifact pair, the grouping key for conflict
// detection.
func (c Coordinate) GA() string {
	return c.Group + ":" + c.Artifact
}

// String returns the coordinate in group:artifact:version form.
func (c Coordinate) String() string { return c.Key() }

// ParseCoordinate parses a "group:artifact:version" string.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Coordinate{}, errors.New(errors.ErrCodeInvalidCoordinate,
			"invalid coordinate %q (expected group:artifact:version)", s)
	}
	return Coordinate{Group: parts[0], Artifact: parts[1], Version: parts[2]}, nil
}

// ParseGA parses a "group:artifact" string, version left absent.
func ParseGA(s string) (Coordinate, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Coordinate{}, errors.New(errors.ErrCodeInvalidCoordinate,
			"invalid coordinate %q (expected group:artifact)", s)
	}
	return Coordinate{Group: parts[0], Artifact: parts[1]}, nil
}

// Scope is the declared usage context of a dependency. It controls whether
// the dependency propagates transitively.
type Scope string

// Maven dependency scopes.
const (
	ScopeCompile  Scope = "compile"
	ScopeProvided Scope = "provided"
	ScopeRuntime  Scope = "runtime"
	ScopeTest     Scope = "test"
	ScopeSystem   Scope = "system"
	ScopeImport   Scope = "import"
)

// Exclusion suppresses a transitive sub-dependency, matched on group and
// artifact only (version-agnostic).
type Exclusion struct {
	Group    string `json:"groupId"`
	Artifact string `json:"artifactId"`
}

// Dependency is one declared dependency with substitution already applied.
// Never mutated after construction.
type Dependency struct {
	Coordinate
	Scope      Scope       `json:"scope"`
	Type       string      `json:"type"`
	Optional   bool        `json:"optional"`
	Classifier string      `json:"classifier,omitempty"`
	Exclusions []Exclusion `json:"exclusions,omitempty"`
}

// Excludes reports whether d declares an exclusion on (group, artifact).
func (d Dependency) Excludes(group, artifact string) bool {
	for _, e := range d.Exclusions {
		if e.Group == group && e.Artifact == artifact {
			return true
		}
	}
	return false
}

// TransitiveDependency is a dependency reached by recursive expansion.
// Via is the key of the dependency that introduced it; Depth is the
// remaining-depth value at emission time, provenance metadata only — it is
// not an ordering or precedence signal.
type TransitiveDependency struct {
	Dependency
	Via   string `json:"via"`
	Depth int    `json:"depth"`
}

// ParentInfo describes a descriptor's parent reference and whether its
// property table could be merged.
type ParentInfo struct {
	Coordinate
	Resolved bool `json:"resolved"`
}

// Descriptor is one fully-resolved artifact descriptor: parent properties
// merged, placeholders substituted into dependency coordinates.
type Descriptor struct {
	Coordinate
	Path       string            `json:"pomPath"`
	Properties map[string]string `json:"properties"`
	Parent     *ParentInfo       `json:"parent,omitempty"`
	Direct     []Dependency      `json:"directDependencies"`
	Management []Dependency      `json:"dependencyManagement"`
	Modules    []string          `json:"modules,omitempty"`
}

// Occurrence records one sighting of a group:artifact during resolution.
type Occurrence struct {
	Version string `json:"version,omitempty"`
	Origin  string `json:"origin"` // "direct" or "transitive"
	Via     string `json:"via,omitempty"`
	Scope   Scope  `json:"scope"`
}

// Conflict reports a group:artifact reachable at more than one distinct
// declared version. No winner is chosen; conflict-resolution policy
// (nearest-wins, highest-wins) is left to the caller.
type Conflict struct {
	Artifact    string       `json:"artifact"` // "group:artifact"
	Versions    []string     `json:"versions"`
	Occurrences []Occurrence `json:"occurrences"`
}

// Result is the outcome of a single-artifact resolution.
// Transitive is nil unless Options.Transitive was set.
type Result struct {
	Coordinate
	Path       string                 `json:"pomPath"`
	Properties map[string]string      `json:"properties"`
	Parent     *ParentInfo            `json:"parent,omitempty"`
	Direct     []Dependency           `json:"directDependencies"`
	Management []Dependency           `json:"dependencyManagement"`
	Modules    []string               `json:"modules,omitempty"`
	Transitive []TransitiveDependency `json:"transitiveDependencies,omitempty"`
	Conflicts  []Conflict             `json:"conflicts"`
}

// Options configures one resolution call. All state derived from Options is
// allocated per-call; a Resolver may be shared across goroutines.
type Options struct {
	Transitive bool                 // expand transitive dependencies
	MaxDepth   int                  // depth bound for expansion (default: 3)
	Logger     func(string, ...any) // progress/error callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by
// defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}
