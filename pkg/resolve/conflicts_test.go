package resolve

import "testing"

func mkDep(group, artifact, version string) Dependency {
	return Dependency{
		Coordinate: Coordinate{Group: group, Artifact: artifact, Version: version},
		Scope:      ScopeCompile,
		Type:       "jar",
	}
}

func TestDetectConflicts(t *testing.T) {
	direct := []Dependency{mkDep("lib", "core", "1.0"), mkDep("lib", "util", "2.0")}
	transitive := []TransitiveDependency{
		{Dependency: mkDep("lib", "core", "2.0"), Via: "lib:other:1.0", Depth: 3},
		{Dependency: mkDep("lib", "util", "2.0"), Via: "lib:other:1.0", Depth: 3},
	}

	conflicts := DetectConflicts(direct, transitive)
	if len(conflicts) != 1 {
		t.Fatalf("len(conflicts) = %d, want 1: %+v", len(conflicts), conflicts)
	}

	c := conflicts[0]
	if c.Artifact != "lib:core" {
		t.Errorf("Artifact = %q, want lib:core", c.Artifact)
	}
	if len(c.Versions) != 2 {
		t.Errorf("Versions = %v, want two distinct", c.Versions)
	}
	if len(c.Occurrences) != 2 {
		t.Fatalf("Occurrences = %+v", c.Occurrences)
	}
	if c.Occurrences[0].Origin != "direct" || c.Occurrences[1].Origin != "transitive" {
		t.Errorf("origins = %s, %s", c.Occurrences[0].Origin, c.Occurrences[1].Origin)
	}
	if c.Occurrences[1].Via != "lib:other:1.0" {
		t.Errorf("Via = %q", c.Occurrences[1].Via)
	}
}

func TestDetectConflictsNone(t *testing.T) {
	direct := []Dependency{mkDep("lib", "core", "1.0")}
	transitive := []TransitiveDependency{
		{Dependency: mkDep("lib", "core", "1.0"), Via: "lib:b:1.0", Depth: 2},
	}

	if got := DetectConflicts(direct, transitive); len(got) != 0 {
		t.Errorf("same version everywhere must not conflict: %+v", got)
	}
}

func TestDetectConflictsIgnoresAbsentVersions(t *testing.T) {
	direct := []Dependency{mkDep("lib", "core", "1.0"), mkDep("lib", "core", "")}

	if got := DetectConflicts(direct, nil); len(got) != 0 {
		t.Errorf("absent versions must not count as distinct: %+v", got)
	}
}

func TestDetectConflictsEmpty(t *testing.T) {
	if got := DetectConflicts(nil, nil); len(got) != 0 {
		t.Errorf("DetectConflicts(nil, nil) = %+v", got)
	}
}
