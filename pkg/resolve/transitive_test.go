package resolve

import (
	"context"
	"testing"
)

func TestTransitiveZeroDepth(t *testing.T) {
	root := t.TempDir()
	writePOM(t, root, "lib", "a", "1.0", "")
	writePOM(t, root, "lib", "b", "1.0", depsBlock(dep("lib", "a", "1.0")))

	res := newTestResolver(t, root)
	direct := []Dependency{mkDep("lib", "b", "1.0")}

	if got := res.Transitive(context.Background(), direct, 0, Options{}); len(got) != 0 {
		t.Errorf("maxDepth=0 must yield empty expansion: %+v", got)
	}
	if got := res.Transitive(context.Background(), direct, -1, Options{}); len(got) != 0 {
		t.Errorf("negative maxDepth must yield empty expansion: %+v", got)
	}
}

func TestTransitiveDepthBound(t *testing.T) {
	// chain: app -> l1 -> l2 -> l3
	root := t.TempDir()
	writePOM(t, root, "lib", "l3", "1.0", "")
	writePOM(t, root, "lib", "l2", "1.0", depsBlock(dep("lib", "l3", "1.0")))
	writePOM(t, root, "lib", "l1", "1.0", depsBlock(dep("lib", "l2", "1.0")))

	res := newTestResolver(t, root)
	direct := []Dependency{mkDep("lib", "l1", "1.0")}

	shallow := res.Transitive(context.Background(), direct, 1, Options{})
	if len(shallow) != 1 || shallow[0].Key() != "lib:l2:1.0" {
		t.Errorf("depth 1 = %+v, want only l2", shallow)
	}

	deep := res.Transitive(context.Background(), direct, 3, Options{})
	keys := map[string]bool{}
	for _, td := range deep {
		keys[td.Key()] = true
	}
	if !keys["lib:l2:1.0"] || !keys["lib:l3:1.0"] {
		t.Errorf("depth 3 = %+v, want l2 and l3", deep)
	}
}

func TestTransitiveDepthLabel(t *testing.T) {
	root := t.TempDir()
	writePOM(t, root, "lib", "leaf", "1.0", "")
	writePOM(t, root, "lib", "mid", "1.0", depsBlock(dep("lib", "leaf", "1.0")))

	res := newTestResolver(t, root)
	out := res.Transitive(context.Background(), []Dependency{mkDep("lib", "mid", "1.0")}, 5, Options{})
	if len(out) != 1 {
		t.Fatalf("out = %+v", out)
	}
	// Depth carries the remaining-depth value at emission; provenance only.
	if out[0].Depth != 5 {
		t.Errorf("Depth = %d, want 5", out[0].Depth)
	}
}

func TestTransitiveSharedVisitedAcrossBranches(t *testing.T) {
	// Both b and c depend on shared; shared is expanded only once.
	root := t.TempDir()
	writePOM(t, root, "lib", "leaf", "1.0", "")
	writePOM(t, root, "lib", "shared", "1.0", depsBlock(dep("lib", "leaf", "1.0")))
	writePOM(t, root, "lib", "b", "1.0", depsBlock(dep("lib", "shared", "1.0")))
	writePOM(t, root, "lib", "c", "1.0", depsBlock(dep("lib", "shared", "1.0")))

	res := newTestResolver(t, root)
	direct := []Dependency{mkDep("lib", "b", "1.0"), mkDep("lib", "c", "1.0")}
	out := res.Transitive(context.Background(), direct, 5, Options{})

	var sharedExpansions int
	for _, td := range out {
		if td.Via == "lib:shared:1.0" {
			sharedExpansions++
		}
	}
	if sharedExpansions != 1 {
		t.Errorf("shared expanded %d times, want 1: %+v", sharedExpansions, out)
	}
}
