package resolve

import (
	"context"
	"testing"
)

func TestBuildTree(t *testing.T) {
	root := Coordinate{Group: "lib", Artifact: "app", Version: "1.0"}
	direct := []Dependency{mkDep("lib", "b", "1.0"), mkDep("lib", "c", "1.0")}
	transitive := []TransitiveDependency{
		{Dependency: mkDep("lib", "x", "1.0"), Via: "lib:b:1.0", Depth: 3},
		{Dependency: mkDep("lib", "y", "1.0"), Via: "lib:b:1.0", Depth: 3},
		{Dependency: mkDep("lib", "z", "1.0"), Via: "lib:x:1.0", Depth: 2},
	}

	tree := BuildTree(root, direct, transitive)

	if tree.Root != root {
		t.Errorf("Root = %v", tree.Root)
	}
	if len(tree.Nodes) != 2 {
		t.Fatalf("len(Nodes) = %d, want 2", len(tree.Nodes))
	}

	b := tree.Nodes[0]
	if len(b.Children) != 2 {
		t.Errorf("b children = %+v, want x and y", b.Children)
	}

	c := tree.Nodes[1]
	if len(c.Children) != 0 {
		t.Errorf("c children = %+v, want none", c.Children)
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	tree := BuildTree(Coordinate{Group: "g", Artifact: "a", Version: "1"}, nil, nil)
	if len(tree.Nodes) != 0 {
		t.Errorf("Nodes = %+v", tree.Nodes)
	}
}

func TestResolverTree(t *testing.T) {
	root := t.TempDir()
	writePOM(t, root, "lib", "a", "1.0", "")
	writePOM(t, root, "lib", "b", "1.0", depsBlock(dep("lib", "a", "1.0")))
	writePOM(t, root, "lib", "app", "1.0", depsBlock(dep("lib", "b", "1.0")))

	res := newTestResolver(t, root)
	tree, err := res.Tree(context.Background(), Coordinate{Group: "lib", Artifact: "app", Version: "1.0"}, Options{MaxDepth: 3})
	if err != nil {
		t.Fatalf("Tree failed: %v", err)
	}

	if len(tree.Nodes) != 1 {
		t.Fatalf("len(Nodes) = %d, want 1", len(tree.Nodes))
	}
	node := tree.Nodes[0]
	if node.Key() != "lib:b:1.0" {
		t.Errorf("node = %s", node.Key())
	}
	if len(node.Children) != 1 || node.Children[0].Key() != "lib:a:1.0" {
		t.Errorf("children = %+v", node.Children)
	}
}
