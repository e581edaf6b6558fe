package resolve

import "context"

// Tree is a nested presentation of a resolution: each direct dependency
// carries the transitive dependencies it introduced.
type Tree struct {
	Root  Coordinate `json:"root"`
	Nodes []TreeNode `json:"dependencies"`
}

// TreeNode is one direct dependency with its introduced children.
type TreeNode struct {
	Dependency
	Children []TransitiveDependency `json:"children"`
}

// BuildTree reattaches transitive entries to the direct dependency whose key
// matches their Via edge. Purely presentational; resolution is not re-run.
// Transitive entries introduced by deeper, non-direct dependencies keep
// their flat position in the resolution result and do not appear here.
func BuildTree(root Coordinate, direct []Dependency, transitive []TransitiveDependency) *Tree {
	byVia := make(map[string][]TransitiveDependency)
	for _, td := range transitive {
		byVia[td.Via] = append(byVia[td.Via], td)
	}

	nodes := make([]TreeNode, 0, len(direct))
	for _, d := range direct {
		nodes = append(nodes, TreeNode{Dependency: d, Children: byVia[d.Key()]})
	}
	return &Tree{Root: root, Nodes: nodes}
}

// Tree resolves coord transitively and assembles the dependency tree.
func (r *Resolver) Tree(ctx context.Context, coord Coordinate, opts Options) (*Tree, error) {
	opts.Transitive = true
	res, err := r.Analyze(ctx, coord, opts)
	if err != nil {
		return nil, err
	}
	return BuildTree(res.Coordinate, res.Direct, res.Transitive), nil
}
