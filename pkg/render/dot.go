// Package render converts assembled dependency trees into Graphviz DOT
// and rasterized SVG/PNG output.
package render

import (
	"bytes"
	"fmt"

	"github.com/dkrasnow/m2scope/pkg/resolve"
)

// Options configures DOT generation.
type Options struct {
	// Detailed adds scope and depth to node labels. When false, labels
	// carry only the coordinate.
	Detailed bool

	// Conflicts marks the listed artifacts with a highlight fill. Keys
	// are group:artifact pairs.
	Conflicts []resolve.Conflict
}

// ToDOT converts a dependency tree to Graphviz DOT. Artifacts involved in
// version conflicts are filled in a highlight color; the root is drawn
// bold. The DOT string feeds [SVG] and [PNG].
func ToDOT(tree *resolve.Tree, opts Options) string {
	conflicted := make(map[string]bool, len(opts.Conflicts))
	for _, c := range opts.Conflicts {
		conflicted[c.Artifact] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph deps {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	rootKey := tree.Root.Key()
	fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,bold\"];\n", rootKey, rootKey)

	for _, node := range tree.Nodes {
		key := node.Coordinate.Key()
		fmt.Fprintf(&buf, "  %q [%s];\n", key, nodeAttrs(node.Dependency, 1, conflicted, opts.Detailed))
		fmt.Fprintf(&buf, "  %q -> %q;\n", rootKey, key)

		for _, child := range node.Children {
			childKey := child.Coordinate.Key()
			fmt.Fprintf(&buf, "  %q [%s];\n", childKey, nodeAttrs(child.Dependency, child.Depth, conflicted, opts.Detailed))
			fmt.Fprintf(&buf, "  %q -> %q;\n", key, childKey)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(d resolve.Dependency, depth int, conflicted map[string]bool, detailed bool) string {
	label := d.Key()
	if detailed {
		scope := d.Scope
		if scope == "" {
			scope = resolve.ScopeCompile
		}
		label = fmt.Sprintf("%s\nscope: %s, depth: %d", label, scope, depth)
	}

	attrs := fmt.Sprintf("label=%q", label)
	if conflicted[d.GA()] {
		attrs += `, fillcolor=lightcoral`
	}
	if d.Optional {
		attrs += `, style="rounded,filled,dashed"`
	}
	return attrs
}
