package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkrasnow/m2scope/pkg/render"
	"github.com/dkrasnow/m2scope/pkg/resolve"
)

// treeCommand creates the tree command.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		maxDepth int
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "tree <group:artifact:version>",
		Short: "Render the dependency tree",
		Long: `Resolve an artifact transitively and render the dependency tree.

Formats:
  text  box-drawing tree on stdout (default)
  dot   Graphviz DOT source
  svg   rendered SVG image (requires --output)
  png   rendered PNG image (requires --output)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := resolve.ParseCoordinate(args[0])
			if err != nil {
				return err
			}

			resolver, _, err := c.newResolver()
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			tree, err := resolver.Tree(cmd.Context(), coord, resolve.Options{
				MaxDepth: maxDepth,
				Logger:   logger.Debugf,
			})
			if err != nil {
				return err
			}

			switch format {
			case "text":
				fmt.Print(treeText(tree))
				return nil
			case "dot":
				dot := render.ToDOT(tree, render.Options{Detailed: detailed})
				return writeOutput(output, []byte(dot))
			case "svg", "png":
				if output == "" {
					return fmt.Errorf("--output is required for %s", format)
				}
				dot := render.ToDOT(tree, render.Options{Detailed: detailed})
				var data []byte
				if format == "svg" {
					data, err = render.SVG(cmd.Context(), dot)
				} else {
					data, err = render.PNG(cmd.Context(), dot)
				}
				if err != nil {
					return err
				}
				if err := writeOutput(output, data); err != nil {
					return err
				}
				printSuccess("Rendered %s", coord.Key())
				printFile(output)
				return nil
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "transitive depth bound (default 3)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, dot, svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout for text and dot)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include scope and depth in node labels")

	return cmd
}

// writeOutput writes data to path, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
