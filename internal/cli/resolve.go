package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkrasnow/m2scope/pkg/resolve"
)

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var (
		transitive bool
		maxDepth   int
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <group:artifact:version>",
		Short: "Analyze one artifact's dependencies and conflicts",
		Long: `Resolve an artifact's descriptor from the local repository: parent
properties are merged, placeholders substituted, and direct dependencies
listed. With --transitive the dependency graph is expanded depth-first up
to --max-depth and version conflicts are reported.`,
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
			prog := newProgress(logger)
			res, err := resolver.Analyze(cmd.Context(), coord, resolve.Options{
				Transitive: transitive,
				MaxDepth:   maxDepth,
				Logger:     logger.Debugf,
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Resolved %s", coord.Key()))

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			printResult(res, transitive)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&transitive, "transitive", "t", false, "expand transitive dependencies")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "transitive depth bound (default 3)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")

	return cmd
}

// printResult renders a resolution result for terminal display.
func printResult(res *resolve.Result, transitive bool) {
	fmt.Println(StyleTitle.Render(res.Key()))
	printKeyValue("descriptor", res.Path)
	if res.Parent != nil {
		status := "merged"
		if !res.Parent.Resolved {
			status = "unresolved"
		}
		printKeyValue("parent", res.Parent.Key()+" "+StyleDim.Render("("+status+")"))
	}

	fmt.Println()
	printInfo("%d direct dependencies", len(res.Direct))
	for _, d := range res.Direct {
		printDetail("%s", formatDependency(d))
	}

	if transitive {
		fmt.Println()
		printInfo("%d transitive dependencies", len(res.Transitive))
		for _, td := range res.Transitive {
			printDetail("%s %s", formatDependency(td.Dependency), StyleDim.Render("via "+td.Via))
		}
	}

	fmt.Println()
	printConflicts(res.Conflicts)
}
