package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkrasnow/m2scope/pkg/catalog"
	"github.com/dkrasnow/m2scope/pkg/resolve"
)

// dependentsCommand creates the dependents command.
func (c *CLI) dependentsCommand() *cobra.Command {
	var (
		version string
		limit   int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "dependents <group:artifact>",
		Short: "Find artifacts that depend on a target",
		Long: `Scan every descriptor in the repository for declared dependencies on
the target, including entries in dependency management sections. The scan
reads the whole repository; use --limit to stop early.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := resolve.ParseGA(args[0])
			if err != nil {
				return err
			}

			r, err := c.openRepo()
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			spinner := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Scanning %s", r.Root()))
			spinner.Start()

			prog := newProgress(logger)
			deps, err := catalog.New(r).FindDependents(cmd.Context(), coord.Group, coord.Artifact, catalog.DependentsOptions{
				Version: version,
				Limit:   limit,
				Workers: workers,
				Logger:  logger.Debugf,
			})
			spinner.Stop()
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Scanned repository, %d dependent(s)", len(deps)))

			if len(deps) == 0 {
				printInfo("Nothing depends on %s", coord.GA())
				return nil
			}

			fmt.Println(StyleTitle.Render("Dependents of " + coord.GA()))
			for _, d := range deps {
				line := StyleValue.Render(d.Key())
				line += " " + StyleDim.Render(iconArrow+" "+versionLabel(d.DependsOnVersion))
				if d.Scope != resolve.ScopeCompile {
					line += " " + styleScope.Render("("+string(d.Scope)+")")
				}
				fmt.Println("  " + line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "match only dependencies on this exact version")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many matches (0: unlimited)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent descriptor parsers (default 8)")

	return cmd
}

func versionLabel(v string) string {
	if v == "" {
		return "any version"
	}
	return v
}
