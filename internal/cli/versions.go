package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkrasnow/m2scope/pkg/catalog"
	"github.com/dkrasnow/m2scope/pkg/resolve"
)

// versionsCommand creates the versions command.
func (c *CLI) versionsCommand() *cobra.Command {
	var sortOrder string

	cmd := &cobra.Command{
		Use:   "versions <group:artifact>",
		Short: "List published versions of an artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := resolve.ParseGA(args[0])
			if err != nil {
				return err
			}

			r, err := c.openRepo()
			if err != nil {
				return err
			}

			versions, err := catalog.New(r).ListVersions(coord.Group, coord.Artifact, catalog.VersionOptions{
				Sort: catalog.SortOrder(sortOrder),
			})
			if err != nil {
				return err
			}

			if len(versions) == 0 {
				printInfo("No versions of %s in %s", coord.GA(), r.Root())
				return nil
			}

			fmt.Println(StyleTitle.Render(coord.GA()))
			for _, v := range versions {
				flags := ""
				if !v.HasDescriptor {
					flags = " " + StyleWarning.Render("(no descriptor)")
				} else if !v.HasPackage {
					flags = " " + StyleDim.Render("(descriptor only)")
				}
				fmt.Println("  " + StyleValue.Render(v.Version) + flags)
			}
			printDetail("%d version(s)", len(versions))
			return nil
		},
	}

	cmd.Flags().StringVar(&sortOrder, "sort", "lexical", "version ordering: lexical, semver")
	return cmd
}
