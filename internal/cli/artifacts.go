package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dkrasnow/m2scope/pkg/catalog"
)

// artifactsCommand creates the artifacts command.
func (c *CLI) artifactsCommand() *cobra.Command {
	var (
		group    string
		artifact string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "artifacts",
		Short: "List artifacts published in the repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.openRepo()
			if err != nil {
				return err
			}

			artifacts, err := catalog.New(r).ListArtifacts(cmd.Context(), catalog.ArtifactFilter{
				Group:    group,
				Artifact: artifact,
				Limit:    limit,
			})
			if err != nil {
				return err
			}

			if len(artifacts) == 0 {
				printInfo("No matching artifacts in %s", r.Root())
				return nil
			}

			for _, a := range artifacts {
				line := StyleValue.Render(fmt.Sprintf("%s:%s:%s", a.Group, a.Artifact, a.Version))
				if len(a.Packages) > 0 {
					line += " " + StyleDim.Render("["+strings.Join(a.Packages, ", ")+"]")
				}
				fmt.Println(line)
			}
			printDetail("%d artifact(s)", len(artifacts))
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "filter by group substring")
	cmd.Flags().StringVarP(&artifact, "artifact", "a", "", "filter by artifact substring")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results (default 50)")

	return cmd
}
