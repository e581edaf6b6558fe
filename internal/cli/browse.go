package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dkrasnow/m2scope/pkg/catalog"
)

// browseCommand creates the interactive repository browser.
func (c *CLI) browseCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactively browse repository artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.openRepo()
			if err != nil {
				return err
			}
			cat := catalog.New(r)

			artifacts, err := cat.ListArtifacts(cmd.Context(), catalog.ArtifactFilter{Limit: limit})
			if err != nil {
				return err
			}
			if len(artifacts) == 0 {
				printInfo("No artifacts in %s", r.Root())
				return nil
			}

			model := newBrowseModel(cat, artifacts)
			program := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			final, err := program.Run()
			if err != nil {
				return err
			}

			if m, ok := final.(browseModel); ok && m.selected != nil {
				fmt.Println(m.selected.Group + ":" + m.selected.Artifact + ":" + m.selected.Version)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 500, "maximum artifacts to list")
	return cmd
}

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseModel is the bubbletea model for the repository browser. The list
// view navigates artifacts; enter loads a version detail view, esc
// returns to the list.
type browseModel struct {
	catalog   *catalog.Catalog
	artifacts []catalog.Artifact

	cursor int
	offset int
	height int

	selected *catalog.Artifact
	versions []catalog.VersionInfo
	inDetail bool
	loadErr  error
}

func newBrowseModel(cat *catalog.Catalog, artifacts []catalog.Artifact) browseModel {
	return browseModel{
		catalog:   cat,
		artifacts: artifacts,
		height:    15,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.selected = nil
			return m, tea.Quit
		case "esc":
			if m.inDetail {
				m.inDetail = false
				m.loadErr = nil
				return m, nil
			}
			m.selected = nil
			return m, tea.Quit
		case "up", "k":
			if !m.inDetail && m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if !m.inDetail && m.cursor < len(m.artifacts)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			if m.inDetail {
				return m, tea.Quit
			}
			a := m.artifacts[m.cursor]
			m.selected = &a
			m.versions, m.loadErr = m.catalog.ListVersions(a.Group, a.Artifact, catalog.VersionOptions{})
			m.inDetail = true
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	if m.inDetail {
		return m.detailView()
	}
	return m.listView()
}

func (m browseModel) listView() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Repository Artifacts"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ versions  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.artifacts) {
		end = len(m.artifacts)
	}

	for i := m.offset; i < end; i++ {
		a := m.artifacts[i]
		label := fmt.Sprintf("%s:%s:%s", a.Group, a.Artifact, a.Version)

		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + label))
		} else {
			b.WriteString(listNormalStyle.Render("  " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.artifacts))))
	return b.String()
}

func (m browseModel) detailView() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.selected.Group + ":" + m.selected.Artifact))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(styleIconError.Render(iconError) + " " + m.loadErr.Error() + "\n")
		return b.String()
	}

	for _, v := range m.versions {
		flags := ""
		if !v.HasPackage {
			flags = listDimStyle.Render("  (descriptor only)")
		}
		b.WriteString(listNormalStyle.Render("  "+v.Version) + flags + "\n")
	}
	return b.String()
}
