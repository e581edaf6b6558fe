package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkrasnow/m2scope/pkg/resolve"
)

// Color palette.
var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// Public styles.
var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleConflict = lipgloss.NewStyle().Foreground(colorRed)
	styleScope    = lipgloss.NewStyle().Foreground(colorGray)
)

// Icons.
const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// formatDependency renders one dependency with its scope and flags.
func formatDependency(d resolve.Dependency) string {
	line := StyleValue.Render(d.Key())
	extras := []string{}
	if d.Scope != "" && d.Scope != resolve.ScopeCompile {
		extras = append(extras, string(d.Scope))
	}
	if d.Optional {
		extras = append(extras, "optional")
	}
	if len(extras) > 0 {
		line += " " + styleScope.Render("("+strings.Join(extras, ", ")+")")
	}
	return line
}

// treeText renders a dependency tree with box-drawing connectors.
func treeText(tree *resolve.Tree) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(tree.Root.Key()))
	b.WriteString("\n")

	for i, node := range tree.Nodes {
		last := i == len(tree.Nodes)-1
		connector, childPrefix := "├── ", "│   "
		if last {
			connector, childPrefix = "└── ", "    "
		}
		b.WriteString(StyleDim.Render(connector) + formatDependency(node.Dependency) + "\n")

		for j, child := range node.Children {
			childConnector := "├── "
			if j == len(node.Children)-1 {
				childConnector = "└── "
			}
			b.WriteString(StyleDim.Render(childPrefix+childConnector) + formatDependency(child.Dependency) + "\n")
		}
	}
	return b.String()
}

// printConflicts lists version conflicts, one block per artifact.
func printConflicts(conflicts []resolve.Conflict) {
	if len(conflicts) == 0 {
		printSuccess("No version conflicts")
		return
	}

	printWarning("%d version conflict(s)", len(conflicts))
	for _, c := range conflicts {
		fmt.Println("  " + styleConflict.Render(c.Artifact) + " " + StyleDim.Render("at") + " " + StyleValue.Render(strings.Join(c.Versions, ", ")))
		for _, o := range c.Occurrences {
			origin := o.Origin
			if o.Via != "" {
				origin += " via " + o.Via
			}
			printDetail("%s %s (%s)", iconArrow, o.Version, origin)
		}
	}
}
