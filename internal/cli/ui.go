package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/colorgraph/pkg/harness"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// groupColors are the swatches used for the first color groups; later
// groups fall back to plain text.
var groupColors = []lipgloss.Color{
	"117", // light blue
	"227", // yellow
	"118", // lime
	"196", // red
	"44",  // turquoise
	"201", // magenta
	"220", // gold
	"130", // chocolate
	"208", // orange
	"218", // pink
}

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconSwatch  = "●"
)

// =============================================================================
// Status Output
// =============================================================================

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *CLI) println(s string) {
	fmt.Fprintln(c.Out, s)
}

func (c *CLI) printSuccess(format string, args ...any) {
	c.println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func (c *CLI) printError(format string, args ...any) {
	c.println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func (c *CLI) printWarning(format string, args ...any) {
	c.println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func (c *CLI) printInfo(format string, args ...any) {
	c.println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

func (c *CLI) printDetail(format string, args ...any) {
	c.println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func (c *CLI) printFile(path string) {
	c.println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

func (c *CLI) printKeyValue(key, value string) {
	c.println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

func (c *CLI) printNextStep(description, cmd string) {
	c.println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func (c *CLI) printNewline() {
	c.println("")
}

// printGraphStats prints vertex and edge counts on one line.
func (c *CLI) printGraphStats(vertices, edges int) {
	c.println("  " + StyleDim.Render(fmt.Sprintf("%d vertices", vertices)) +
		StyleDim.Render(" · ") +
		StyleDim.Render(fmt.Sprintf("%d edges", edges)))
}

// =============================================================================
// Coloring Output
// =============================================================================

// printResult prints one algorithm's order, coloring and timing summary.
func (c *CLI) printResult(res harness.Result) {
	c.println(StyleTitle.Render(res.Name))
	if res.UsesOrder {
		c.printKeyValue("order", "["+strings.Join(res.Order, " ")+"]")
	}
	var pairs []string
	for _, a := range res.Coloring.Sorted() {
		pairs = append(pairs, fmt.Sprintf("%s:%d", a.Vertex, a.Color))
	}
	c.printKeyValue("coloring", "{"+strings.Join(pairs, " ")+"}")

	suffix := ""
	if res.UsesOrder {
		suffix = " (including creating the order)"
	}
	c.printDetail("%s, %d colors%s", formatMillis(res.Duration.Seconds()*1000), res.Colors, suffix)
}

// printGroups prints the color groups of res, one line per color. With
// labels off only the group sizes are shown.
func (c *CLI) printGroups(res harness.Result, labels bool) {
	c.println(StyleTitle.Render(res.Name+" color groups"))
	for i, group := range res.Coloring.Groups() {
		swatch := iconSwatch
		if i < len(groupColors) {
			swatch = lipgloss.NewStyle().Foreground(groupColors[i]).Render(iconSwatch)
		}
		body := fmt.Sprintf("%d vertices", len(group))
		if labels {
			body = strings.Join(group, " ")
		}
		c.println(fmt.Sprintf("  %s %s %s", swatch, StyleNumber.Render(fmt.Sprintf("%2d", i)), StyleValue.Render(body)))
	}
}

// renderStatsTable renders aggregated bench results.
func renderStatsTable(stats []harness.Stats) string {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%d", s.Runs),
			fmt.Sprintf("%d", s.TotalColors),
			fmt.Sprintf("%.2f", s.MeanColors()),
			formatMillis(float64(s.TotalTime.Microseconds()) / 1000),
			formatMillis(float64(s.MeanTime().Microseconds()) / 1000),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Algorithm", "Runs", "Colors", "Mean", "Total time", "Mean time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return base.Foreground(colorCyan)
			default:
				return base.Foreground(colorWhite)
			}
		})
	return t.Render()
}

func formatMillis(ms float64) string {
	return fmt.Sprintf("%.3f ms", ms)
}
