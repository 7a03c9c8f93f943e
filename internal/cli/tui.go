package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/colorgraph/pkg/harness"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ResultPickerModel - Interactive coloring selection
// =============================================================================

// ResultPickerModel lets the user choose which coloring of a report to show
// in detail.
type ResultPickerModel struct {
	Results  []harness.Result
	Cursor   int
	Selected *harness.Result
}

// NewResultPickerModel creates a picker over results. The cursor starts on
// the entry whose key is preselect, if any.
func NewResultPickerModel(results []harness.Result, preselect string) ResultPickerModel {
	m := ResultPickerModel{Results: results}
	for i, r := range results {
		if r.Key == preselect {
			m.Cursor = i
		}
	}
	return m
}

func (m ResultPickerModel) Init() tea.Cmd {
	return nil
}

func (m ResultPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Results)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Results) == 0 {
				return m, tea.Quit
			}
			r := m.Results[m.Cursor]
			m.Selected = &r
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ResultPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Coloring"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(m.Results))
	for i, r := range m.Results {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, r.Name, r.Key, fmt.Sprintf("%d", r.Colors), formatMillis(r.Duration.Seconds() * 1000)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Algorithm", "Key", "Colors", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case row == m.Cursor:
				return listSelectedStyle
			case col == 2:
				return listDimStyle
			default:
				return listNormalStyle
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Results))))

	return b.String()
}

// pickResult runs the picker and returns the chosen result, or nil when the
// user quits without choosing.
func (c *CLI) pickResult(results []harness.Result, preselect string) (*harness.Result, error) {
	final, err := tea.NewProgram(NewResultPickerModel(results, preselect), tea.WithOutput(c.Out)).Run()
	if err != nil {
		return nil, err
	}
	return final.(ResultPickerModel).Selected, nil
}
