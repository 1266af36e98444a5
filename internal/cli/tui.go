package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/treeshape/pkg/bintree"
	"github.com/matzehuels/treeshape/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

var modeDescriptions = map[bintree.Mode]string{
	bintree.ModeComplete: "levels full except the last, filled from the left",
	bintree.ModeProper:   "every node has zero or two children",
	bintree.ModePerfect:  "all leaves on one level, all inner nodes full",
}

// =============================================================================
// ModeListModel - Interactive mode selection
// =============================================================================

// modeChoice is one row of the picker with a preview of its effect.
type modeChoice struct {
	Mode         bintree.Mode
	Nodes        int
	Placeholders int
}

// ModeListModel is the bubbletea model for interactive mode selection.
type ModeListModel struct {
	Choices  []modeChoice
	Before   int
	Cursor   int
	Selected *bintree.Mode
}

// NewModeListModel previews every mode on a copy of root.
func NewModeListModel(root *bintree.Node) ModeListModel {
	m := ModeListModel{Before: bintree.Count(root)}
	for _, mode := range bintree.Modes() {
		res, _ := bintree.Normalize(bintree.Clone(root), mode)
		m.Choices = append(m.Choices, modeChoice{Mode: mode, Nodes: res.After, Placeholders: res.Placeholders})
	}
	return m
}

func (m ModeListModel) Init() tea.Cmd {
	return nil
}

func (m ModeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Choices)-1 {
				m.Cursor++
			}
		case "enter":
			mode := m.Choices[m.Cursor].Mode
			m.Selected = &mode
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ModeListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Shape"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(m.Choices))
	for i, c := range m.Choices {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			c.Mode.String(),
			fmt.Sprintf("%d → %d", m.Before, c.Nodes),
			fmt.Sprintf("+%d", c.Placeholders),
			modeDescriptions[c.Mode],
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Mode", "Nodes", "Added", "Shape").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == m.Cursor:
				return listSelectedStyle
			case col == 4:
				return listDimStyle
			default:
				return listNormalStyle
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

// pickMode runs the picker on the example tree.
func pickMode() (bintree.Mode, error) {
	final, err := tea.NewProgram(NewModeListModel(bintree.Example())).Run()
	if err != nil {
		return bintree.ModeInvalid, err
	}
	fm, ok := final.(ModeListModel)
	if !ok || fm.Selected == nil {
		return bintree.ModeInvalid, errors.New(errors.ErrCodeInvalidMode, "no mode selected")
	}
	return *fm.Selected, nil
}
