// Package text draws binary trees for the terminal.
//
// [Tree] prints the tree sideways with lipgloss box-drawing connectors; each
// child is tagged L or R and placeholders are dimmed. [Summary] prints one
// table row per level with node and placeholder counts.
package text

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/samber/lo"

	"github.com/matzehuels/treeshape/pkg/bintree"
	"github.com/matzehuels/treeshape/pkg/layout"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleValue       = lipgloss.NewStyle().Bold(true)
	stylePlaceholder = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
	styleSide        = lipgloss.NewStyle().Foreground(colorCyan)
	styleConnector   = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// Empty is printed for a nil tree.
const Empty = "(empty)"

// Tree renders root as an indented tree.
func Tree(root *bintree.Node) string {
	if root == nil {
		return Empty + "\n"
	}
	t := branch(root).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(styleConnector)
	return t.String() + "\n"
}

func branch(n *bintree.Node) *tree.Tree {
	return subtree(label(n), n)
}

func subtree(title string, n *bintree.Node) *tree.Tree {
	t := tree.Root(title)
	for _, c := range []struct {
		side string
		node *bintree.Node
	}{{"L", n.Left}, {"R", n.Right}} {
		if c.node == nil {
			continue
		}
		title := styleSide.Render(c.side) + " " + label(c.node)
		if c.node.IsLeaf() {
			t.Child(title)
		} else {
			t.Child(subtree(title, c.node))
		}
	}
	return t
}

func label(n *bintree.Node) string {
	if n.IsPlaceholder() {
		return stylePlaceholder.Render(n.Value)
	}
	return styleValue.Render(n.Value)
}

// Summary renders a per-level table of the layout.
func Summary(l layout.Layout) string {
	levels := l.Levels()
	rows := make([][]string, 0, len(levels))
	for depth, idx := range levels {
		nodes := lo.Map(idx, func(i int, _ int) layout.Positioned { return l.Nodes[i] })
		placeholders := lo.CountBy(nodes, func(n layout.Positioned) bool { return n.Placeholder })
		values := lo.Map(nodes, func(n layout.Positioned, _ int) string { return n.Label })
		rows = append(rows, []string{
			fmt.Sprint(depth),
			fmt.Sprint(len(nodes)),
			fmt.Sprint(placeholders),
			fmt.Sprint(1 << depth),
			truncate(strings.Join(values, " "), 48),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Depth", "Nodes", "Placeholders", "Slots", "Values").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render() + "\n"
}

// Render returns the tree drawing followed by the level summary.
func Render(root *bintree.Node, l layout.Layout) []byte {
	var b strings.Builder
	b.WriteString(Tree(root))
	if len(l.Nodes) > 0 {
		b.WriteString("\n")
		b.WriteString(Summary(l))
	}
	return []byte(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
