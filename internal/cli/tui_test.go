package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/treeshape/pkg/bintree"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModeListModel(t *testing.T) {
	root := bintree.Example()
	m := NewModeListModel(root)

	if m.Before != 11 {
		t.Errorf("Before = %d, want 11", m.Before)
	}
	want := map[bintree.Mode]int{
		bintree.ModeComplete: 91,
		bintree.ModeProper:   15,
		bintree.ModePerfect:  127,
	}
	if len(m.Choices) != len(want) {
		t.Fatalf("len(Choices) = %d", len(m.Choices))
	}
	for _, c := range m.Choices {
		if c.Nodes != want[c.Mode] {
			t.Errorf("%s: Nodes = %d, want %d", c.Mode, c.Nodes, want[c.Mode])
		}
		if c.Placeholders != c.Nodes-11 {
			t.Errorf("%s: Placeholders = %d", c.Mode, c.Placeholders)
		}
	}
	if bintree.Count(root) != 11 {
		t.Error("preview mutated the tree")
	}
}

func TestModeListModelNavigation(t *testing.T) {
	var model tea.Model = NewModeListModel(bintree.Example())

	model, _ = model.Update(key("k"))
	if got := model.(ModeListModel).Cursor; got != 0 {
		t.Errorf("cursor after up = %d, want 0", got)
	}
	for range 5 {
		model, _ = model.Update(key("j"))
	}
	if got := model.(ModeListModel).Cursor; got != 2 {
		t.Errorf("cursor after down = %d, want 2", got)
	}

	model, cmd := model.Update(key("enter"))
	m := model.(ModeListModel)
	if m.Selected == nil || *m.Selected != bintree.ModePerfect {
		t.Errorf("Selected = %v", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit")
	}
}

func TestModeListModelQuit(t *testing.T) {
	model, cmd := NewModeListModel(bintree.Example()).Update(key("q"))
	if model.(ModeListModel).Selected != nil {
		t.Error("quit should not select")
	}
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestModeListModelView(t *testing.T) {
	view := NewModeListModel(bintree.Example()).View()
	for _, want := range []string{"Select Shape", "complete", "proper", "perfect", "127"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
