package text

import (
	"strings"
	"testing"

	"github.com/matzehuels/treeshape/pkg/bintree"
	"github.com/matzehuels/treeshape/pkg/layout"
)

func TestTree(t *testing.T) {
	root := bintree.New("A")
	bintree.InsertLeft(root, "B")
	bintree.InsertRight(root, "C")
	bintree.InsertLeft(root.Left, "D")

	out := Tree(root)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Tree() has %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "A") {
		t.Errorf("first line = %q, want root", lines[0])
	}
	for i, want := range []string{"L", "B", "D", "C"} {
		if !strings.Contains(out, want) {
			t.Errorf("Tree() missing %q (%d)", want, i)
		}
	}
	if strings.Index(out, "D") > strings.Index(out, "C") {
		t.Error("left subtree should print before the right child")
	}
}

func TestTreeEmpty(t *testing.T) {
	if got := Tree(nil); got != Empty+"\n" {
		t.Errorf("Tree(nil) = %q", got)
	}
}

func TestSummary(t *testing.T) {
	root := bintree.Example()
	if _, err := bintree.Normalize(root, bintree.ModeProper); err != nil {
		t.Fatal(err)
	}
	out := Summary(layout.Compute(root, layout.DefaultOptions()))

	for _, want := range []string{"Depth", "Placeholders", "Slots", "64"} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary() missing %q:\n%s", want, out)
		}
	}
	// Header, 7 levels and the four border lines.
	if got := strings.Count(out, "\n"); got < 10 {
		t.Errorf("Summary() has %d lines:\n%s", got, out)
	}
}

func TestRender(t *testing.T) {
	root := bintree.Example()
	out := string(Render(root, layout.Compute(root, layout.DefaultOptions())))
	if !strings.Contains(out, "B'") || !strings.Contains(out, "Values") {
		t.Errorf("Render() incomplete:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("abc", 4); got != "abc" {
		t.Errorf("truncate() = %q", got)
	}
}
