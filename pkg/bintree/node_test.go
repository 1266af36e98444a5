package bintree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertReturnsParent(t *testing.T) {
	root := New("A")

	got := InsertLeft(root, "B")
	require.Same(t, root, got)
	require.NotNil(t, root.Left)
	assert.Equal(t, "B", root.Left.Value)
	assert.Equal(t, KindRegular, root.Left.Kind)

	got = InsertRight(root, "C")
	require.Same(t, root, got)
	assert.Equal(t, "C", root.Right.Value)

	assert.Nil(t, InsertLeft(nil, "x"))
	assert.Nil(t, InsertRight(nil, "x"))
}

func TestAttachNilChildLeavesParentUntouched(t *testing.T) {
	root := New("A")
	assert.Nil(t, attach(root, nil, true))
	assert.Nil(t, attach(root, nil, false))
	assert.True(t, root.IsLeaf())
}

func TestSetValue(t *testing.T) {
	n := New("old")
	assert.Same(t, n, SetValue(n, "new"))
	assert.Equal(t, "new", n.Value)
	assert.Nil(t, SetValue(nil, "x"))
}

func TestChildCount(t *testing.T) {
	var nilNode *Node
	assert.Equal(t, 0, nilNode.ChildCount())
	assert.False(t, nilNode.IsLeaf())
	assert.False(t, nilNode.IsPlaceholder())

	n := New("A")
	assert.Equal(t, 0, n.ChildCount())
	InsertRight(n, "B")
	assert.Equal(t, 1, n.ChildCount())
	InsertLeft(n, "C")
	assert.Equal(t, 2, n.ChildCount())
	assert.Len(t, Children(n), 2)
	assert.Equal(t, "C", Children(n)[0].Value)
}

func TestWalkPreOrder(t *testing.T) {
	var order []string
	var depths []int
	Walk(Example(), func(n *Node, depth int) bool {
		order = append(order, n.Value)
		depths = append(depths, depth)
		return true
	})

	assert.Equal(t, []string{"A", "B", "E", "F", "B'", "F'", "C", "G", "H", "I", "D"}, order)
	assert.Equal(t, []int{0, 1, 2, 3, 2, 3, 3, 4, 5, 6, 4}, depths)
}

func TestWalkPrune(t *testing.T) {
	var visited []string
	Walk(Example(), func(n *Node, _ int) bool {
		visited = append(visited, n.Value)
		return n.Value != "B'"
	})
	assert.Equal(t, []string{"A", "B", "E", "F", "B'"}, visited)
}

func TestCountAndLeaves(t *testing.T) {
	root := Example()
	assert.Equal(t, 11, Count(root))
	assert.Equal(t, 0, Count(nil))
	assert.Equal(t, 0, CountPlaceholders(root))

	var leaves []string
	for _, l := range Leaves(root) {
		leaves = append(leaves, l.Value)
	}
	assert.Equal(t, []string{"F", "F'", "I", "D"}, leaves)
}

func TestRelease(t *testing.T) {
	root := Example()
	left := root.Left

	assert.Equal(t, 11, Release(root))
	assert.True(t, root.IsLeaf())
	assert.True(t, left.IsLeaf())
	assert.Equal(t, 0, Release(nil))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.True(t, Equal(Example(), Example()))
	assert.False(t, Equal(Example(), nil))

	a, b := Example(), Example()
	b.Left.Left.Value = "X"
	assert.False(t, Equal(a, b))

	c := Example()
	c.Left.Kind = KindPlaceholder
	assert.False(t, Equal(a, c))
}

func TestNodeKindString(t *testing.T) {
	assert.Equal(t, "regular", KindRegular.String())
	assert.Equal(t, "placeholder", KindPlaceholder.String())
}

func TestClone(t *testing.T) {
	root := Example()
	c := Clone(root)
	assert.True(t, Equal(root, c))
	assert.NotSame(t, root.Left, c.Left)

	InsertRight(c, "Z")
	assert.Nil(t, root.Right, "mutating the clone must not touch the original")
	assert.Nil(t, Clone(nil))
}
