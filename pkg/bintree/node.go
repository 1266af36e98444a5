package bintree

// Placeholder is the label carried by every node inserted during
// normalization. It is distinct from any payload of the example tree.
const Placeholder = "?"

// NodeKind distinguishes nodes present in the source tree from synthetic
// nodes added by a normalizer.
type NodeKind int

const (
	// KindRegular marks a node that belongs to the source tree.
	KindRegular NodeKind = iota
	// KindPlaceholder marks a leaf inserted to satisfy a shape invariant.
	KindPlaceholder
)

// String returns "regular" or "placeholder".
func (k NodeKind) String() string {
	if k == KindPlaceholder {
		return "placeholder"
	}
	return "regular"
}

// Node is a vertex of a binary tree. Each child is owned by exactly one
// parent; trees never share subtrees and never contain cycles.
//
// The zero value is a valid regular leaf with an empty label.
type Node struct {
	Value string
	Kind  NodeKind
	Left  *Node
	Right *Node
}

// IsPlaceholder reports whether the node was inserted by a normalizer.
func (n *Node) IsPlaceholder() bool { return n != nil && n.Kind == KindPlaceholder }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n != nil && n.Left == nil && n.Right == nil }

// ChildCount returns how many of the two child slots are occupied.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	c := 0
	if n.Left != nil {
		c++
	}
	if n.Right != nil {
		c++
	}
	return c
}

// New creates a detached regular node carrying value. It is the root of a
// new single-node tree.
func New(value string) *Node {
	return &Node{Value: value}
}

// newPlaceholder is the default [Allocator].
func newPlaceholder(value string) *Node {
	return &Node{Value: value, Kind: KindPlaceholder}
}

// InsertLeft creates a regular node with value and attaches it as the left
// child of parent, overwriting whatever was there. It returns parent, or nil
// if parent is nil.
func InsertLeft(parent *Node, value string) *Node {
	return attach(parent, New(value), true)
}

// InsertRight is the right-hand counterpart of [InsertLeft].
func InsertRight(parent *Node, value string) *Node {
	return attach(parent, New(value), false)
}

// attach links child under parent. A nil child models a failed allocation:
// parent is left untouched and nil is returned so callers can skip the
// pending mutation.
func attach(parent, child *Node, left bool) *Node {
	if parent == nil || child == nil {
		return nil
	}
	if left {
		parent.Left = child
	} else {
		parent.Right = child
	}
	return parent
}

// SetValue relabels n and returns it. It returns nil if n is nil.
func SetValue(n *Node, value string) *Node {
	if n == nil {
		return nil
	}
	n.Value = value
	return n
}

// Release tears the tree down in post-order, children before parent,
// unlinking every node. It returns the number of nodes released.
// The root itself is left detached but otherwise intact.
func Release(root *Node) int {
	if root == nil {
		return 0
	}
	n := Release(root.Left) + Release(root.Right)
	root.Left, root.Right = nil, nil
	return n + 1
}

// Children returns the occupied child slots of n, left first.
func Children(n *Node) []*Node {
	if n == nil {
		return nil
	}
	out := make([]*Node, 0, 2)
	if n.Left != nil {
		out = append(out, n.Left)
	}
	if n.Right != nil {
		out = append(out, n.Right)
	}
	return out
}

// Walk visits every node in pre-order, left subtree before right, passing
// the node's edge-count depth. Returning false from fn prunes the subtree
// below the current node.
func Walk(root *Node, fn func(n *Node, depth int) bool) {
	walk(root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil {
		return
	}
	if !fn(n, depth) {
		return
	}
	walk(n.Left, depth+1, fn)
	walk(n.Right, depth+1, fn)
}

// Count returns the number of nodes in the tree.
func Count(root *Node) int {
	if root == nil {
		return 0
	}
	return 1 + Count(root.Left) + Count(root.Right)
}

// CountPlaceholders returns how many nodes in the tree are placeholders.
func CountPlaceholders(root *Node) int {
	c := 0
	Walk(root, func(n *Node, _ int) bool {
		if n.IsPlaceholder() {
			c++
		}
		return true
	})
	return c
}

// Leaves returns the leaves of the tree in pre-order.
func Leaves(root *Node) []*Node {
	var out []*Node
	Walk(root, func(n *Node, _ int) bool {
		if n.IsLeaf() {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Equal reports whether a and b have the same shape, values and kinds.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Value == b.Value && a.Kind == b.Kind &&
		Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}

// Clone returns a deep copy of the tree.
func Clone(root *Node) *Node {
	if root == nil {
		return nil
	}
	return &Node{
		Value: root.Value,
		Kind:  root.Kind,
		Left:  Clone(root.Left),
		Right: Clone(root.Right),
	}
}
