package bintree

// NotFound is returned by [DepthOf] when the target is not reachable from
// the root.
const NotFound = -1

// MaxDepth returns the number of nodes on the longest root-to-leaf path.
// An empty tree has depth 0 and a single node has depth 1.
func MaxDepth(root *Node) int {
	if root == nil {
		return 0
	}
	return 1 + max(MaxDepth(root.Left), MaxDepth(root.Right))
}

// DepthOf returns the number of edges between root and target, where target
// is matched by identity. The root is at depth 0. It returns [NotFound] when
// target is not in the tree.
//
// The search checks root first, then the left subtree, then the right one,
// and stops at the first match.
func DepthOf(root, target *Node) int {
	if root == nil || target == nil {
		return NotFound
	}
	if root == target {
		return 0
	}
	if d := DepthOf(root.Left, target); d != NotFound {
		return d + 1
	}
	if d := DepthOf(root.Right, target); d != NotFound {
		return d + 1
	}
	return NotFound
}

// Levels groups the nodes of the tree by depth, breadth-first and left to
// right within each level. Levels(root)[d] holds the nodes at depth d.
func Levels(root *Node) [][]*Node {
	if root == nil {
		return nil
	}
	var levels [][]*Node
	for cur := []*Node{root}; len(cur) > 0; {
		levels = append(levels, cur)
		var next []*Node
		for _, n := range cur {
			next = append(next, Children(n)...)
		}
		cur = next
	}
	return levels
}
