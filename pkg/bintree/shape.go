package bintree

// IsPerfect reports whether every internal node has two children and every
// leaf sits on the deepest level. An empty tree is perfect.
func IsPerfect(root *Node) bool {
	h := MaxDepth(root) - 1
	ok := true
	Walk(root, func(n *Node, depth int) bool {
		if !ok {
			return false
		}
		switch n.ChildCount() {
		case 0:
			ok = depth == h
		case 1:
			ok = false
		}
		return ok
	})
	return ok
}

// IsProper reports whether no node has exactly one child.
func IsProper(root *Node) bool {
	ok := true
	Walk(root, func(n *Node, _ int) bool {
		if ok && n.ChildCount() == 1 {
			ok = false
		}
		return ok
	})
	return ok
}

// IsComplete reports whether every level but the last is full and the last
// level is packed to the left.
//
// In a breadth-first scan that also enqueues empty child slots, a complete
// tree never yields a node after the first empty slot.
func IsComplete(root *Node) bool {
	queue := []*Node{root}
	gap := false
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == nil {
			gap = true
			continue
		}
		if gap {
			return false
		}
		queue = append(queue, n.Left, n.Right)
	}
	return true
}

// Is reports whether the tree already satisfies the shape named by mode.
func Is(root *Node, mode Mode) bool {
	switch mode {
	case ModePerfect:
		return IsPerfect(root)
	case ModeProper:
		return IsProper(root)
	case ModeComplete:
		return IsComplete(root)
	}
	return false
}
