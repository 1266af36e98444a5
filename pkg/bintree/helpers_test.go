package bintree

import (
	"fmt"
	"math/rand/v2"
)

// leftChain returns a tree of n nodes where every node but the last has
// only a left child.
func leftChain(n int) *Node {
	if n <= 0 {
		return nil
	}
	root := New("n0")
	cur := root
	for i := 1; i < n; i++ {
		cur = InsertLeft(cur, fmt.Sprintf("n%d", i)).Left
	}
	return root
}

// randomTree grows a tree of size nodes by random descent from the root.
// No node is placed deeper than maxDepth levels; size must fit in a perfect
// tree of that depth.
func randomTree(seed uint64, size, maxDepth int) *Node {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	root := New("r")
	for i := 1; i < size; i++ {
		cur, depth := root, 1
		for {
			if depth == maxDepth {
				cur, depth = root, 1
				continue
			}
			depth++
			if rng.IntN(2) == 0 {
				if cur.Left == nil {
					InsertLeft(cur, fmt.Sprintf("v%d", i))
					break
				}
				cur = cur.Left
			} else {
				if cur.Right == nil {
					InsertRight(cur, fmt.Sprintf("v%d", i))
					break
				}
				cur = cur.Right
			}
		}
	}
	return root
}

// snapshot records every node of a tree with its original children.
type snapshot map[*Node][2]*Node

func takeSnapshot(root *Node) snapshot {
	s := snapshot{}
	Walk(root, func(n *Node, _ int) bool {
		s[n] = [2]*Node{n.Left, n.Right}
		return true
	})
	return s
}
