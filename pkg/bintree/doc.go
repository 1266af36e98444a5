// Package bintree provides a binary tree model and the algorithms that reshape
// an arbitrary binary tree into one of three canonical shapes.
//
// # Overview
//
// A general ordered tree is first encoded as a binary tree with the classical
// left-child/right-sibling scheme (see [Encode]). The resulting binary tree can
// then be normalized into a canonical shape by inserting placeholder leaves:
//
//   - [ModePerfect]: every internal node has two children and all leaves sit
//     on the same level.
//   - [ModeProper]: every node has zero or two children.
//   - [ModeComplete]: every level except possibly the last is full, and the
//     last level is packed to the left.
//
// Normalization only ever adds nodes. Existing nodes are never removed,
// replaced or reparented, so a caller can keep pointers into the tree across
// a call to [Normalize].
//
// # Identity
//
// Nodes are compared by pointer identity, never by value. Placeholder nodes
// all carry the same [Placeholder] label, and real payloads may repeat too.
// [DepthOf] therefore takes the *Node to look for, not its value.
//
// # Depth Conventions
//
// [MaxDepth] counts nodes: an empty tree has depth 0 and a lone root has
// depth 1. [DepthOf] counts edges: the root is at depth 0. For any leaf on the
// deepest level, DepthOf(root, leaf) == MaxDepth(root)-1.
//
// # Usage
//
//	root := bintree.Example()
//	res, err := bintree.Normalize(root, bintree.ModePerfect)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Placeholders, bintree.IsPerfect(root))
//
// # Complexity
//
// The normalizers call [DepthOf] for visited nodes, so they are O(n²) in the
// worst case. Trees handled here are small and hand-authored.
//
// The package is not safe for concurrent mutation. Normalize a tree on one
// goroutine before handing it to readers.
package bintree
