package bintree

// NaryNode is a vertex of a general ordered tree. Children are kept in
// order; the first child is the leftmost one.
type NaryNode struct {
	Value    string
	Children []*NaryNode
}

// Encode converts a general ordered tree into a binary tree with the
// left-child/right-sibling scheme: a node's first child becomes its left
// child and its next sibling becomes its right child. The root keeps its
// value and has no right child.
func Encode(root *NaryNode) *Node {
	if root == nil {
		return nil
	}
	return encode(root, nil)
}

func encode(n *NaryNode, siblings []*NaryNode) *Node {
	b := New(n.Value)
	if len(n.Children) > 0 {
		b.Left = encode(n.Children[0], n.Children[1:])
	}
	if len(siblings) > 0 {
		b.Right = encode(siblings[0], siblings[1:])
	}
	return b
}

// Decode reverses [Encode]. Placeholder nodes are decoded like any other.
func Decode(root *Node) *NaryNode {
	if root == nil {
		return nil
	}
	n := &NaryNode{Value: root.Value}
	for c := root.Left; c != nil; c = c.Right {
		n.Children = append(n.Children, Decode(withoutSiblings(c)))
	}
	return n
}

func withoutSiblings(n *Node) *Node {
	return &Node{Value: n.Value, Kind: n.Kind, Left: n.Left}
}

// ExampleNary returns the general tree used throughout the tool:
//
//	A
//	├── B
//	│   ├── E
//	│   └── F
//	├── B'
//	│   └── F'
//	├── C
//	│   ├── G
//	│   ├── H
//	│   └── I
//	└── D
func ExampleNary() *NaryNode {
	leaf := func(v string) *NaryNode { return &NaryNode{Value: v} }
	return &NaryNode{Value: "A", Children: []*NaryNode{
		{Value: "B", Children: []*NaryNode{leaf("E"), leaf("F")}},
		{Value: "B'", Children: []*NaryNode{leaf("F'")}},
		{Value: "C", Children: []*NaryNode{leaf("G"), leaf("H"), leaf("I")}},
		leaf("D"),
	}}
}

// Example builds the binary encoding of [ExampleNary] one insertion at a
// time. The result has 11 nodes and a [MaxDepth] of 7.
func Example() *Node {
	root := New("A")
	InsertLeft(root, "B")
	InsertLeft(root.Left, "E")
	InsertRight(root.Left.Left, "F")
	InsertRight(root.Left, "B'")
	InsertLeft(root.Left.Right, "F'")
	InsertRight(root.Left.Right, "C")
	InsertLeft(root.Left.Right.Right, "G")
	InsertRight(root.Left.Right.Right, "D")
	InsertRight(root.Left.Right.Right.Left, "H")
	InsertRight(root.Left.Right.Right.Left.Right, "I")
	return root
}
