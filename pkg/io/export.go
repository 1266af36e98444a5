package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/treeshape/pkg/bintree"
	"github.com/matzehuels/treeshape/pkg/layout"
)

// Document is the JSON envelope for a tree and its normalization.
type Document struct {
	Mode         string         `json:"mode,omitempty"`
	Before       int            `json:"before,omitempty"`
	After        int            `json:"after,omitempty"`
	Placeholders int            `json:"placeholders,omitempty"`
	Satisfied    *bool          `json:"satisfied,omitempty"`
	Tree         *TreeNode      `json:"tree,omitempty"`
	Layout       *layout.Layout `json:"layout,omitempty"`
}

// TreeNode is the nested JSON form of a binary tree node.
type TreeNode struct {
	Value       string    `json:"value"`
	Placeholder bool      `json:"placeholder,omitempty"`
	Left        *TreeNode `json:"left,omitempty"`
	Right       *TreeNode `json:"right,omitempty"`
}

// NewDocument builds a document for root and the result of normalizing it.
// l may be nil to omit positions.
func NewDocument(root *bintree.Node, res bintree.Result, l *layout.Layout) Document {
	doc := Document{Tree: ToTreeNode(root), Layout: l}
	if res.Mode.Valid() {
		satisfied := res.Satisfied
		doc.Mode = res.Mode.String()
		doc.Before, doc.After, doc.Placeholders = res.Before, res.After, res.Placeholders
		doc.Satisfied = &satisfied
	}
	return doc
}

// ToTreeNode converts a binary tree to its JSON form.
func ToTreeNode(n *bintree.Node) *TreeNode {
	if n == nil {
		return nil
	}
	return &TreeNode{
		Value:       n.Value,
		Placeholder: n.IsPlaceholder(),
		Left:        ToTreeNode(n.Left),
		Right:       ToTreeNode(n.Right),
	}
}

// WriteJSON encodes doc as indented JSON to w.
func WriteJSON(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes doc to a JSON file at path.
func ExportJSON(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}
