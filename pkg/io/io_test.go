package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/treeshape/pkg/bintree"
	"github.com/matzehuels/treeshape/pkg/layout"
)

func TestToTreeNode(t *testing.T) {
	root := bintree.New("A")
	bintree.InsertLeft(root, "B")
	if _, err := bintree.Normalize(root, bintree.ModeProper); err != nil {
		t.Fatal(err)
	}

	tn := ToTreeNode(root)
	if tn.Value != "A" || tn.Left.Value != "B" || tn.Left.Placeholder {
		t.Errorf("ToTreeNode() = %+v", tn)
	}
	if tn.Right == nil || !tn.Right.Placeholder || tn.Right.Value != bintree.Placeholder {
		t.Errorf("placeholder child = %+v", tn.Right)
	}
	if ToTreeNode(nil) != nil {
		t.Error("ToTreeNode(nil) should be nil")
	}
}

func TestWriteJSON(t *testing.T) {
	root := bintree.Example()
	res, err := bintree.Normalize(root, bintree.ModeComplete)
	if err != nil {
		t.Fatal(err)
	}
	l := layout.Compute(root, layout.DefaultOptions())

	var buf bytes.Buffer
	if err := WriteJSON(NewDocument(root, res, &l), &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"mode": "complete"`, `"after": 91`, `"satisfied": true`, `"layout"`, `"parent_id"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s", want)
		}
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got := countTree(doc.Tree); got != 91 {
		t.Errorf("tree nodes = %d, want 91", got)
	}
	if len(doc.Layout.Nodes) != 91 || doc.Layout.Nodes[0].ID != layout.NodeID("") {
		t.Errorf("layout nodes = %d", len(doc.Layout.Nodes))
	}
}

func TestNewDocumentWithoutResult(t *testing.T) {
	doc := NewDocument(bintree.Example(), bintree.Result{}, nil)
	if doc.Mode != "" || doc.Satisfied != nil || doc.Layout != nil {
		t.Errorf("NewDocument() = %+v", doc)
	}

	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), `"mode"`) || strings.Contains(buf.String(), `"layout"`) {
		t.Errorf("empty fields should be omitted:\n%s", buf.String())
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	if err := ExportJSON(NewDocument(bintree.Example(), bintree.Result{}, nil), path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"value": "B'"`) {
		t.Errorf("exported file incomplete:\n%s", data)
	}

	if err := ExportJSON(Document{}, filepath.Join(t.TempDir(), "missing", "x.json")); err == nil {
		t.Error("ExportJSON() into a missing directory should fail")
	}
}

func countTree(n *TreeNode) int {
	if n == nil {
		return 0
	}
	return 1 + countTree(n.Left) + countTree(n.Right)
}
