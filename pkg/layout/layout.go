// Package layout positions the nodes of a binary tree for drawing.
//
// The root sits at the horizontal center of the frame. Each child is offset
// from its parent by Center/tab, where tab starts at 2 for the root's
// children and doubles on every level, so sibling subtrees never overlap.
// Vertical position is a linear function of depth.
//
// Layout never mutates the tree. It walks it pre-order, left before right,
// and asks [bintree.DepthOf] for each node's level, which is the contract a
// renderer has with the normalizer.
package layout

import (
	"github.com/google/uuid"

	"github.com/matzehuels/treeshape/pkg/bintree"
)

// Default frame geometry, in pixels.
const (
	DefaultCenter      = 600.0
	DefaultLevelHeight = 100.0
	DefaultTopMargin   = 50.0
	DefaultWidth       = 1200.0
	DefaultHeight      = 900.0
)

// namespace seeds the name-based UUIDs given to positioned nodes.
var namespace = uuid.MustParse("6f0c3a52-5b0e-4d8e-9a4f-6e2f1c7d9b10")

// Options controls the frame geometry.
type Options struct {
	Center      float64 `json:"center" toml:"center"`             // x of the root
	LevelHeight float64 `json:"level_height" toml:"level_height"` // vertical distance between levels
	TopMargin   float64 `json:"top_margin" toml:"top_margin"`     // y of the root
	Width       float64 `json:"width" toml:"width"`               // minimum frame width
	Height      float64 `json:"height" toml:"height"`             // minimum frame height
}

// DefaultOptions returns the stock frame geometry.
func DefaultOptions() Options {
	return Options{
		Center:      DefaultCenter,
		LevelHeight: DefaultLevelHeight,
		TopMargin:   DefaultTopMargin,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
	}
}

// WithDefaults fills every non-positive field from [DefaultOptions].
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.Center <= 0 {
		o.Center = d.Center
	}
	if o.LevelHeight <= 0 {
		o.LevelHeight = d.LevelHeight
	}
	if o.TopMargin <= 0 {
		o.TopMargin = d.TopMargin
	}
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	return o
}

// Positioned is one node of a laid-out tree.
type Positioned struct {
	ID          string  `json:"id"`                  // stable handle derived from Path
	Path        string  `json:"path"`                // L/R steps from the root; "" for the root
	Label       string  `json:"label"`               // node value
	Placeholder bool    `json:"placeholder"`         // inserted by a normalizer
	Depth       int     `json:"depth"`               // edges from the root
	X           float64 `json:"x"`                   // center x
	Y           float64 `json:"y"`                   // center y
	ParentID    string  `json:"parent_id,omitempty"` // empty for the root
	ParentX     float64 `json:"parent_x,omitempty"`
	ParentY     float64 `json:"parent_y,omitempty"`
}

// HasParent reports whether an edge should be drawn to the parent.
func (p Positioned) HasParent() bool { return p.ParentID != "" }

// Layout is a positioned, leveled node list in pre-order.
type Layout struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Depth  int          `json:"depth"` // bintree.MaxDepth of the tree
	Nodes  []Positioned `json:"nodes"`
}

// Compute lays out the tree rooted at root. A nil root yields an empty
// layout with the frame size from opts.
func Compute(root *bintree.Node, opts Options) Layout {
	opts = opts.WithDefaults()
	l := Layout{Width: opts.Width, Height: opts.Height, Depth: bintree.MaxDepth(root)}
	w := walker{root: root, opts: opts, out: &l.Nodes}
	w.visit(root, "", opts.Center, 2, nil)

	for _, n := range l.Nodes {
		l.Width = max(l.Width, n.X+opts.Center/4)
		l.Height = max(l.Height, n.Y+opts.TopMargin)
	}
	return l
}

type walker struct {
	root *bintree.Node
	opts Options
	out  *[]Positioned
}

func (w walker) visit(n *bintree.Node, path string, x, tab float64, parent *Positioned) {
	if n == nil {
		return
	}
	depth := bintree.DepthOf(w.root, n)
	p := Positioned{
		ID:          NodeID(path),
		Path:        path,
		Label:       n.Value,
		Placeholder: n.IsPlaceholder(),
		Depth:       depth,
		X:           x,
		Y:           float64(depth)*w.opts.LevelHeight + w.opts.TopMargin,
	}
	if parent != nil {
		p.ParentID, p.ParentX, p.ParentY = parent.ID, parent.X, parent.Y
	}
	*w.out = append(*w.out, p)

	change := w.opts.Center / tab
	w.visit(n.Left, path+"L", x-change, tab*2, &p)
	w.visit(n.Right, path+"R", x+change, tab*2, &p)
}

// NodeID returns the handle of the node reached by path from the root.
// The same path always yields the same ID.
func NodeID(path string) string {
	return uuid.NewSHA1(namespace, []byte("node:"+path)).String()
}

// Levels groups node indexes by depth.
func (l Layout) Levels() [][]int {
	var out [][]int
	for i, n := range l.Nodes {
		for len(out) <= n.Depth {
			out = append(out, nil)
		}
		out[n.Depth] = append(out[n.Depth], i)
	}
	return out
}
