package bintree

import (
	"strings"

	"github.com/matzehuels/treeshape/pkg/errors"
)

// Mode selects the canonical shape a tree is normalized into.
type Mode int

const (
	// ModeInvalid is the zero Mode. Normalizing with it is an error.
	ModeInvalid Mode = iota
	// ModeComplete fills every level but the last, then packs the last
	// level to the left.
	ModeComplete
	// ModeProper gives every one-child node a second child.
	ModeProper
	// ModePerfect pads every branch down to the deepest level.
	ModePerfect
)

var modeNames = map[Mode]string{
	ModeComplete: "complete",
	ModeProper:   "proper",
	ModePerfect:  "perfect",
}

// Modes returns every valid mode in display order.
func Modes() []Mode { return []Mode{ModeComplete, ModeProper, ModePerfect} }

// ModeNames returns the names accepted by [ParseMode].
func ModeNames() []string {
	out := make([]string, 0, len(modeNames))
	for _, m := range Modes() {
		out = append(out, m.String())
	}
	return out
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "invalid"
}

// Valid reports whether m names one of the three shapes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode converts a mode name to a [Mode]. Matching is exact; any other
// input yields an INVALID_MODE error.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if s == name {
			return m, nil
		}
	}
	return ModeInvalid, errors.New(errors.ErrCodeInvalidMode,
		"unknown mode %q (must be one of %s)", s, strings.Join(ModeNames(), ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidMode, "cannot marshal invalid mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so a Mode can be read
// straight from configuration files.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Allocator creates the placeholder node inserted into an empty child slot.
// Returning nil models an allocation failure: the slot stays empty and
// normalization carries on.
type Allocator func(value string) *Node

// Result summarizes one normalization pass.
type Result struct {
	Mode         Mode
	Before       int  // node count before normalization
	After        int  // node count after normalization
	Placeholders int  // nodes inserted by this pass
	Satisfied    bool // whether the tree now has the requested shape
}

// Normalizer inserts placeholder leaves into binary trees.
// The zero value is ready to use.
type Normalizer struct {
	// Alloc creates placeholder nodes. Defaults to a plain allocation of a
	// KindPlaceholder node.
	Alloc Allocator
	// Label is the value given to placeholders. Defaults to [Placeholder].
	Label string
}

// Normalize reshapes root with the default [Normalizer].
func Normalize(root *Node, mode Mode) (Result, error) {
	var z Normalizer
	return z.Normalize(root, mode)
}

// Normalize reshapes root in place into the shape selected by mode.
// An invalid mode is rejected before the tree is touched.
func (z *Normalizer) Normalize(root *Node, mode Mode) (Result, error) {
	if !mode.Valid() {
		return Result{}, errors.New(errors.ErrCodeInvalidMode, "cannot normalize with mode %s", mode)
	}
	res := Result{Mode: mode, Before: Count(root)}
	switch mode {
	case ModePerfect:
		z.MakePerfect(root)
	case ModeProper:
		z.MakeProper(root)
	case ModeComplete:
		z.MakeComplete(root)
	}
	res.After = Count(root)
	res.Placeholders = res.After - res.Before
	res.Satisfied = Is(root, mode)
	return res, nil
}

func (z *Normalizer) label() string {
	if z.Label == "" {
		return Placeholder
	}
	return z.Label
}

func (z *Normalizer) alloc() *Node {
	if z.Alloc == nil {
		return newPlaceholder(z.label())
	}
	return z.Alloc(z.label())
}

// fillMissing gives n a placeholder in each empty child slot.
func (z *Normalizer) fillMissing(n *Node) {
	if n.Left == nil {
		attach(n, z.alloc(), true)
	}
	if n.Right == nil {
		attach(n, z.alloc(), false)
	}
}

// MakePerfect pads the tree so that every leaf ends on the level that was
// deepest when the call started.
func (z *Normalizer) MakePerfect(root *Node) {
	z.perfect(root, root, MaxDepth(root))
}

func (z *Normalizer) perfect(root, cur *Node, target int) {
	if cur == nil {
		return
	}
	if DepthOf(root, cur)+1 != target {
		z.fillMissing(cur)
	}
	z.perfect(root, cur.Left, target)
	z.perfect(root, cur.Right, target)
}

// MakeProper gives every node with exactly one child a placeholder in the
// empty slot. Leaves and two-child nodes are left alone.
func (z *Normalizer) MakeProper(n *Node) {
	if n == nil || n.IsLeaf() {
		return
	}
	z.fillMissing(n)
	z.MakeProper(n.Left)
	z.MakeProper(n.Right)
}

// MakeComplete runs two passes. The first fills every level above the
// second-to-last. The second walks the tree right subtree first; once it
// meets a node on the second-to-last level that already has a child, that
// node and every such node to its left get both children.
//
// Trees of depth 0 or 1 are already complete.
func (z *Normalizer) MakeComplete(root *Node) {
	h := MaxDepth(root)
	if h <= 1 {
		return
	}
	z.fillTo(root, root, h-1)
	z.completeLastLevel(root, root, MaxDepth(root), false)
}

// fillTo gives both children to every node whose children land above
// cutoff, counted in nodes from the root.
func (z *Normalizer) fillTo(root, cur *Node, cutoff int) {
	if cur == nil || DepthOf(root, cur)+1 == cutoff {
		return
	}
	z.fillMissing(cur)
	z.fillTo(root, cur.Left, cutoff)
	z.fillTo(root, cur.Right, cutoff)
}

// completeLastLevel threads the completed flag through a right-to-left
// walk and returns its value after visiting cur's subtree.
func (z *Normalizer) completeLastLevel(root, cur *Node, h int, completed bool) bool {
	if cur == nil {
		return completed
	}
	d := DepthOf(root, cur)
	if d == h-2 && cur.ChildCount() > 0 {
		completed = true
	}
	if completed && d != h-1 {
		z.fillMissing(cur)
	}
	completed = z.completeLastLevel(root, cur.Right, h, completed)
	return z.completeLastLevel(root, cur.Left, h, completed)
}
