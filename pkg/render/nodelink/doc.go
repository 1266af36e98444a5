// Package nodelink draws positioned binary trees as node-link diagrams.
//
// [ToDOT] emits Graphviz DOT where every node is pinned at the coordinates
// computed by [layout.Compute], so Graphviz only draws and never re-arranges.
// Placeholder nodes are dashed and grey. [RenderSVG] runs the neato engine
// in-process through [github.com/goccy/go-graphviz].
//
//	l := layout.Compute(root, layout.DefaultOptions())
//	svg, err := nodelink.RenderSVG(ctx, nodelink.ToDOT(l, nodelink.Options{}))
//
// [layout.Compute]: github.com/matzehuels/treeshape/pkg/layout.Compute
package nodelink
