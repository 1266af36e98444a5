// Package render turns positioned trees into output artifacts.
//
// Subpackages produce the source formats:
//
//   - [nodelink]: Graphviz DOT with pinned coordinates, rendered to SVG in-process
//   - [text]: terminal drawings styled with lipgloss
//
// This package holds the format conversions they share. [ToPDF] and [ToPNG]
// convert any SVG with the external rsvg-convert tool (from librsvg).
//
//	svg, err := nodelink.RenderSVG(nodelink.ToDOT(l, nodelink.Options{}))
//	png, err := render.ToPNG(svg, 2.0)
//
// [nodelink]: github.com/matzehuels/treeshape/pkg/render/nodelink
// [text]: github.com/matzehuels/treeshape/pkg/render/text
package render
