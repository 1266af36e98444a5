package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/treeshape/pkg/bintree"
	tio "github.com/matzehuels/treeshape/pkg/io"
	"github.com/matzehuels/treeshape/pkg/layout"
	"github.com/matzehuels/treeshape/pkg/render"
	"github.com/matzehuels/treeshape/pkg/render/nodelink"
	"github.com/matzehuels/treeshape/pkg/render/text"
)

// Render produces opts.Formats for an already normalized and positioned
// tree. The SVG is rendered at most once and reused for PNG and PDF.
func Render(ctx context.Context, root *bintree.Node, res bintree.Result, l layout.Layout, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(l, nodelink.Options{Detailed: opts.Detailed, Title: opts.Title})

	var svg []byte
	getSVG := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		var err error
		svg, err = nodelink.RenderSVG(ctx, dot)
		return svg, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = getSVG()
		case FormatPNG:
			if data, err = getSVG(); err == nil {
				data, err = render.ToPNG(ctx, data, opts.Scale)
			}
		case FormatPDF:
			if data, err = getSVG(); err == nil {
				data, err = render.ToPDF(ctx, data)
			}
		case FormatJSON:
			var buf bytes.Buffer
			err = tio.WriteJSON(tio.NewDocument(root, res, &l), &buf)
			data = buf.Bytes()
		case FormatText:
			data = text.Render(root, l)
		default:
			err = ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
