// Package pkg holds the treeshape libraries.
//
// # Overview
//
// treeshape takes a binary tree, stored in left-child/right-sibling form,
// and pads it with placeholder nodes until it is complete, proper or
// perfect. The normalized tree is laid out on a fixed grid and rendered as
// a node-link diagram or a text tree.
//
// # Architecture
//
//	n-ary example tree
//	         ↓
//	    [bintree] package (encode, measure, normalize)
//	         ↓
//	    [layout] package (x/y positions per node)
//	         ↓
//	    [render] packages (DOT, SVG, PNG, PDF, text)
//	         ↓
//	    [io] package (JSON documents)
//
// [pipeline] runs these steps in order and caches rendered artifacts through
// [cache]. [observability] exposes hooks for each stage.
//
// # Quick Start
//
//	root := bintree.Example()
//	res, err := bintree.Normalize(root, bintree.ModeComplete)
//	if err != nil {
//	    return err
//	}
//	l := layout.Compute(root, layout.DefaultOptions())
//	dot := nodelink.ToDOT(l, nodelink.Options{})
//
// Or through the pipeline, which also validates options and caches output:
//
//	r := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	out, err := r.Execute(ctx, bintree.Example(), pipeline.Options{
//	    Mode:    bintree.ModeComplete,
//	    Formats: []string{pipeline.FormatSVG},
//	})
//
// # Main Packages
//
//   - [github.com/matzehuels/treeshape/pkg/bintree]: tree model, shape predicates, normalization
//   - [github.com/matzehuels/treeshape/pkg/layout]: coordinate assignment
//   - [github.com/matzehuels/treeshape/pkg/render/nodelink]: Graphviz DOT and SVG
//   - [github.com/matzehuels/treeshape/pkg/render/text]: terminal tree and level summary
//   - [github.com/matzehuels/treeshape/pkg/io]: JSON export
//   - [github.com/matzehuels/treeshape/pkg/pipeline]: orchestration
//   - [github.com/matzehuels/treeshape/pkg/cache]: file, Redis and null caches
package pkg
