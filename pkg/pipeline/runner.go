package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeshape/pkg/bintree"
	"github.com/matzehuels/treeshape/pkg/cache"
	"github.com/matzehuels/treeshape/pkg/errors"
	tio "github.com/matzehuels/treeshape/pkg/io"
	"github.com/matzehuels/treeshape/pkg/layout"
	"github.com/matzehuels/treeshape/pkg/observability"
)

// Runner executes the pipeline with artifact caching.
//
// A Runner holds no per-run state, so one Runner can serve concurrent
// requests as long as each passes its own tree.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses [cache.DefaultKeyer] and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger, TTL: cache.TTLArtifact}
}

// Execute normalizes root in place, lays it out and renders every requested
// format. Invalid options are rejected before the tree is touched.
func (r *Runner) Execute(ctx context.Context, root *bintree.Node, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	hash, err := TreeHash(root)
	if err != nil {
		return nil, err
	}
	res := &Result{Tree: root, TreeHash: hash}

	// Stage 1: Normalize
	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnNormalizeStart(ctx, opts.Mode.String(), bintree.Count(root))
	z := bintree.Normalizer{Label: opts.Label}
	res.Normalize, err = z.Normalize(root, opts.Mode)
	res.Stats.NormalizeTime = time.Since(start)
	hooks.OnNormalizeComplete(ctx, opts.Mode.String(), res.Normalize.Placeholders, res.Stats.NormalizeTime, err)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	r.Logger.Info("normalized tree",
		"mode", opts.Mode,
		"before", res.Normalize.Before,
		"after", res.Normalize.After,
		"placeholders", res.Normalize.Placeholders)
	if !res.Normalize.Satisfied {
		r.Logger.Warn("tree does not satisfy mode after normalization", "mode", opts.Mode)
	}

	// Stage 2: Layout
	start = time.Now()
	res.Layout = layout.Compute(root, opts.Layout)
	res.Stats.LayoutTime = time.Since(start)
	r.Logger.Debug("computed layout", "nodes", len(res.Layout.Nodes), "depth", res.Layout.Depth)

	// Stage 3: Render
	start = time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	res.Artifacts, res.CacheInfo, err = r.renderCached(ctx, res, opts)
	res.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, res.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", res.CacheInfo.RenderHit,
		"duration", res.Stats.RenderTime)

	return res, nil
}

// renderCached serves each format from the cache when possible and renders
// the rest in one pass.
func (r *Runner) renderCached(ctx context.Context, res *Result, opts Options) (map[string][]byte, CacheInfo, error) {
	var info CacheInfo
	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	chooks := observability.Cache()

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(res.TreeHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				r.Logger.Warn("cache read failed", "format", format, "err", err)
			}
			if err == nil && hit {
				chooks.OnCacheHit(ctx, format)
				artifacts[format] = data
				info.Hits = append(info.Hits, format)
				continue
			}
			chooks.OnCacheMiss(ctx, format)
		}
		missing = append(missing, format)
	}
	info.RenderHit = len(missing) == 0
	if info.RenderHit {
		return artifacts, info, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(ctx, res.Tree, res.Normalize, res.Layout, renderOpts)
	if err != nil {
		return nil, info, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(res.TreeHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		chooks.OnCacheSet(ctx, format, len(data))
	}
	return artifacts, info, nil
}

// TreeHash returns a structural hash of the tree. Placeholder flags are
// part of the hash, so a partly normalized tree hashes differently from
// the same values entered by hand.
func TreeHash(root *bintree.Node) (string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(tio.ToTreeNode(root)); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash tree")
	}
	return cache.Hash(buf.Bytes()), nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
