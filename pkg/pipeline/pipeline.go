// Package pipeline runs the normalize → layout → render chain shared by the
// CLI and the HTTP server.
//
// # Stages
//
//  1. Normalize: reshape the tree in place with [bintree.Normalizer]
//  2. Layout: position every node with [layout.Compute]
//  3. Render: produce the requested artifacts (SVG, PNG, PDF, DOT, JSON, text)
//
// Normalization and layout are cheap and always run. Rendered artifacts are
// cached by a hash of the input tree and every option that affects them, so
// repeated requests skip Graphviz and rsvg-convert.
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, bintree.Example(), pipeline.Options{
//	    Mode:    bintree.ModeComplete,
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := res.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeshape/pkg/bintree"
	"github.com/matzehuels/treeshape/pkg/cache"
	"github.com/matzehuels/treeshape/pkg/errors"
	"github.com/matzehuels/treeshape/pkg/layout"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatJSON = "json"
	FormatText = "text"
)

// Formats lists every supported output format in a stable order.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatDOT, FormatJSON, FormatText}

// DefaultFormats is used when no format is requested.
var DefaultFormats = []string{FormatSVG}

// DefaultScale is the PNG resolution multiplier.
const DefaultScale = 2.0

// Extension returns the file extension for a format.
func Extension(format string) string {
	if format == FormatText {
		return "txt"
	}
	return format
}

// ContentType returns the MIME type served for a format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates. It does not validate.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// Options configures one pipeline run.
type Options struct {
	Mode     bintree.Mode   `json:"mode"`
	Formats  []string       `json:"formats,omitempty"`
	Layout   layout.Options `json:"layout"`
	Label    string         `json:"label,omitempty"`    // placeholder value; defaults to "?"
	Detailed bool           `json:"detailed,omitempty"` // depth and path in diagram labels
	Title    string         `json:"title,omitempty"`    // diagram caption
	Scale    float64        `json:"scale,omitempty"`    // PNG scale
	Refresh  bool           `json:"refresh,omitempty"`  // bypass cached artifacts

	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// safe to call more than once.
func (o *Options) ValidateAndSetDefaults() error {
	if !o.Mode.Valid() {
		return errors.New(errors.ErrCodeInvalidMode, "invalid mode %q (must be one of: %s)", o.Mode, strings.Join(bintree.ModeNames(), ", "))
	}
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Label != "" {
		if err := errors.ValidateLabel(o.Label); err != nil {
			return err
		}
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	o.Layout = o.Layout.WithDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ArtifactKeyOpts returns the cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Mode:        o.Mode.String(),
		Format:      format,
		Label:       o.Label,
		Detailed:    o.Detailed,
		Title:       o.Title,
		Scale:       o.Scale,
		Center:      o.Layout.Center,
		LevelHeight: o.Layout.LevelHeight,
		TopMargin:   o.Layout.TopMargin,
		Width:       o.Layout.Width,
		Height:      o.Layout.Height,
	}
}

// Result holds the outputs of a run.
type Result struct {
	// Tree is the normalized tree. Execute reshapes its input in place, so
	// this is the same root that was passed in.
	Tree *bintree.Node

	// TreeHash identifies the input tree before normalization.
	TreeHash string

	Normalize bintree.Result
	Layout    layout.Layout

	// Artifacts maps each requested format to its bytes.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats records stage timings.
type Stats struct {
	NormalizeTime time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// CacheInfo reports which artifacts came from the cache.
type CacheInfo struct {
	RenderHit bool     // every artifact was cached
	Hits      []string // formats served from cache
}
