package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeshape/pkg/bintree"
	"github.com/matzehuels/treeshape/pkg/errors"
	"github.com/matzehuels/treeshape/pkg/pipeline"
)

// normalizeOpts holds the flags of the normalize command.
type normalizeOpts struct {
	formats     string
	output      string
	label       string
	title       string
	detailed    bool
	noCache     bool
	refresh     bool
	interactive bool
}

// normalizeCommand creates the normalize command.
func (c *CLI) normalizeCommand() *cobra.Command {
	var opts normalizeOpts

	cmd := &cobra.Command{
		Use:   "normalize [complete|proper|perfect]",
		Short: "Normalize the example tree and draw it",
		Long: `Normalize the example tree into the given shape and draw it.

The example tree is the ordered tree A(B(E F) B'(F') C(G H I) D), encoded as a
binary tree with first children on the left and next siblings on the right.
Normalization inserts "?" placeholder nodes until the tree is:

  complete  every level full except the last, which is filled from the left
  proper    every node has zero or two children
  perfect   every leaf at the same depth and every inner node has two children

Artifacts are written to <output>.<format> (default example-<mode>). Use
"-o -" to write a single format to stdout.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: bintree.ModeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := c.resolveMode(args, opts.interactive)
			if err != nil {
				return err
			}
			return c.runNormalize(cmd.Context(), mode, opts, cmd.Flags().Changed("format"))
		},
	}

	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): "+strings.Join(pipeline.Formats, ", ")+" (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path, or - for stdout")
	cmd.Flags().StringVar(&opts.label, "label", "", "value of inserted placeholder nodes (default \"?\")")
	cmd.Flags().StringVar(&opts.title, "title", "", "caption drawn above the diagram")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show depth and path in diagram labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the mode interactively")

	return cmd
}

// resolveMode takes the mode from the argument, the interactive picker or
// the config file, in that order. Anything else is a usage error raised
// before a tree is built.
func (c *CLI) resolveMode(args []string, interactive bool) (bintree.Mode, error) {
	switch {
	case len(args) == 1:
		mode, err := bintree.ParseMode(args[0])
		if err != nil {
			return bintree.ModeInvalid, usageError(err)
		}
		return mode, nil
	case interactive:
		return pickMode()
	case c.Config.Mode.Valid():
		return c.Config.Mode, nil
	default:
		return bintree.ModeInvalid, usageError(errors.New(errors.ErrCodeInvalidMode, "no mode given"))
	}
}

func usageError(err error) error {
	return fmt.Errorf("%s\nusage: %s normalize <%s>", errors.UserMessage(err), appName, strings.Join(bintree.ModeNames(), "|"))
}

// runNormalize executes the pipeline on a fresh example tree and writes the
// artifacts.
func (c *CLI) runNormalize(ctx context.Context, mode bintree.Mode, o normalizeOpts, formatsSet bool) error {
	opts := pipeline.Options{
		Mode:     mode,
		Formats:  c.Config.Formats,
		Layout:   c.Config.Layout,
		Label:    c.Config.Label,
		Detailed: o.detailed,
		Title:    o.title,
		Refresh:  o.refresh,
		Logger:   c.Logger,
	}
	if formatsSet {
		opts.Formats = pipeline.ParseFormats(o.formats)
	}
	if o.label != "" {
		opts.Label = o.label
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	toStdout := o.output == "-"
	if toStdout && len(opts.Formats) != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "-o - needs exactly one format, got %d", len(opts.Formats))
	}
	base := o.output
	if base == "" {
		base = "example-" + mode.String()
	}
	if !toStdout {
		base = basePath(base)
		if err := errors.ValidateOutputPath(base); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(ctx, o.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Normalizing (%s)...", mode))
	if !toStdout {
		spinner.Start()
	}
	timer := startStage(c.Logger, "normalize")
	res, err := runner.Execute(ctx, bintree.Example(), opts)
	if !toStdout {
		if err != nil {
			spinner.StopWithError("Normalization failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}
	timer.done(normalizedMessage(res), "mode", mode, "placeholders", res.Normalize.Placeholders, "cached", res.CacheInfo.RenderHit)

	if toStdout {
		_, err := os.Stdout.Write(res.Artifacts[opts.Formats[0]])
		return err
	}

	printSuccess("Normalized example tree into %s form", StyleHighlight.Render(mode.String()))
	printResult(res)
	logger := log.FromContext(ctx)
	for _, format := range opts.Formats {
		path := base + "." + pipeline.Extension(format)
		data := res.Artifacts[format]
		if err := writeArtifact(path, data); err != nil {
			return err
		}
		logger.Debug("wrote artifact", "path", path, "bytes", len(data))
		printFile(path)
	}
	return nil
}

// basePath strips a known format extension so "-o tree.svg" and "-o tree"
// name the same files.
func basePath(output string) string {
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	for _, f := range pipeline.Formats {
		if ext == pipeline.Extension(f) {
			return strings.TrimSuffix(output, "."+ext)
		}
	}
	return output
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
