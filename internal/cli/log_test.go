package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeshape/pkg/bintree"
	"github.com/matzehuels/treeshape/pkg/pipeline"
)

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug written at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug missing after SetLogLevel: %q", buf.String())
	}
}

func TestStageTimer(t *testing.T) {
	var buf bytes.Buffer
	timer := startStage(newLogger(&buf, LogInfo), "normalize")

	res := &pipeline.Result{Normalize: bintree.Result{Before: 11, After: 91, Placeholders: 80}}
	timer.done(normalizedMessage(res), "placeholders", res.Normalize.Placeholders)

	out := buf.String()
	for _, want := range []string{"Normalized 11 → 91 nodes", "stage=normalize", "elapsed=", "placeholders=80"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
	if timer.elapsed() < 0 {
		t.Error("negative elapsed time")
	}
}

func TestRunNormalizeLogs(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var cliLog, ctxLog bytes.Buffer
	c := New(&cliLog, LogInfo)
	ctx := log.WithContext(context.Background(), newLogger(&ctxLog, LogDebug))
	base := filepath.Join(t.TempDir(), "tree")

	err := c.runNormalize(ctx, bintree.ModePerfect, normalizeOpts{formats: "dot", output: base, noCache: true}, true)
	if err != nil {
		t.Fatalf("runNormalize() error: %v", err)
	}

	if out := cliLog.String(); !strings.Contains(out, "Normalized 11 → 127 nodes") || !strings.Contains(out, "mode=perfect") {
		t.Errorf("summary log = %q", out)
	}
	if out := ctxLog.String(); !strings.Contains(out, "wrote artifact") || !strings.Contains(out, base+".dot") {
		t.Errorf("context logger did not receive the artifact log: %q", out)
	}
}

func TestRootCommandPutsLoggerOnContext(t *testing.T) {
	c := testCLI(t)
	root := c.RootCommand()
	root.SetArgs([]string{"config", "path"})

	var got *log.Logger
	for _, sub := range root.Commands() {
		if sub.Name() != "config" {
			continue
		}
		for _, leaf := range sub.Commands() {
			if leaf.Name() == "path" {
				run := leaf.RunE
				leaf.RunE = func(cmd *cobra.Command, args []string) error {
					got = log.FromContext(cmd.Context())
					return run(cmd, args)
				}
			}
		}
	}
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got != c.Logger {
		t.Error("command context does not carry the CLI logger")
	}
}
