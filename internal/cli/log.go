// Logging for the treeshape commands. -v lowers the level to debug; the
// logger also rides on the command context (log.WithContext) so code that
// only sees a context logs to the same place.

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeshape/pkg/pipeline"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stageTimer times one step of a command.
type stageTimer struct {
	logger *log.Logger
	stage  string
	start  time.Time
}

func startStage(l *log.Logger, stage string) stageTimer {
	return stageTimer{logger: l, stage: stage, start: time.Now()}
}

// elapsed is rounded to the millisecond.
func (s stageTimer) elapsed() time.Duration {
	return time.Since(s.start).Round(time.Millisecond)
}

// done logs msg at info level, tagged with the stage and elapsed time.
func (s stageTimer) done(msg string, keyvals ...any) {
	s.logger.Info(msg, append([]any{"stage", s.stage, "elapsed", s.elapsed()}, keyvals...)...)
}

// normalizedMessage reads like "Normalized 11 → 91 nodes".
func normalizedMessage(res *pipeline.Result) string {
	return fmt.Sprintf("Normalized %d → %d nodes", res.Normalize.Before, res.Normalize.After)
}
