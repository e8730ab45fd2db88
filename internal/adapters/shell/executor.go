package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/slab-sh/slab/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor runs external commands with their output streamed to the
// logger and, when given, an additional writer.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Run executes name with args inside dir. extraEnv entries ("KEY=VALUE")
// are appended to the inherited environment. Both output streams are
// mirrored to output when it is non-nil.
func (e *Executor) Run(ctx context.Context, dir string, extraEnv []string, output io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // Command comes from the build contract, not user input
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), extraEnv...)
	cmd.Stdout = e.stream(false, output)
	cmd.Stderr = e.stream(true, output)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		failed := zerr.With(zerr.Wrap(err, "command failed"), "command", name+" "+strings.Join(args, " "))
		return zerr.With(zerr.With(failed, "dir", dir), "exit_code", exitCode)
	}
	return nil
}

func (e *Executor) stream(warn bool, output io.Writer) io.Writer {
	lw := &logWriter{logger: e.logger, warn: warn}
	if output == nil {
		return lw
	}
	return io.MultiWriter(lw, output)
}

// logWriter forwards process output lines to the logger.
type logWriter struct {
	logger ports.Logger
	warn   bool
}

func (w *logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		if w.warn {
			w.logger.Warn(line)
		} else {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
