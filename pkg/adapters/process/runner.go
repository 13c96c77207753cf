package process

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner executes local commands for menu actions, blocking until the
// process exits. Output streams default to the parent's, but are usually
// rewired to the menu writer so command output lands in the frame flow.
type Runner struct {
	stdout  io.Writer
	stderr  io.Writer
	baseDir string
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithStdout rewires the spawned process's standard output.
func WithStdout(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdout = w
	}
}

// WithStderr rewires the spawned process's standard error.
func WithStderr(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stderr = w
	}
}

// WithBaseDir sets the working directory for executed processes.
func WithBaseDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.baseDir = dir
	}
}

// NewRunner creates a process runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes command with args and waits for it. The process inherits
// the parent environment, streams into the configured writers, and is
// killed when ctx is canceled.
func (r *Runner) Run(ctx context.Context, command string, args ...string) error {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = r.baseDir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", command, err)
	}
	return nil
}
