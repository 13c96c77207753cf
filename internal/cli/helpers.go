package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/aretw0/pergola/internal/logging"
	"github.com/aretw0/pergola/pkg/manifest"
	"github.com/aretw0/pergola/pkg/ports"
)

// SignalContext is a cancelable context that records which OS signal, if
// any, canceled it. It replaces signal.NotifyContext where the caller wants
// to tell a Ctrl-C apart from other cancellation.
type SignalContext struct {
	context.Context

	cancel context.CancelFunc
	sigCh  chan os.Signal

	mu     sync.Mutex
	sigVal os.Signal
}

// NewSignalContext creates a context canceled on SIGINT or SIGTERM.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sc.sigCh)
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.cancel()
		case <-ctx.Done():
		}
	}()

	return sc
}

// Cancel releases the context and its signal watcher.
func (sc *SignalContext) Cancel() {
	sc.cancel()
}

// Signal returns the signal that canceled the context, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger builds the application logger from the CLI flags. Logs go to
// stderr; stdout belongs to the menu frames.
func createLogger(level, format string) (*slog.Logger, error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case "", "text":
		return logging.New(lvl), nil
	case "json":
		return logging.NewJSON(lvl), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (expected text or json)", format)
	}
}

// historyPath returns the readline history location. Empty when no home
// directory is resolvable; history is then kept in memory only.
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pergola_history")
}

// handleExecutionError maps user-driven stops to a clean exit: a canceled
// context (Ctrl-C), end of input and an interrupted read are all normal
// ways to leave a menu.
func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, ports.ErrInterrupted) {
		return nil
	}
	return err
}

// formatProblems renders a validation report one finding per line, filtered
// by severity; pass "" for the full report.
func formatProblems(ps manifest.Problems, only manifest.Severity) string {
	var sb strings.Builder
	for _, p := range ps {
		if only != "" && p.Severity != only {
			continue
		}
		fmt.Fprintf(&sb, "  %s\n", p)
	}
	return strings.TrimRight(sb.String(), "\n")
}
