package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/internal/presentation/tui"
	"github.com/aretw0/pergola/pkg/adapters/readline"
	"github.com/aretw0/pergola/pkg/adapters/stdio"
	"github.com/aretw0/pergola/pkg/manifest"
	"github.com/aretw0/pergola/pkg/observability"
	"github.com/aretw0/pergola/pkg/ports"
	"golang.org/x/term"
)

// RunOptions configures one menu session.
type RunOptions struct {
	ManifestPath string
	LogLevel     string
	LogFormat    string
	Headless     bool
	NoClear      bool
	NoBanner     bool
	Pause        bool
}

// RunSession loads the manifest and drives one menu session to completion.
// Interactive niceties (banner, line editor, markdown rendering, pauses)
// activate only when stdin is a real terminal and --headless is off.
func RunSession(opts RunOptions) error {
	logger, err := createLogger(opts.LogLevel, opts.LogFormat)
	if err != nil {
		return err
	}

	f, err := manifest.Load(opts.ManifestPath)
	if err != nil {
		return err
	}

	problems := f.Validate()
	for _, p := range problems {
		if p.Severity == manifest.SeverityWarning {
			logger.Warn("manifest problem", "path", p.Path, "detail", p.Message)
		}
	}
	if problems.HasErrors() {
		return fmt.Errorf("invalid manifest %s:\n%s",
			opts.ManifestPath, formatProblems(problems, manifest.SeverityError))
	}

	interactive := !opts.Headless && term.IsTerminal(int(os.Stdin.Fd()))
	if interactive && !opts.NoBanner {
		tui.PrintBanner(pergola.Version)
	}

	source, err := createSource(interactive)
	if err != nil {
		return err
	}

	buildOpts := []manifest.BuildOption{
		manifest.WithPause(interactive || opts.Pause),
		manifest.WithMenuOptions(menuOptions(opts, logger, source, interactive)...),
	}
	if interactive {
		buildOpts = append(buildOpts, manifest.WithRenderer(tui.NewRenderer()))
	}

	m, err := f.Menu(buildOpts...)
	if err != nil {
		return fmt.Errorf("build menu: %w", err)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	runErr := m.Run(sigCtx)
	if sig := sigCtx.Signal(); sig != nil {
		// Move past the interrupted prompt line before the shell returns.
		fmt.Println()
		logger.Info("session interrupted", "signal", sig.String())
	}
	return handleExecutionError(runErr)
}

// createSource picks the input adapter: a readline editor on a real
// terminal, plain buffered stdin everywhere else (pipes, CI, tests).
func createSource(interactive bool) (ports.LineSource, error) {
	if !interactive {
		return stdio.New(os.Stdin), nil
	}
	return readline.New(readline.WithHistoryFile(historyPath()))
}

func menuOptions(opts RunOptions, logger *slog.Logger, source ports.LineSource, interactive bool) []pergola.Option {
	menuOpts := []pergola.Option{
		pergola.WithLineSource(source),
		pergola.WithLogger(logger),
		pergola.WithLifecycleHooks(observability.LoggingHooks(logger)),
		pergola.WithErrorPause(interactive),
	}
	if opts.NoClear || !interactive {
		menuOpts = append(menuOpts, pergola.WithNoClear())
	}
	return menuOpts
}
