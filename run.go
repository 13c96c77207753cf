package pergola

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/pergola/internal/render"
	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/ports"
	"github.com/google/uuid"
)

// session is the per-Run state: identity, the run flag handlers may flip,
// the frame cached for the whole session, and the stop reason for the
// OnStop event. It lives on the loop goroutine only.
type session struct {
	id     string
	flag   *domain.RunFlag
	frame  *render.Frame
	logger *slog.Logger
	reason string
}

// Run executes the render-read-match-invoke loop until a handler stops it,
// the line source reaches end of input, or ctx is canceled at an iteration
// boundary. The input source is closed when Run returns, whatever the path.
//
// Runtime errors (a failed clear, a broken read, a panicking handler, an
// unsupported parameter type) are reported via the logger, the OnError hook
// and an "Error:" line on the writer, and the loop continues. Run itself returns
// an error only for context cancellation; stopping via a handler or end of
// input is a normal exit.
func (m *Menu) Run(ctx context.Context) error {
	s := &session{
		id:    uuid.NewString(),
		flag:  domain.NewRunFlag(),
		frame: render.NewFrame(m.title, m.registry.Options()),
	}
	s.logger = m.logger.With("session_id", s.id)
	defer m.Close()

	s.logger.Debug("session starting", "options", m.registry.Len(), "fallback", m.HasFallback())

	for s.flag.Running() {
		if err := ctx.Err(); err != nil {
			m.fireStop(ctx, s, domain.StopContext)
			return err
		}

		m.drawFrame(ctx, s)

		value, err := m.reader.Read(ctx, domain.KindText, render.Prompt)
		if err != nil {
			if reason, stop := stopReasonFor(err); stop {
				m.fireStop(ctx, s, reason)
				return nil
			}
			if ctx.Err() != nil {
				m.fireStop(ctx, s, domain.StopContext)
				return ctx.Err()
			}
			m.reportError(ctx, s, "read", err)
			continue
		}

		line, _ := value.Text()
		m.dispatch(ctx, s, line)
	}

	m.fireStop(ctx, s, s.reason)
	return nil
}

// stopReasonFor maps read errors that end the loop cleanly to their stop
// reason. Other errors are loop-continuing.
func stopReasonFor(err error) (string, bool) {
	switch {
	case errors.Is(err, io.EOF):
		return domain.StopEndOfLine, true
	case errors.Is(err, ports.ErrInterrupted):
		return domain.StopInterrupt, true
	}
	return "", false
}

// drawFrame clears the screen and writes the cached frame. The clear is
// synchronous: the engine waits for it, or stale output could interleave
// with the new frame. A clear failure is reported and drawing proceeds.
func (m *Menu) drawFrame(ctx context.Context, s *session) {
	if err := m.clearer.Clear(ctx); err != nil {
		m.reportError(ctx, s, "clear", err)
	}
	fmt.Fprint(m.writer, s.frame)

	if m.hooks.OnRender != nil {
		m.hooks.OnRender(ctx, &domain.RenderEvent{
			EventBase: domain.NewEventBase(domain.EventRender, s.id),
			Title:     m.title,
			Options:   m.registry.Len(),
		})
	}
}

// reportError surfaces a loop-continuing error: structured log, OnError
// hook, and an "Error:" line for the user. With WithErrorPause the loop
// then consumes one line, so the message survives until the user has read
// it. Clear failures skip the pause: the frame follows immediately and
// pausing there would block every draw.
func (m *Menu) reportError(ctx context.Context, s *session, stage string, err error) {
	s.logger.Error("menu iteration failed", "stage", stage, "error", err)

	if m.hooks.OnError != nil {
		m.hooks.OnError(ctx, &domain.ErrorEvent{
			EventBase: domain.NewEventBase(domain.EventError, s.id),
			Stage:     stage,
			Message:   err.Error(),
			Err:       err,
		})
	}

	fmt.Fprintf(m.writer, "\n Error: %v\n", err)
	if m.errorPause && stage != "clear" {
		fmt.Fprint(m.writer, " press ENTER to continue ")
		if _, readErr := m.source.ReadLine(ctx); readErr != nil {
			s.logger.Debug("error pause read failed", "error", readErr)
		}
	}
}

// fireStop emits the OnStop event exactly once, as the loop exits.
func (m *Menu) fireStop(ctx context.Context, s *session, reason string) {
	s.logger.Debug("session stopped", "reason", reason)

	if m.hooks.OnStop != nil {
		m.hooks.OnStop(ctx, &domain.StopEvent{
			EventBase: domain.NewEventBase(domain.EventStop, s.id),
			Reason:    reason,
		})
	}
}
