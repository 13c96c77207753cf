package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/pergola/pkg/domain"
)

// LoggingHooks returns lifecycle hooks that mirror every engine event into
// logger. Dispatches, fallbacks and stops log at Info; renders at Debug,
// since one record per frame is noise at Info; errors log at Error.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRender: func(_ context.Context, e *domain.RenderEvent) {
			logger.Debug("menu_render",
				"session_id", e.SessionID,
				"title", e.Title,
				"options", e.Options,
			)
		},
		OnDispatch: func(_ context.Context, e *domain.DispatchEvent) {
			logger.Info("option_dispatch",
				"session_id", e.SessionID,
				"option", e.Option,
				"pattern", e.Pattern,
				"stopped", e.Stopped,
				"duration", e.Duration,
			)
		},
		OnFallback: func(_ context.Context, e *domain.FallbackEvent) {
			logger.Info("fallback_dispatch",
				"session_id", e.SessionID,
				"input", e.Input,
			)
		},
		OnError: func(_ context.Context, e *domain.ErrorEvent) {
			logger.Error("menu_error",
				"session_id", e.SessionID,
				"stage", e.Stage,
				"error", e.Err,
			)
		},
		OnStop: func(_ context.Context, e *domain.StopEvent) {
			logger.Info("menu_stop",
				"session_id", e.SessionID,
				"reason", e.Reason,
			)
		},
	}
}

// Combine fans each event out to every hook set, in order. Use it to stack
// logging, metrics and custom hooks on one menu.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRender: func(ctx context.Context, e *domain.RenderEvent) {
			for _, h := range hooks {
				if h.OnRender != nil {
					h.OnRender(ctx, e)
				}
			}
		},
		OnDispatch: func(ctx context.Context, e *domain.DispatchEvent) {
			for _, h := range hooks {
				if h.OnDispatch != nil {
					h.OnDispatch(ctx, e)
				}
			}
		},
		OnFallback: func(ctx context.Context, e *domain.FallbackEvent) {
			for _, h := range hooks {
				if h.OnFallback != nil {
					h.OnFallback(ctx, e)
				}
			}
		},
		OnError: func(ctx context.Context, e *domain.ErrorEvent) {
			for _, h := range hooks {
				if h.OnError != nil {
					h.OnError(ctx, e)
				}
			}
		},
		OnStop: func(ctx context.Context, e *domain.StopEvent) {
			for _, h := range hooks {
				if h.OnStop != nil {
					h.OnStop(ctx, e)
				}
			}
		},
	}
}
