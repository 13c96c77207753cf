package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRender   EventType = "render"
	EventDispatch EventType = "dispatch"
	EventFallback EventType = "fallback"
	EventError    EventType = "error"
	EventStop     EventType = "stop"
)

// Stop reasons reported by StopEvent.
const (
	StopHandler   = "handler"   // a bool-returning handler returned true
	StopRunFlag   = "run_flag"  // a handler set its *RunFlag argument to false
	StopEndOfLine = "eof"       // the line source reached end of input
	StopInterrupt = "interrupt" // the line source was interrupted
	StopContext   = "context"   // the run context was canceled
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// NewEventBase stamps a base for one session event.
func NewEventBase(t EventType, sessionID string) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t, SessionID: sessionID}
}

// RenderEvent fires after each frame is written, before the blocking read.
type RenderEvent struct {
	EventBase
	Title   string `json:"title"`
	Options int    `json:"options"`
}

// DispatchEvent fires after an option handler returns.
type DispatchEvent struct {
	EventBase
	Option   string        `json:"option"`
	Pattern  string        `json:"pattern"`
	Stopped  bool          `json:"stopped"`
	Duration time.Duration `json:"duration"`
}

// FallbackEvent fires when input matched no option and the fallback ran.
type FallbackEvent struct {
	EventBase
	Input string `json:"input"`
}

// ErrorEvent fires when a loop iteration caught an error.
type ErrorEvent struct {
	EventBase
	Stage   string `json:"stage"` // "clear", "read" or "invoke"
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// StopEvent fires once, when the loop leaves the running state.
type StopEvent struct {
	EventBase
	Reason string `json:"reason"`
}

// LifecycleHooks defines callbacks for engine observability. All hooks are
// optional and run synchronously on the loop goroutine.
type LifecycleHooks struct {
	OnRender   func(context.Context, *RenderEvent)
	OnDispatch func(context.Context, *DispatchEvent)
	OnFallback func(context.Context, *FallbackEvent)
	OnError    func(context.Context, *ErrorEvent)
	OnStop     func(context.Context, *StopEvent)
}
