package pergola

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/reader"
)

// The two parameter types the engine can resolve. Anything else in a
// handler signature is an invocation error.
var (
	runFlagType = reflect.TypeOf((*domain.RunFlag)(nil))
	readerType  = reflect.TypeOf((*reader.Reader)(nil))
)

// dispatch routes one input line: the first option whose trigger pattern
// equals the line wins; anything else goes to the fallback when one is
// registered and is silently redrawn when none is.
func (m *Menu) dispatch(ctx context.Context, s *session, line string) {
	opt, ok := m.registry.Match(line)
	if !ok {
		m.runFallback(ctx, s, line)
		return
	}

	start := time.Now()
	stopped, err := m.invoke(s, opt.Handler, opt.Name(), opt.Pattern())
	if err != nil {
		m.reportError(ctx, s, "invoke", err)
		return
	}

	s.logger.Debug("option dispatched", "option", opt.Name(), "pattern", opt.Pattern(), "stopped", stopped)
	if m.hooks.OnDispatch != nil {
		m.hooks.OnDispatch(ctx, &domain.DispatchEvent{
			EventBase: domain.NewEventBase(domain.EventDispatch, s.id),
			Option:    opt.Name(),
			Pattern:   opt.Pattern(),
			Stopped:   stopped,
			Duration:  time.Since(start),
		})
	}
}

// runFallback invokes the unknown-input handler, if any. The fallback
// follows the same signature contract as options: it may take parameters
// and may stop the loop.
func (m *Menu) runFallback(ctx context.Context, s *session, line string) {
	fb, ok := m.registry.Fallback()
	if !ok {
		s.logger.Debug("input matched no option", "input", line)
		return
	}

	if m.hooks.OnFallback != nil {
		m.hooks.OnFallback(ctx, &domain.FallbackEvent{
			EventBase: domain.NewEventBase(domain.EventFallback, s.id),
			Input:     line,
		})
	}
	if _, err := m.invoke(s, fb, "", ""); err != nil {
		m.reportError(ctx, s, "invoke", err)
	}
}

// invoke resolves the handler's declared parameters, calls it, and applies
// the stop protocol. A panic inside the handler is recovered into the
// returned error, so one broken handler cannot tear the menu down. The
// bool reports whether this call stopped the loop.
func (m *Menu) invoke(s *session, h domain.Handler, name, pattern string) (stopped bool, err error) {
	args, err := m.resolveArgs(h, s.flag)
	if err != nil {
		return false, &domain.InvocationError{Option: name, Pattern: pattern, Err: err}
	}

	defer func() {
		if r := recover(); r != nil {
			stopped = false
			err = &domain.InvocationError{Option: name, Pattern: pattern, Err: fmt.Errorf("handler panicked: %v", r)}
		}
	}()

	results := h.Func().Call(args)

	if h.Returns() == domain.ReturnBool {
		// The flag tracks "keep running", so a true return means stop:
		// the flag becomes the logical negation of the returned value.
		ret := results[0].Bool()
		s.flag.Set(!ret)
		if ret {
			s.reason = domain.StopHandler
		}
		return ret, nil
	}

	// Void handlers stop through their *RunFlag argument, read back here.
	if !s.flag.Running() {
		s.reason = domain.StopRunFlag
		return true, nil
	}
	return false, nil
}

// resolveArgs builds the argument list from the handler's declared
// parameter types. Each parameter is resolved by type: the session's run
// flag or the menu's typed reader.
func (m *Menu) resolveArgs(h domain.Handler, flag *domain.RunFlag) ([]reflect.Value, error) {
	params := h.Params()
	if len(params) == 0 {
		return nil, nil
	}

	args := make([]reflect.Value, len(params))
	for i, p := range params {
		switch p {
		case runFlagType:
			args[i] = reflect.ValueOf(flag)
		case readerType:
			args[i] = reflect.ValueOf(m.reader)
		default:
			return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedParam, p)
		}
	}
	return args, nil
}
