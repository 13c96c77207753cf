package observability

import (
	"context"
	"fmt"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine's Prometheus instruments. Create one with
// NewMetrics and plug Hooks() into the menu; the instruments stay reachable
// for direct inspection.
type Metrics struct {
	Renders    prometheus.Counter
	Dispatches *prometheus.CounterVec
	Fallbacks  prometheus.Counter
	Errors     *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// NewMetrics builds and registers the engine instruments on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Renders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pergola_menu_renders_total",
			Help: "Total number of menu frames drawn",
		}),
		Dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pergola_menu_dispatches_total",
			Help: "Total number of option dispatches",
		}, []string{"option"}),
		Fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pergola_menu_fallbacks_total",
			Help: "Total number of unmatched inputs routed to the fallback",
		}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pergola_menu_errors_total",
			Help: "Total number of menu loop errors",
		}, []string{"stage"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "pergola_handler_duration_seconds",
			Help: "Duration of option handler invocations",
		}, []string{"option"}),
	}

	for _, c := range []prometheus.Collector{m.Renders, m.Dispatches, m.Fallbacks, m.Errors, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register menu metrics: %w", err)
		}
	}
	return m, nil
}

// Hooks returns the lifecycle hooks that feed the instruments.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRender: func(_ context.Context, _ *domain.RenderEvent) {
			m.Renders.Inc()
		},
		OnDispatch: func(_ context.Context, e *domain.DispatchEvent) {
			m.Dispatches.WithLabelValues(e.Option).Inc()
			m.Duration.WithLabelValues(e.Option).Observe(e.Duration.Seconds())
		},
		OnFallback: func(_ context.Context, _ *domain.FallbackEvent) {
			m.Fallbacks.Inc()
		},
		OnError: func(_ context.Context, e *domain.ErrorEvent) {
			m.Errors.WithLabelValues(e.Stage).Inc()
		},
	}
}

// MetricsHooks registers the engine instruments on reg and returns their
// hook set in one call. Use NewMetrics when the instruments themselves are
// needed afterwards.
func MetricsHooks(reg prometheus.Registerer) (domain.LifecycleHooks, error) {
	m, err := NewMetrics(reg)
	if err != nil {
		return domain.LifecycleHooks{}, err
	}
	return m.Hooks(), nil
}
