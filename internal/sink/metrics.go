package sink

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"logsink/internal/event"
)

// MetricsSink decorates another Sink with prometheus counters for emitted
// events and emit failures. The returned value still fulfils the Sink
// interface so it can be dropped in transparently wherever a sink is
// expected.
type MetricsSink struct {
	inner  Sink
	events prometheus.Counter
	errs   prometheus.Counter
}

// NewMetricsSink wraps inner, registering its counters with reg. The name
// label distinguishes several instrumented sinks sharing one registry.
func NewMetricsSink(inner Sink, reg prometheus.Registerer, name string) (*MetricsSink, error) {
	if inner == nil {
		return nil, errors.New("metrics sink: inner sink is required")
	}
	labels := prometheus.Labels{"sink": name}
	return &MetricsSink{
		inner: inner,
		events: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name:        "logsink_events_emitted_total",
			Help:        "Events successfully handed to the wrapped sink.",
			ConstLabels: labels,
		}),
		errs: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name:        "logsink_emit_errors_total",
			Help:        "Emit calls that returned an error.",
			ConstLabels: labels,
		}),
	}, nil
}

// Emit forwards the event to the wrapped sink, counting the outcome.
func (m *MetricsSink) Emit(evt *event.Event) error {
	if err := m.inner.Emit(evt); err != nil {
		m.errs.Inc()
		return err
	}
	m.events.Inc()
	return nil
}

func (m *MetricsSink) Close() error {
	return m.inner.Close()
}
