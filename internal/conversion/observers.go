// Package conversion converts digit strings between arbitrary bases.
// This file contains the observers that report finished conversions to
// logging and metrics backends.
package conversion

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	apperrors "github.com/agbru/baseconv/internal/errors"
)

// ConversionEvent describes one finished Converter.Convert call.
type ConversionEvent struct {
	InputBase    int
	OutputBase   int
	InputDigits  int
	OutputDigits int
	Duration     time.Duration
	// Err is the error returned to the caller, nil on success.
	Err error
}

// Outcome returns "success" or the error kind of the event.
func (e ConversionEvent) Outcome() string {
	if e.Err == nil {
		return "success"
	}
	return apperrors.Kind(e.Err)
}

// ConversionObserver receives an event after every conversion.
// Implementations must be safe for concurrent use.
type ConversionObserver interface {
	Observe(event ConversionEvent)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion Subject
// ─────────────────────────────────────────────────────────────────────────────

// ConversionSubject fans events out to registered observers.
type ConversionSubject struct {
	mu        sync.RWMutex
	observers []ConversionObserver
}

// NewConversionSubject creates a subject with no observers.
func NewConversionSubject() *ConversionSubject {
	return &ConversionSubject{}
}

// Register adds an observer. A nil observer is ignored.
func (s *ConversionSubject) Register(o ConversionObserver) {
	if o == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Unregister removes the first registration of o.
func (s *ConversionSubject) Unregister(o ConversionObserver) {
	if o == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// ObserverCount returns the number of registered observers.
func (s *ConversionSubject) ObserverCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// Notify delivers event to every observer in registration order.
func (s *ConversionSubject) Notify(event ConversionEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.observers {
		o.Observe(event)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Logging Observer
// ─────────────────────────────────────────────────────────────────────────────

// LoggingObserver logs conversions using zerolog: successes at debug level,
// failures at warn level with their error kind.
type LoggingObserver struct {
	logger zerolog.Logger
}

// NewLoggingObserver creates an observer that logs to logger.
func NewLoggingObserver(logger zerolog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// Observe implements ConversionObserver.
func (o *LoggingObserver) Observe(event ConversionEvent) {
	var e *zerolog.Event
	if event.Err != nil {
		e = o.logger.Warn().Err(event.Err).Str("kind", event.Outcome())
	} else {
		e = o.logger.Debug().Int("output_digits", event.OutputDigits)
	}
	e.Int("input_base", event.InputBase).
		Int("output_base", event.OutputBase).
		Int("input_digits", event.InputDigits).
		Dur("duration", event.Duration).
		Msg("conversion")
}

// ─────────────────────────────────────────────────────────────────────────────
// Metrics Observer (Prometheus)
// ─────────────────────────────────────────────────────────────────────────────

// conversionMetrics groups the collectors of one registry.
type conversionMetrics struct {
	total       *prometheus.CounterVec
	inputDigits prometheus.Histogram
	duration    prometheus.Histogram
}

func newConversionMetrics(factory promauto.Factory) conversionMetrics {
	return conversionMetrics{
		total: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "baseconv_conversions_total",
				Help: "Number of conversions by outcome (success or error kind)",
			},
			[]string{"outcome"},
		),
		inputDigits: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "baseconv_input_digits",
			Help:    "Length of converted inputs in digits",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "baseconv_conversion_duration_seconds",
			Help:    "Time spent in a conversion",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

var (
	defaultMetricsOnce sync.Once
	defaultMetrics     conversionMetrics
)

// MetricsObserver exports conversion counts, input sizes and durations to
// Prometheus.
type MetricsObserver struct {
	metrics conversionMetrics
}

// NewMetricsObserver creates an observer whose collectors are registered
// with reg. A nil reg uses the default registry; those collectors are
// registered once and shared by every such observer.
func NewMetricsObserver(reg prometheus.Registerer) *MetricsObserver {
	if reg == nil {
		defaultMetricsOnce.Do(func() {
			defaultMetrics = newConversionMetrics(promauto.With(prometheus.DefaultRegisterer))
		})
		return &MetricsObserver{metrics: defaultMetrics}
	}
	return &MetricsObserver{metrics: newConversionMetrics(promauto.With(reg))}
}

// Observe implements ConversionObserver.
func (o *MetricsObserver) Observe(event ConversionEvent) {
	o.metrics.total.WithLabelValues(event.Outcome()).Inc()
	o.metrics.inputDigits.Observe(float64(event.InputDigits))
	o.metrics.duration.Observe(event.Duration.Seconds())
}

// ─────────────────────────────────────────────────────────────────────────────
// No-Op Observer (Null Object Pattern)
// ─────────────────────────────────────────────────────────────────────────────

// NoOpObserver discards all events.
type NoOpObserver struct{}

// NewNoOpObserver creates a no-op observer.
func NewNoOpObserver() *NoOpObserver {
	return &NoOpObserver{}
}

// Observe implements ConversionObserver by doing nothing.
func (o *NoOpObserver) Observe(ConversionEvent) {}
