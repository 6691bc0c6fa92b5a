package retry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector receives executor lifecycle events, typically for metrics
// export. Unlike the before-retry hook it is configured once per
// executor and its failures cannot affect control flow.
type Collector interface {
	// OnAttempt is called before every operation invocation with the
	// 1-based attempt number
	OnAttempt(attempt int)
	// OnSuccess is called when a call returns a result
	OnSuccess(attempts int, elapsed time.Duration)
	// OnExhausted is called when the policy abandons after fails failures
	OnExhausted(fails int)
	// OnAborted is called when a policy or hook malfunction terminates
	// the call
	OnAborted()
}

// PromCollector exports retry outcomes as Prometheus metrics
type PromCollector struct {
	attempts  prometheus.Counter
	successes prometheus.Counter
	exhausted prometheus.Counter
	aborted   prometheus.Counter
	duration  prometheus.Histogram
}

// NewPromCollector registers retry metrics with reg, labeled with the
// given operation name, and returns a collector feeding them
func NewPromCollector(reg prometheus.Registerer, operation string) *PromCollector {
	labels := prometheus.Labels{"operation": operation}
	factory := promauto.With(reg)

	return &PromCollector{
		attempts: factory.NewCounter(prometheus.CounterOpts{
			Name:        "retry_attempts_total",
			Help:        "Total number of operation attempts",
			ConstLabels: labels,
		}),
		successes: factory.NewCounter(prometheus.CounterOpts{
			Name:        "retry_successes_total",
			Help:        "Total number of calls that returned a result",
			ConstLabels: labels,
		}),
		exhausted: factory.NewCounter(prometheus.CounterOpts{
			Name:        "retry_exhausted_total",
			Help:        "Total number of calls abandoned by the retry policy",
			ConstLabels: labels,
		}),
		aborted: factory.NewCounter(prometheus.CounterOpts{
			Name:        "retry_aborted_total",
			Help:        "Total number of calls terminated by a policy or hook malfunction",
			ConstLabels: labels,
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "retry_call_duration_seconds",
			Help:        "Duration of successful calls including retry delays",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}),
	}
}

// OnAttempt implements Collector
func (c *PromCollector) OnAttempt(attempt int) {
	c.attempts.Inc()
}

// OnSuccess implements Collector
func (c *PromCollector) OnSuccess(attempts int, elapsed time.Duration) {
	c.successes.Inc()
	c.duration.Observe(elapsed.Seconds())
}

// OnExhausted implements Collector
func (c *PromCollector) OnExhausted(fails int) {
	c.exhausted.Inc()
}

// OnAborted implements Collector
func (c *PromCollector) OnAborted() {
	c.aborted.Inc()
}
