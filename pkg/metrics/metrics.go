// Package metrics provides optional Prometheus instrumentation for the
// rendering engine: cache and pool effectiveness counters plus render and
// parse timing. Collection is off until Enable is called; the Record and
// Observe helpers are cheap no-ops while disabled, so library code calls
// them unconditionally.
package metrics

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache tier labels.
const (
	TierLocal  = "local"
	TierShared = "shared"
)

// Config configures metric registration.
type Config struct {
	// Namespace is the metrics namespace (default: "tagforge").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render/parse duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures metric registration.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "tagforge",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// collectors holds the registered metric instances.
type collectors struct {
	cacheLookups  *prometheus.CounterVec
	poolGets      *prometheus.CounterVec
	renderSeconds prometheus.Histogram
	renderBytes   prometheus.Histogram
	parseSeconds  prometheus.Histogram
	parseErrors   prometheus.Counter
}

var (
	global     *collectors
	globalOnce sync.Once
	enabled    atomic.Bool
)

// Enable registers the tagforge metrics and turns collection on. The first
// call wins; later calls are no-ops. Typical use:
//
//	metrics.Enable(metrics.WithNamespace("myapp"))
//	http.Handle("/metrics", promhttp.Handler())
func Enable(opts ...Option) {
	globalOnce.Do(func() {
		config := defaultConfig()
		for _, opt := range opts {
			opt(&config)
		}
		global = register(config)
		enabled.Store(true)
	})
}

// Enabled reports whether collection is on. Callers use it to skip timing
// work on the hot path when metrics are off.
func Enabled() bool {
	return enabled.Load()
}

func register(config Config) *collectors {
	factory := promauto.With(config.Registry)

	return &collectors{
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "attr_cache_lookups_total",
			Help:        "Attribute cache lookups by tier and outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"tier", "outcome"}),

		poolGets: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "buffer_pool_gets_total",
			Help:        "Render buffer pool checkouts by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		renderSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render call duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		renderBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_output_bytes",
			Help:        "Rendered output size in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{256, 1024, 4096, 16384, 65536, 262144, 1048576},
		}),

		parseSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "parse_duration_seconds",
			Help:        "Parse call duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		parseErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "parse_errors_total",
			Help:        "Total parse calls failed with malformed markup",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// RecordCacheLookup records an attribute cache lookup for a tier.
func RecordCacheLookup(tier string, hit bool) {
	if !enabled.Load() {
		return
	}
	global.cacheLookups.WithLabelValues(tier, outcome(hit)).Inc()
}

// RecordPoolGet records a render buffer pool checkout.
func RecordPoolGet(hit bool) {
	if !enabled.Load() {
		return
	}
	global.poolGets.WithLabelValues(outcome(hit)).Inc()
}

// ObserveRender records a completed render call.
func ObserveRender(seconds float64, bytes int) {
	if !enabled.Load() {
		return
	}
	global.renderSeconds.Observe(seconds)
	global.renderBytes.Observe(float64(bytes))
}

// ObserveParse records a completed parse call.
func ObserveParse(seconds float64) {
	if !enabled.Load() {
		return
	}
	global.parseSeconds.Observe(seconds)
}

// RecordParseError records a parse call that failed.
func RecordParseError() {
	if !enabled.Load() {
		return
	}
	global.parseErrors.Inc()
}

func outcome(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
