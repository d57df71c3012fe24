package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	mutex     sync.Mutex
	registry  *prometheus.Registry
	observers []Observer

	EncipherRequests  *prometheus.CounterVec
	EncipherErrors    *prometheus.CounterVec
	EncipherLetters   prometheus.Counter
	EncipherDropped   prometheus.Counter
	EncipherDurations prometheus.Histogram

	ProfileOperations     *prometheus.CounterVec
	ProfileRepositorySize prometheus.Gauge
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,

		EncipherRequests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "encipher_requests_total",
			Help: "The total number of successful encipher requests",
		}, []string{"source"}),
		EncipherErrors: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "encipher_errors_total",
			Help: "The total number of rejected encipher requests",
		}, []string{"reason"}),
		EncipherLetters: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "encipher_letters_total",
			Help: "The total number of letters passed through the machine",
		}),
		EncipherDropped: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "encipher_dropped_characters_total",
			Help: "The total number of input characters that have no key on the keyboard",
		}),
		EncipherDurations: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "encipher_duration_seconds",
			Help:    "Duration of encipher requests",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		ProfileOperations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "profile_operations_total",
			Help: "The total number of changes made to stored profiles",
		}, []string{"op"}),
		ProfileRepositorySize: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "profile_repository_size",
			Help: "The number of profiles stored in the repository",
		}),
	}
	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) AddObserver(observer Observer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.observers = append(c.observers, observer)
}

func (c *Collector) Observe(ctx context.Context) {
	c.mutex.Lock()
	observers := make([]Observer, len(c.observers))
	copy(observers, c.observers)
	c.mutex.Unlock()

	for _, observer := range observers {
		go observer.Observe(ctx, c)
	}
}
