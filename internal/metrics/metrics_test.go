package metrics_test

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigmasim/internal/metrics"
)

type countingObserver struct {
	wg    *sync.WaitGroup
	value float64
}

func (o *countingObserver) Observe(_ context.Context, m *metrics.Collector) {
	defer o.wg.Done()
	m.ProfileRepositorySize.Add(o.value)
}

func TestCollector_Observe(t *testing.T) {
	collector := metrics.New()

	wg := &sync.WaitGroup{}
	wg.Add(2)
	collector.AddObserver(&countingObserver{wg: wg, value: 2})
	collector.AddObserver(&countingObserver{wg: wg, value: 3})

	collector.Observe(context.TODO())
	wg.Wait()

	assert.Equal(t, float64(5), testutil.ToFloat64(collector.ProfileRepositorySize))
}

func TestCollector_Registry(t *testing.T) {
	collector := metrics.New()
	collector.EncipherRequests.WithLabelValues("api").Inc()
	collector.EncipherErrors.WithLabelValues("invalid_key").Add(2)
	collector.EncipherLetters.Add(35)

	families, err := collector.GetRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	for _, name := range []string{
		"encipher_requests_total",
		"encipher_errors_total",
		"encipher_letters_total",
		"go_goroutines",
	} {
		assert.True(t, names[name], name)
	}

	assert.Equal(t, float64(1), testutil.ToFloat64(collector.EncipherRequests.WithLabelValues("api")))
	assert.Equal(t, float64(2), testutil.ToFloat64(collector.EncipherErrors.WithLabelValues("invalid_key")))
	assert.Equal(t, float64(35), testutil.ToFloat64(collector.EncipherLetters))
}
