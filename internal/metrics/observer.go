package metrics

import (
	"context"
)

// Observer refreshes gauges that reflect stored state rather than events.
// Observers are run periodically by the observer component.
type Observer interface {
	Observe(ctx context.Context, metrics *Collector)
}
