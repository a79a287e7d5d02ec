// Package status is the metrics facade shared by the frame loop and the HUD.
package status

import (
	"fmt"
	"sync/atomic"
)

// Registry groups integer and float metrics
// The frame loop writes cached pointers; readers load atomically from any goroutine
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Snapshot returns every metric formatted as key=value, ints first, keys sorted
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out = append(out, fmt.Sprintf("%s=%.1f", key, v.Get()))
	})
	return out
}
