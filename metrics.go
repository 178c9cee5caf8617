package pointset

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// kdtreePutTotal counts Put calls by result (inserted or duplicate)
	kdtreePutTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pointset_kdtree_put_total",
		Help: "Total kd-tree puts by result",
	}, []string{"result"})

	// kdtreeRebuildTotal counts whole-tree rebuilds triggered by imbalance
	kdtreeRebuildTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pointset_kdtree_rebuild_total",
		Help: "Total kd-tree rebuilds",
	})

	// kdtreeRebuildDuration tracks rebuild latency
	kdtreeRebuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pointset_kdtree_rebuild_duration_seconds",
		Help:    "kd-tree rebuild duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
	})
)

const (
	putResultInserted  = "inserted"
	putResultDuplicate = "duplicate"
)
