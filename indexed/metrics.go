package indexed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for monitoring instrumented maps.
// All metrics carry a "name" label so several maps can share one registry.

var (
	// operationsTotal counts map operations, broken down by operation kind.
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "indexedmap_operations_total",
		Help: "The total number of indexed map operations",
	}, []string{"name", "op"})

	// lookupsTotal counts key and index lookups by outcome.
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "indexedmap_lookups_total",
		Help: "The total number of indexed map lookups, by hit or miss",
	}, []string{"name", "result"})

	// mapSize tracks the current number of entries held by each map.
	mapSize = promauto.NewGaugeVec(prometheus.GaugeOpts{ //nolint:gochecknoglobals
		Name: "indexedmap_size",
		Help: "The current number of entries in the indexed map",
	}, []string{"name"})
)

const (
	opSet    = "set"
	opGet    = "get"
	opAt     = "at"
	opRemove = "remove"
	opClear  = "clear"

	resultHit  = "hit"
	resultMiss = "miss"
)
