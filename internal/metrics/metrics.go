// Package metrics holds the gateway's Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ClientCacheHits counts tenant cache lookups served from the snapshot.
	ClientCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wpmcp_client_cache_hits_total",
		Help: "Client list lookups served from the cache",
	})

	// ClientCacheRefreshes counts fetches against the clients table.
	ClientCacheRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wpmcp_client_cache_refreshes_total",
		Help: "Client list refreshes by outcome",
	}, []string{"outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wpmcp_upstream_request_duration_seconds",
		Help:    "Duration of upstream WordPress/WooCommerce calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "outcome"})
)

// ObserveUpstream records one upstream call.
func ObserveUpstream(method string, d time.Duration, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "error"
	}
	upstreamDuration.WithLabelValues(method, outcome).Observe(d.Seconds())
}
