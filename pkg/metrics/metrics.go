// Package metrics holds the Prometheus collectors shared across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets are latency histogram buckets in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

var (
	// DepositsProcessed counts deposits leaving the PENDING state, by final status.
	DepositsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "casino",
		Name:      "deposits_processed_total",
		Help:      "Deposits moved out of the pending state.",
	}, []string{"status"})

	// PayoutsDistributed counts payout rows written, by upline level.
	PayoutsDistributed = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "casino",
		Name:      "payouts_distributed_total",
		Help:      "Referral commission payouts written.",
	}, []string{"level"})

	// PayoutAmount sums the minor units paid out as referral commission.
	PayoutAmount = promauto.NewCounter(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "casino",
		Name:      "payout_amount_total",
		Help:      "Minor units paid out as referral commission.",
	})

	// OriginRejections counts requests refused by the origin gate.
	OriginRejections = promauto.NewCounter(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "casino",
		Name:      "origin_rejections_total",
		Help:      "Requests rejected because their Origin is not allowed.",
	})
)
