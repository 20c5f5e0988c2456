package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metricAmount converts a chain amount for a float metric. Conversion goes
// through a big float so amounts beyond the int64 range lose precision
// instead of panicking.
func metricAmount(amount math.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}

// OrderbookMetrics holds all Prometheus metrics for the orderbook module
type OrderbookMetrics struct {
	OrdersSubmitted *prometheus.CounterVec
	OrdersCancelled *prometheus.CounterVec
	OrdersMatched   *prometheus.CounterVec
	MatchedVolume   *prometheus.CounterVec
	RewardsFlushed  *prometheus.CounterVec
	RestingOrders   *prometheus.GaugeVec
}

var (
	orderbookMetricsOnce sync.Once
	orderbookMetrics     *OrderbookMetrics
)

// NewOrderbookMetrics creates and registers orderbook metrics (singleton pattern)
func NewOrderbookMetrics() *OrderbookMetrics {
	orderbookMetricsOnce.Do(func() {
		orderbookMetrics = &OrderbookMetrics{
			OrdersSubmitted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "oraidex",
					Subsystem: "orderbook",
					Name:      "orders_submitted_total",
					Help:      "Total number of orders submitted",
				},
				[]string{"pair", "direction", "order_type"},
			),
			OrdersCancelled: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "oraidex",
					Subsystem: "orderbook",
					Name:      "orders_cancelled_total",
					Help:      "Total number of orders cancelled",
				},
				[]string{"pair", "direction"},
			),
			OrdersMatched: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "oraidex",
					Subsystem: "orderbook",
					Name:      "orders_matched_total",
					Help:      "Total number of orders settled by matching rounds",
				},
				[]string{"pair", "status"},
			),
			MatchedVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "oraidex",
					Subsystem: "orderbook",
					Name:      "matched_volume_total",
					Help:      "Total matched volume in base units",
				},
				[]string{"pair", "denom"},
			),
			RewardsFlushed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "oraidex",
					Subsystem: "orderbook",
					Name:      "rewards_flushed_total",
					Help:      "Total commission paid out to executors in base units",
				},
				[]string{"denom"},
			),
			RestingOrders: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "oraidex",
					Subsystem: "orderbook",
					Name:      "resting_orders",
					Help:      "Number of orders currently resting on the book",
				},
				[]string{"pair", "direction"},
			),
		}
	})
	return orderbookMetrics
}
