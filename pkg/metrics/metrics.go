package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	IntentsHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_intents_handled_total",
			Help: "Number of webhook requests handled by intent and outcome",
		},
		[]string{"intent", "outcome"}, // outcome: ok|rejected|error
	)
	SessionsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sessions_in_progress",
			Help: "Number of sessions with an uncompleted order",
		},
	)
	OrdersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Number of orders persisted successfully",
		},
	)
	OrdersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_failed_total",
			Help: "Number of order completions rejected by the backend",
		},
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_cache_operations_total",
			Help: "Order status cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "status_cache_size",
			Help: "Number of statuses currently in cache",
		},
	)
)

func all() []prometheus.Collector {
	return []prometheus.Collector{
		IntentsHandled, SessionsInProgress, OrdersPlaced, OrdersFailed,
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		CacheOps, CacheSize,
	}
}

// MustRegister — регистрирует коллекторы в глобальном реестре.
// Повторный вызов не паникует: уже зарегистрированные коллекторы пропускаются.
func MustRegister() {
	for _, c := range all() {
		if err := prometheus.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			panic(err)
		}
	}
}
