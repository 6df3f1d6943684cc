// Package metrics exposes Prometheus collectors for the scrape and delivery
// pipeline, served on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	FetchesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "goldprice",
		Subsystem: "scraper",
		Name:      "fetches_total",
		Help:      "The total number of attempted fetches of the source page",
	})
	FetchFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "goldprice",
		Subsystem: "scraper",
		Name:      "fetch_failures_total",
		Help:      "The total number of failed fetches of the source page",
	})
	RecordsParsed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "goldprice",
		Subsystem: "scraper",
		Name:      "records_parsed_total",
		Help:      "The total number of price records extracted from the source",
	})
	AlertsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "goldprice",
		Subsystem: "telegram_bot",
		Name:      "alerts_sent_total",
		Help:      "The total number of price alerts delivered to Telegram",
	})
	DeliveryFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "goldprice",
		Subsystem: "telegram_bot",
		Name:      "delivery_failures_total",
		Help:      "The total number of failed Telegram deliveries",
	})
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "goldprice",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "The total number of HTTP requests handled, by path and status",
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(FetchesTotal)
	prometheus.MustRegister(FetchFailures)
	prometheus.MustRegister(RecordsParsed)
	prometheus.MustRegister(AlertsSent)
	prometheus.MustRegister(DeliveryFailures)
	prometheus.MustRegister(HTTPRequests)
}
