package delivery

import "github.com/zeromicro/go-zero/core/metric"

var (
	emailsSent = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "mailcraft",
		Subsystem: "delivery",
		Name:      "emails_sent_total",
		Help:      "Total test sends delivered",
		Labels:    []string{"template"},
	})

	emailsFailed = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "mailcraft",
		Subsystem: "delivery",
		Name:      "emails_failed_total",
		Help:      "Total test sends that failed for good",
		Labels:    []string{"template", "reason"},
	})

	emailsRetried = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "mailcraft",
		Subsystem: "delivery",
		Name:      "emails_retried_total",
		Help:      "Total test send retries",
		Labels:    []string{"template"},
	})

	deliveryDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "mailcraft",
		Subsystem: "delivery",
		Name:      "duration_seconds",
		Help:      "Test send duration in seconds",
		Labels:    []string{"template"},
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	})

	queueDepth = metric.NewGaugeVec(&metric.GaugeVecOpts{
		Namespace: "mailcraft",
		Subsystem: "queue",
		Name:      "depth",
		Help:      "Messages waiting in the queue",
		Labels:    []string{"queue"},
	})
)
