package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	inquiriesSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inquiries_submitted_total",
			Help: "Total number of inquiries submitted through the landing page",
		},
	)

	notificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of inquiry notifications attempted, by result",
		},
		[]string{"result"},
	)
)

// RecordRequest records a completed HTTP request.
func RecordRequest(method, path string, status int) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// RecordInquirySubmission records a successful inquiry creation.
func RecordInquirySubmission() {
	inquiriesSubmitted.Inc()
}

// RecordNotification records a notification attempt ("ok" or "error").
func RecordNotification(result string) {
	notificationsSent.WithLabelValues(result).Inc()
}

// Handler returns the Prometheus metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
