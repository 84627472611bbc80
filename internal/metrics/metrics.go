package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	ApplicationsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_applications_submitted_total",
			Help: "Total number of successfully submitted job applications.",
		},
	)
	ApplicationStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_application_status_changes_total",
			Help: "Total number of application status transitions.",
		},
		[]string{"status"},
	)
	EmailsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_emails_sent_total",
			Help: "Total number of notification emails handed to delivery.",
		},
		[]string{"kind", "outcome"},
	)
	ExpiredAdverts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_adverts_expired_total",
			Help: "Total number of adverts deactivated by the deadline sweep.",
		},
	)
	SweepDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobboard_sweep_duration_seconds",
			Help:    "Duration of each deadline sweep in seconds.",
			Buckets: []float64{0.01, 0.05, 0.25, 1, 5, 30},
		},
	)
)

func Handler() http.Handler {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(ApplicationsSubmitted)
	prometheus.MustRegister(ApplicationStatusChanges)
	prometheus.MustRegister(EmailsSent)
	prometheus.MustRegister(ExpiredAdverts)
	prometheus.MustRegister(SweepDuration)

	return promhttp.Handler()
}
