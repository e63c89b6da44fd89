package webapi

import "github.com/prometheus/client_golang/prometheus"

var (
	signupsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mhsapid",
		Subsystem: "activities",
		Name:      "signups_total",
		Help:      "Number of successful signups, labeled by activity.",
	}, []string{"activity"})

	unregistersCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mhsapid",
		Subsystem: "activities",
		Name:      "unregisters_total",
		Help:      "Number of successful unregistrations, labeled by activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupsCounter, unregistersCounter)
}

func recordSignup(activityName string) {
	signupsCounter.WithLabelValues(activityName).Inc()
}

func recordUnregister(activityName string) {
	unregistersCounter.WithLabelValues(activityName).Inc()
}
