package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	UsersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "userhub", Name: "users_created_total", Help: "Number of user records created."},
	)
	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "userhub", Name: "validation_failures_total", Help: "Number of rejected user records by field."},
		[]string{"field"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "userhub", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "userhub", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(UsersCreated)
	reg.MustRegister(ValidationFailures)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
