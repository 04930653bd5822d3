package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "clubsite", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "clubsite", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	// StoreOps counts content store operations by collection, operation and outcome (ok|not_found|invalid|error).
	StoreOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "clubsite", Name: "content_store_ops_total", Help: "Content store operations by collection, op and outcome."},
		[]string{"collection", "op", "outcome"},
	)
	LoginFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "clubsite", Name: "login_failures_total", Help: "Number of failed admin sign-in attempts."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(StoreOps)
	reg.MustRegister(LoginFailures)
}
