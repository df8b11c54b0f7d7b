package siasisten

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "siasisten"

// PortalRequestsTotal counts calls made to the portal.
// Labels:
//   - op: gateway operation (login_page, login_submit, list_vacancies, ...)
//   - outcome: "ok", "status" (unexpected HTTP status), "expired" (sent to
//     the login page) or "transport"
var PortalRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "portal_requests_total",
		Help:      "Total number of requests sent to the SIASISTEN portal.",
	},
	[]string{"op", "outcome"},
)

var PortalRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "portal_request_duration_seconds",
		Help:      "Round trip time of SIASISTEN portal requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)
