package finance

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CacheLookupsTotal counts GetMonth decisions.
// Label:
//   - result: "hit" (served from cache), "miss" (old month fetched because the
//     cache was empty) or "revalidate" (recent month, always fetched)
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "siasisten",
		Name:      "finance_cache_total",
		Help:      "Total number of finance cache lookups, by result.",
	},
	[]string{"result"},
)
