package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts served requests by method, route pattern and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vyaparkendra_http_requests_total",
		Help: "HTTP requests served, by method, route and status code.",
	}, []string{"method", "route", "status"})

	// RequestsCompleted counts successfully completed service requests.
	RequestsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vyaparkendra_service_requests_completed_total",
		Help: "Service requests that reached the completed state.",
	})

	// CommissionCredited accumulates commission amounts credited to mitras.
	CommissionCredited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vyaparkendra_commission_credited_total",
		Help: "Total mitra commission credited through the ledger.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
