package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric views. Every /api route group is its own view; the board is split
// out of community because it carries the chat traffic.
const (
	ViewBoard     = "board"
	ViewSocket    = "ws"
	ViewOps       = "ops"
	ViewUnmatched = "unmatched"
)

var (
	webRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osidou_web_requests_total",
			Help: "Browser requests by view, route template and status",
		},
		[]string{"view", "method", "route", "status"},
	)

	webRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "osidou_web_request_duration_seconds",
			Help:    "Browser request latency including the backend round trips",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"view", "method"},
	)

	// 502 is what respondError answers when the backend failed in a way the
	// browser cannot act on.
	backendFailuresServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osidou_web_backend_failures_total",
			Help: "Responses that reported a backend failure to the browser",
		},
		[]string{"view"},
	)

	inflightRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "osidou_web_inflight_requests",
			Help: "Requests currently being served, by view",
		},
		[]string{"view"},
	)

	dbConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Token store connections in use",
		},
	)
)

// Metrics records request counts and latency per view. Sockets are skipped;
// the chat package tracks them through its poller gauge.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" || c.IsWebsocket() {
			c.Next()
			return
		}

		route := c.FullPath()
		view := ViewOf(route)
		gauge := inflightRequests.WithLabelValues(view)
		start := time.Now()
		gauge.Inc()

		c.Next()

		gauge.Dec()
		status := c.Writer.Status()
		if route == "" {
			route = ViewUnmatched
		}

		webRequestsTotal.WithLabelValues(view, c.Request.Method, route, strconv.Itoa(status)).Inc()
		webRequestDuration.WithLabelValues(view, c.Request.Method).Observe(time.Since(start).Seconds())
		if status == http.StatusBadGateway {
			backendFailuresServed.WithLabelValues(view).Inc()
		}
	}
}

// SetDBConnectionsActive updates the token store connection gauge (call from main)
func SetDBConnectionsActive(count float64) {
	dbConnectionsActive.Set(count)
}

// ViewOf maps a gin route template onto its metric view,
// e.g. /api/community/:id/board/messages -> board.
func ViewOf(route string) string {
	switch {
	case route == "":
		return ViewUnmatched
	case strings.HasPrefix(route, "/ws/"):
		return ViewSocket
	case !strings.HasPrefix(route, "/api/"):
		return ViewOps
	}
	rest := strings.TrimPrefix(route, "/api/")
	group, _, _ := strings.Cut(rest, "/")
	if group == "community" && strings.Contains(rest, "/board") {
		return ViewBoard
	}
	return group
}
