package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QuotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "quotes_total", Help: "Swap quotes fetched from the aggregator"},
		[]string{"network", "side"},
	)
	TradesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "trades_total", Help: "Swap transactions confirmed on chain"},
		[]string{"network", "side"},
	)
	FailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "failures_total", Help: "Pipeline failures by stage"},
		[]string{"network", "stage"},
	)
	RequestSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "request_seconds", Help: "End-to-end price/trade request latency"},
		[]string{"network", "op"},
	)
)

func init() {
	prometheus.MustRegister(QuotesTotal, TradesTotal, FailuresTotal, RequestSeconds)
}

func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{ Addr: addr, Handler: mux }
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
