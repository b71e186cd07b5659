// Package metrics exposes Prometheus collectors for HTTP traffic and checkout outcomes.
package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"commerce/config"
	"commerce/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Recorder owns a private registry with every collector of the service.
type Recorder struct {
	registry *prometheus.Registry

	requestCounter   *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	cartItemsAdded   *prometheus.CounterVec
	ordersPlaced     *prometheus.CounterVec
	orderTotal       *prometheus.HistogramVec
	checkoutRejected *prometheus.CounterVec
	txRetries        *prometheus.CounterVec
}

var _ service.CommerceMetrics = (*Recorder)(nil)

// Params defines the dependencies of the recorder
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB `optional:"true"`
}

// New builds the recorder and registers runtime, process and connection pool collectors.
func New(params Params) (*Recorder, error) {
	namespace := "commerce"
	if params.Config.Metrics != nil && params.Config.Metrics.Namespace != "" {
		namespace = params.Config.Metrics.Namespace
	}

	r := NewRecorder(namespace)
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if params.DB != nil {
		sqlDB, err := params.DB.DB()
		if err != nil {
			params.Logger.Warn("Skipping connection pool metrics", slog.Any("error", err))
		} else {
			r.registry.MustRegister(collectors.NewDBStatsCollector(sqlDB, namespace))
		}
	}

	return r, nil
}

// NewRecorder creates the business and HTTP collectors under the given namespace.
func NewRecorder(namespace string) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		cartItemsAdded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cart_items_added_total",
				Help:      "Items added to carts, split by whether an existing line was merged",
			},
			[]string{"merged"},
		),
		ordersPlaced: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_placed_total",
				Help:      "Total number of committed orders",
			},
			[]string{"currency"},
		),
		orderTotal: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "order_total_amount",
				Help:      "Order grand totals in the order currency",
				Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
			},
			[]string{"currency"},
		),
		checkoutRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkout_rejected_total",
				Help:      "Checkouts rejected, by business error code",
			},
			[]string{"reason"},
		),
		txRetries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transaction_retries_total",
				Help:      "Transactions retried after a transient failure",
			},
			[]string{"operation"},
		),
	}

	r.registry.MustRegister(
		r.requestCounter,
		r.requestDuration,
		r.cartItemsAdded,
		r.ordersPlaced,
		r.orderTotal,
		r.checkoutRejected,
		r.txRetries,
	)

	return r
}

// CartItemAdded implements service.CommerceMetrics
func (r *Recorder) CartItemAdded(merged bool) {
	r.cartItemsAdded.WithLabelValues(strconv.FormatBool(merged)).Inc()
}

// OrderPlaced implements service.CommerceMetrics
func (r *Recorder) OrderPlaced(currency string, total decimal.Decimal) {
	r.ordersPlaced.WithLabelValues(currency).Inc()
	r.orderTotal.WithLabelValues(currency).Observe(total.InexactFloat64())
}

// CheckoutRejected implements service.CommerceMetrics
func (r *Recorder) CheckoutRejected(reason string) {
	r.checkoutRejected.WithLabelValues(reason).Inc()
}

// TransactionRetried implements service.CommerceMetrics
func (r *Recorder) TransactionRetried(operation string) {
	r.txRetries.WithLabelValues(operation).Inc()
}

// Middleware creates an Echo middleware function that records HTTP request metrics
func (r *Recorder) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Let the error handler write the response so the recorded status is final.
			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			method := c.Request().Method
			path := c.Path()
			statusStr := strconv.Itoa(status)

			r.requestCounter.WithLabelValues(method, path, statusStr).Inc()
			r.requestDuration.WithLabelValues(method, path, statusStr).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}

// Handler returns an HTTP handler exposing the recorder's registry
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func asCommerceMetrics(r *Recorder) service.CommerceMetrics {
	return r
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New, asCommerceMetrics),
)
