// Package metrics expone contadores del inventario y de HTTP en formato Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/domain/entity"
)

var _ inventory.Metrics = (*Recorder)(nil)

// Recorder implementa inventory.Metrics sobre un registry propio (no el global).
type Recorder struct {
	registry *prometheus.Registry

	movements     *prometheus.CounterVec
	units         *prometheus.CounterVec
	value         *prometheus.CounterVec
	rejected      *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

// New registra los colectores bajo el namespace indicado.
func New(namespace string) *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Recorder{
		registry: reg,
		movements: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "movements_total",
			Help: "Movimientos de stock confirmados por tipo.",
		}, []string{"kind"}),
		units: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "movement_units_total",
			Help: "Unidades movidas por tipo.",
		}, []string{"kind"}),
		value: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "movement_value_total",
			Help: "Valor total de los movimientos (costo en entradas, precio en salidas).",
		}, []string{"kind"}),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "movements_rejected_total",
			Help: "Movimientos rechazados por motivo.",
		}, []string{"reason"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total",
			Help: "Requests HTTP por ruta, método y status.",
		}, []string{"method", "route", "status"}),
		httpDurations: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "Latencia de requests HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// MovementRecorded contabiliza un movimiento confirmado.
func (r *Recorder) MovementRecorded(kind entity.MovementKind, quantity int, totalValue decimal.Decimal) {
	r.movements.WithLabelValues(string(kind)).Inc()
	r.units.WithLabelValues(string(kind)).Add(float64(quantity))
	r.value.WithLabelValues(string(kind)).Add(totalValue.InexactFloat64())
}

// MovementRejected contabiliza un rechazo (validation, not_found, insufficient_stock, storage).
func (r *Recorder) MovementRejected(reason string) {
	r.rejected.WithLabelValues(reason).Inc()
}

// ObserveHTTP registra un request terminado.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDurations.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler http.Handler de /metrics para este registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry acceso para tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }
