package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "barber_agenda"

// Metrics набор prometheus-коллекторов сервиса.
// Все методы безопасно вызывать на nil-получателе: метрики выключены.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections *prometheus.GaugeVec
	DBIdleConnections *prometheus.GaugeVec

	AgendaBuildsTotal   *prometheus.CounterVec
	AgendaBuildDuration *prometheus.HistogramVec
	SlotVerdictsTotal   *prometheus.CounterVec

	CacheRequestsTotal *prometheus.CounterVec
	AppointmentsTotal  *prometheus.CounterVec
}

// New создает метрики и регистрирует их в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by operation.",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "db_query_errors_total",
			Help:        "Database query errors by operation.",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_open_connections",
			Help:        "Open connections in the pool.",
			ConstLabels: constLabels,
		}, []string{}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool.",
			ConstLabels: constLabels,
		}, []string{}),

		AgendaBuildsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "agenda_builds_total",
			Help:        "Day agenda rebuilds by appointment source.",
			ConstLabels: constLabels,
		}, []string{"source"}),

		AgendaBuildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "agenda_build_duration_seconds",
			Help:        "Time spent computing a day agenda.",
			ConstLabels: constLabels,
			Buckets:     []float64{.0001, .0005, .001, .005, .01, .05},
		}, []string{}),

		SlotVerdictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "slot_verdicts_total",
			Help:        "Slot verdicts produced by the availability resolver.",
			ConstLabels: constLabels,
		}, []string{"verdict"}),

		CacheRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "cache_requests_total",
			Help:        "Appointment snapshot cache lookups by result.",
			ConstLabels: constLabels,
		}, []string{"result"}),

		AppointmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "appointments_total",
			Help:        "Appointment mutations by action and outcome.",
			ConstLabels: constLabels,
		}, []string{"action", "outcome"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBIdleConnections,
		m.AgendaBuildsTotal,
		m.AgendaBuildDuration,
		m.SlotVerdictsTotal,
		m.CacheRequestsTotal,
		m.AppointmentsTotal,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBConnections обновляет состояние пула соединений
func (m *Metrics) SetDBConnections(open, idle int) {
	if m == nil {
		return
	}
	m.DBOpenConnections.WithLabelValues().Set(float64(open))
	m.DBIdleConnections.WithLabelValues().Set(float64(idle))
}

// ObserveAgendaBuild фиксирует пересчет дня. source: cache или db
func (m *Metrics) ObserveAgendaBuild(source string, duration time.Duration) {
	if m == nil {
		return
	}
	m.AgendaBuildsTotal.WithLabelValues(source).Inc()
	m.AgendaBuildDuration.WithLabelValues().Observe(duration.Seconds())
}

// IncVerdict увеличивает счетчик вердиктов
func (m *Metrics) IncVerdict(verdict string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SlotVerdictsTotal.WithLabelValues(verdict).Add(float64(n))
}

// IncCache фиксирует обращение к кэшу. result: hit, miss, error
func (m *Metrics) IncCache(result string) {
	if m == nil {
		return
	}
	m.CacheRequestsTotal.WithLabelValues(result).Inc()
}

// IncAppointment фиксирует создание или отмену записи
func (m *Metrics) IncAppointment(action, outcome string) {
	if m == nil {
		return
	}
	m.AppointmentsTotal.WithLabelValues(action, outcome).Inc()
}
