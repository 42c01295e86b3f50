package metrics

import "github.com/prometheus/client_golang/prometheus"

// ClinicMetrics exposes counters for booking and messaging flows.
type ClinicMetrics struct {
	bookingsTotal  *prometheus.CounterVec
	conflictsTotal *prometheus.CounterVec
	messagesTotal  *prometheus.CounterVec
	revenueTotal   prometheus.Counter
}

func NewClinicMetrics(reg prometheus.Registerer) *ClinicMetrics {
	m := &ClinicMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kezya",
			Subsystem: "schedule",
			Name:      "appointments_created_total",
			Help:      "Appointments created, by source and session type",
		}, []string{"source", "type"}),
		conflictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kezya",
			Subsystem: "schedule",
			Name:      "conflicts_total",
			Help:      "Appointments rejected because the slot was taken",
		}, []string{"source"}),
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kezya",
			Subsystem: "messages",
			Name:      "composed_total",
			Help:      "Messages composed, by kind and outcome",
		}, []string{"kind", "outcome"}),
		revenueTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "kezya",
			Subsystem: "finance",
			Name:      "recognized_revenue_total",
			Help:      "Revenue recognized when sessions start (BRL)",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.conflictsTotal, m.messagesTotal, m.revenueTotal)
	return m
}

func (m *ClinicMetrics) ObserveBooking(source, sessionType string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(source, sessionType).Inc()
}

func (m *ClinicMetrics) ObserveConflict(source string) {
	if m == nil {
		return
	}
	m.conflictsTotal.WithLabelValues(source).Inc()
}

// ObserveMessage registra outcome "generated", "fallback" ou "template".
func (m *ClinicMetrics) ObserveMessage(kind, outcome string) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(kind, outcome).Inc()
}

func (m *ClinicMetrics) ObserveRevenue(amount float64) {
	if m == nil || amount <= 0 {
		return
	}
	m.revenueTotal.Add(amount)
}
