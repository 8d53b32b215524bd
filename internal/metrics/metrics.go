// Package metrics holds the Prometheus collectors for ledger activity.
//
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "splitledger"

// Metrics groups the ledger collectors.
type Metrics struct {
	expensesAdded    prometheus.Counter
	expensesRejected *prometheus.CounterVec
	mutations        *prometheus.CounterVec
	dailyCount       prometheus.Gauge
}

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		expensesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expenses_added_total",
			Help:      "Expenses accepted into the ledger.",
		}),
		expensesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expenses_rejected_total",
			Help:      "Expenses refused, by reason.",
		}, []string{"reason"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Ledger mutations, by entity and operation.",
		}, []string{"entity", "op"}),
		dailyCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "daily_expense_count",
			Help:      "Expenses added on the current quota day.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.expensesAdded, m.expensesRejected, m.mutations, m.dailyCount)
	}
	return m
}

// Rejection reasons.
const (
	ReasonQuota      = "quota"
	ReasonValidation = "validation"
)

// ExpenseAdded counts an accepted expense and publishes the day's counter.
func (m *Metrics) ExpenseAdded(dailyCount int) {
	if m == nil {
		return
	}
	m.expensesAdded.Inc()
	m.dailyCount.Set(float64(dailyCount))
}

// ExpenseRejected counts a refused expense.
func (m *Metrics) ExpenseRejected(reason string) {
	if m == nil {
		return
	}
	m.expensesRejected.WithLabelValues(reason).Inc()
}

// Mutation counts a change to an entity, e.g. ("group", "delete").
func (m *Metrics) Mutation(entity, op string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(entity, op).Inc()
}

// DailyCount publishes the current quota counter.
func (m *Metrics) DailyCount(n int) {
	if m == nil {
		return
	}
	m.dailyCount.Set(float64(n))
}
