// Package metrics собирает Prometheus-метрики бота: обработанные команды,
// ответы на инвайты и текущий размер реестра.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "arena"

// Результаты, которыми помечаются команды и ответы на инвайты.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// StatsSource отдаёт текущие размеры реестра для gauge-метрик.
type StatsSource interface {
	Counts() (open, full, pending int)
}

// Metrics владеет собственным реестром Prometheus. Nil-значение безопасно: методы ничего не делают.
type Metrics struct {
	registry        *prometheus.Registry
	commands        *prometheus.CounterVec
	inviteResponses *prometheus.CounterVec
}

// New создаёт реестр с runtime-коллекторами и метриками бота.
func New(stats StatsSource) (*Metrics, error) {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Total number of handled slash commands",
			},
			[]string{"command", "result"},
		),
		inviteResponses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invite_responses_total",
				Help:      "Total number of processed invite responses",
			},
			[]string{"result"},
		),
	}

	cs := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.commands,
		m.inviteResponses,
	}
	if stats != nil {
		cs = append(cs, registryGauges(stats)...)
	}
	for _, c := range cs {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func registryGauges(stats StatsSource) []prometheus.Collector {
	return []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "teams",
			Help:        "Number of registered teams by state",
			ConstLabels: prometheus.Labels{"state": "open"},
		}, func() float64 {
			open, _, _ := stats.Counts()
			return float64(open)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "teams",
			Help:        "Number of registered teams by state",
			ConstLabels: prometheus.Labels{"state": "full"},
		}, func() float64 {
			_, full, _ := stats.Counts()
			return float64(full)
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_invites",
			Help:      "Number of outstanding invites",
		}, func() float64 {
			_, _, pending := stats.Counts()
			return float64(pending)
		}),
	}
}

// ObserveCommand учитывает обработанную команду.
func (m *Metrics) ObserveCommand(command, result string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(command, result).Inc()
}

// ObserveInviteResponse учитывает ответ приглашённого игрока.
func (m *Metrics) ObserveInviteResponse(result string) {
	if m == nil {
		return
	}
	m.inviteResponses.WithLabelValues(result).Inc()
}

// Registry возвращает реестр Prometheus.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler отдаёт метрики в текстовом формате Prometheus.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
