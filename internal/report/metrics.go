package report

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"building-navigation-system/internal/building"
)

// MetricsReporter zlicza zdarzenia budynków w metrykach Prometheus
type MetricsReporter struct {
	EventsTotal *prometheus.CounterVec
	Occupied    *prometheus.GaugeVec
	CoffeeStock *prometheus.GaugeVec
}

// NewMetricsReporter tworzy i rejestruje metryki w podanym rejestrze
func NewMetricsReporter(reg prometheus.Registerer) (*MetricsReporter, error) {
	m := &MetricsReporter{
		EventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "campus",
				Subsystem: "building",
				Name:      "events_total",
				Help:      "Total number of building events by kind",
			},
			[]string{"building", "kind"},
		),
		Occupied: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "campus",
				Subsystem: "building",
				Name:      "occupied",
				Help:      "Whether someone is inside the building (0=outside, 1=inside)",
			},
			[]string{"building"},
		),
		CoffeeStock: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "campus",
				Subsystem: "cafe",
				Name:      "stock",
				Help:      "Current cafe stock by resource",
			},
			[]string{"building", "resource"},
		),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.EventsTotal, m.Occupied, m.CoffeeStock} {
			if err := reg.Register(c); err != nil {
				return nil, fmt.Errorf("błąd rejestracji metryk: %w", err)
			}
		}
	}

	return m, nil
}

// Report aktualizuje metryki na podstawie zdarzenia
func (m *MetricsReporter) Report(e building.Event) {
	m.EventsTotal.WithLabelValues(e.Building, string(e.Kind)).Inc()

	switch e.Kind {
	case building.EventEntered:
		m.Occupied.WithLabelValues(e.Building).Set(1)
	case building.EventLeft:
		m.Occupied.WithLabelValues(e.Building).Set(0)
	}

	if e.Stock != nil {
		m.CoffeeStock.WithLabelValues(e.Building, "coffee_ounces").Set(float64(e.Stock.CoffeeOunces))
		m.CoffeeStock.WithLabelValues(e.Building, "sugar_packets").Set(float64(e.Stock.SugarPackets))
		m.CoffeeStock.WithLabelValues(e.Building, "creams").Set(float64(e.Stock.Creams))
		m.CoffeeStock.WithLabelValues(e.Building, "cups").Set(float64(e.Stock.Cups))
	}
}
