// Package metrics exposes facility activity as Prometheus metrics.
// The collector is a plain event listener so the engine stays unaware
// of the metrics pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"parking-facility/internal/events"
)

type Collector struct {
	entries   *prometheus.CounterVec
	exits     *prometheus.CounterVec
	revenue   prometheus.Counter
	occupied  prometheus.Gauge
	available prometheus.Gauge
	total     prometheus.Gauge
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parking_entries_total",
			Help: "Total number of vehicles admitted, by vehicle class.",
		}, []string{"class"}),
		exits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parking_exits_total",
			Help: "Total number of vehicles that left, by vehicle class.",
		}, []string{"class"}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "parking_revenue_total",
			Help: "Total fees collected at exit.",
		}),
		occupied: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parking_spots_occupied",
			Help: "Number of spots currently occupied.",
		}),
		available: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parking_spots_available",
			Help: "Number of spots currently free.",
		}),
		total: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parking_spots_total",
			Help: "Total number of spots in the facility.",
		}),
	}
	reg.MustRegister(c.entries, c.exits, c.revenue, c.occupied, c.available, c.total)
	return c
}

func (c *Collector) HandleEvent(ev events.Event) {
	switch e := ev.(type) {
	case events.EntryEvent:
		c.entries.WithLabelValues(string(e.Class)).Inc()
	case events.ExitEvent:
		c.exits.WithLabelValues(string(e.Class)).Inc()
		c.revenue.Add(e.Payment)
	case events.OccupancyEvent:
		c.occupied.Set(float64(e.OccupiedSpots))
		c.available.Set(float64(e.AvailableSpots))
		c.total.Set(float64(e.TotalSpots))
	}
}
