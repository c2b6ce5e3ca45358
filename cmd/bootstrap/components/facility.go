package components

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"parking-facility/internal/domain/pricing"
	"parking-facility/internal/events"
	"parking-facility/internal/infra/display"
	"parking-facility/internal/infra/lot"
	"parking-facility/internal/infra/metrics"
	"parking-facility/internal/infra/stats"
	"parking-facility/internal/infra/subscriptions"
	"parking-facility/internal/pkg/config"
	"parking-facility/internal/usecase/commands"
	"parking-facility/internal/usecase/queries"
)

// FacilityModule wires the in-memory core: the event bus, the allocation
// engine, the subscription registry and the event listeners. The engine and
// registry are bound to the narrow ports each usecase side consumes.
var FacilityModule = fx.Module("facility",
	fx.Provide(
		events.NewBus,
		NewRateTable,
		NewCalculator,
		NewPrometheusRegistry,
		stats.NewAggregator,
		func(a *stats.Aggregator) queries.StatsReader { return a },
		metrics.NewCollector,
		display.NewSink,
		fx.Annotate(
			lot.NewEngine,
			fx.As(new(commands.AllocationEngine)),
			fx.As(new(queries.LotReader)),
		),
		fx.Annotate(
			subscriptions.NewRegistry,
			fx.As(new(commands.SubscriptionRegistry)),
			fx.As(new(queries.SubscriptionReader)),
			fx.As(new(queries.SubscriptionStore)),
		),
	),
	fx.Invoke(registerListeners),
)

func NewRateTable(cfg config.RatesConfig) pricing.RateTable {
	return pricing.RateTable{
		CarHourly:            cfg.CarHourly,
		CarAccessible:        cfg.CarAccessible,
		MotorcycleHourly:     cfg.MotorcycleHourly,
		MotorcycleAccessible: cfg.MotorcycleAccessible,
	}
}

func NewCalculator(cfg config.RatesConfig, rates pricing.RateTable) *pricing.Calculator {
	return pricing.NewCalculator(rates, cfg.FreeHours)
}

func NewPrometheusRegistry() (*prometheus.Registry, prometheus.Registerer) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry, registry
}

// Subscription order fixes delivery order: statistics first so reports never
// lag an already-displayed exit, then metrics, then the display.
func registerListeners(
	bus *events.Bus,
	aggregator *stats.Aggregator,
	collector *metrics.Collector,
	sink *display.Sink,
	logger *slog.Logger,
) {
	bus.Subscribe(aggregator)
	bus.Subscribe(collector)
	bus.Subscribe(sink)
	logger.Info("event listeners registered", "count", 3)
}
