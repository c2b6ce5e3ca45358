// Package display renders facility activity to the operator log.
package display

import (
	"fmt"
	"log/slog"

	"parking-facility/internal/events"
)

// Sink writes a human readable line for every event it receives.
// It stands in for the gate display panel.
type Sink struct {
	logger *slog.Logger
}

func NewSink(logger *slog.Logger) *Sink {
	return &Sink{logger: logger.With("component", "display")}
}

func (s *Sink) HandleEvent(ev events.Event) {
	switch e := ev.(type) {
	case events.EntryEvent:
		s.logger.Info("vehicle admitted",
			"plate", e.Plate,
			"spot", e.SpotID,
			"class", string(e.Class),
		)
	case events.ExitEvent:
		s.logger.Info("vehicle departed",
			"plate", e.Plate,
			"spot", e.SpotID,
			"duration", fmt.Sprintf("%.2fh", e.DurationHours),
			"paid", fmt.Sprintf("%.2f", e.Payment),
		)
	case events.OccupancyEvent:
		s.logger.Info("occupancy changed",
			"occupied", e.OccupiedSpots,
			"available", e.AvailableSpots,
		)
	}
}
