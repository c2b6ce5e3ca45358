// Package stats derives facility statistics from the event stream. The
// aggregator holds no authoritative state: replaying the same events rebuilds
// it exactly.
package stats

import (
	"sync"
	"time"

	"parking-facility/internal/domain/vehicle"
	"parking-facility/internal/events"
	"parking-facility/internal/pkg/clock"
)

// classTally is one vehicle class's running counters.
type classTally struct {
	dailyEntries map[time.Time]int
	dailyRevenue map[time.Time]float64
	durations    []float64
	total        int
	accessible   int
}

func newClassTally() *classTally {
	return &classTally{
		dailyEntries: make(map[time.Time]int),
		dailyRevenue: make(map[time.Time]float64),
	}
}

// Aggregator is an event-bus listener accumulating per-day counters with
// per-class breakdowns. Listener methods run inside the engine's critical
// section; the read-side (report queries) runs concurrently, so the
// aggregator has its own leaf lock and never calls back into the engine.
type Aggregator struct {
	mu  sync.Mutex
	clk clock.Clock

	dailyEntries map[time.Time]int
	dailyRevenue map[time.Time]float64
	durations    []float64
	byClass      map[vehicle.Class]*classTally

	entryTimes  map[string]time.Time
	colorCounts map[string]int

	totalSpots     int
	occupiedSpots  int
	availableSpots int
}

func NewAggregator(clk clock.Clock) *Aggregator {
	return &Aggregator{
		clk:          clk,
		dailyEntries: make(map[time.Time]int),
		dailyRevenue: make(map[time.Time]float64),
		byClass: map[vehicle.Class]*classTally{
			vehicle.ClassCar:        newClassTally(),
			vehicle.ClassMotorcycle: newClassTally(),
		},
		entryTimes:  make(map[string]time.Time),
		colorCounts: make(map[string]int),
	}
}

func (a *Aggregator) HandleEvent(e events.Event) {
	switch ev := e.(type) {
	case events.EntryEvent:
		a.recordEntry(ev)
	case events.ExitEvent:
		a.recordExit(ev)
	case events.OccupancyEvent:
		a.recordOccupancy(ev)
	}
}

func (a *Aggregator) recordEntry(ev events.EntryEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()

	today := clock.Today(a.clk)
	a.dailyEntries[today]++
	a.entryTimes[ev.Plate] = a.clk.Now()

	tally := a.tally(ev.Class)
	tally.dailyEntries[today]++
	tally.total++
	if ev.Accessible {
		tally.accessible++
	}

	if ev.Color != "" {
		a.colorCounts[ev.Color]++
	}
}

func (a *Aggregator) recordExit(ev events.ExitEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()

	today := clock.Today(a.clk)
	a.dailyRevenue[today] += ev.Payment
	a.durations = append(a.durations, ev.DurationHours)

	tally := a.tally(ev.Class)
	tally.dailyRevenue[today] += ev.Payment
	tally.durations = append(tally.durations, ev.DurationHours)

	delete(a.entryTimes, ev.Plate)
}

func (a *Aggregator) recordOccupancy(ev events.OccupancyEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.totalSpots = ev.TotalSpots
	a.occupiedSpots = ev.OccupiedSpots
	a.availableSpots = ev.AvailableSpots
}

func (a *Aggregator) tally(c vehicle.Class) *classTally {
	t, ok := a.byClass[c]
	if !ok {
		t = newClassTally()
		a.byClass[c] = t
	}
	return t
}

func (a *Aggregator) DailyEntries() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dailyEntries[clock.Today(a.clk)]
}

func (a *Aggregator) DailyRevenue() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dailyRevenue[clock.Today(a.clk)]
}

func (a *Aggregator) DailyClassEntries(c vehicle.Class) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tally(c).dailyEntries[clock.Today(a.clk)]
}

func (a *Aggregator) DailyClassRevenue(c vehicle.Class) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tally(c).dailyRevenue[clock.Today(a.clk)]
}

// Monthly aggregates are computed on demand by filtering the day-keyed maps
// for the current calendar month, not maintained incrementally.

func (a *Aggregator) MonthlyEntries() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return sumMonthInt(a.dailyEntries, a.clk.Now())
}

func (a *Aggregator) MonthlyRevenue() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return sumMonthFloat(a.dailyRevenue, a.clk.Now())
}

func (a *Aggregator) MonthlyClassEntries(c vehicle.Class) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return sumMonthInt(a.tally(c).dailyEntries, a.clk.Now())
}

func (a *Aggregator) MonthlyClassRevenue(c vehicle.Class) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return sumMonthFloat(a.tally(c).dailyRevenue, a.clk.Now())
}

func (a *Aggregator) AverageDuration() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return mean(a.durations)
}

func (a *Aggregator) AverageClassDuration(c vehicle.Class) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return mean(a.tally(c).durations)
}

// AccessiblePercentage is the share of accessibility-flagged vehicles among
// all recorded vehicles of the class.
func (a *Aggregator) AccessiblePercentage(c vehicle.Class) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	t := a.tally(c)
	if t.total == 0 {
		return 0
	}
	return float64(t.accessible) / float64(t.total) * 100
}

func (a *Aggregator) ColorCounts() map[string]int {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[string]int, len(a.colorCounts))
	for color, n := range a.colorCounts {
		out[color] = n
	}
	return out
}

func (a *Aggregator) Occupancy() (total, occupied, available int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.totalSpots, a.occupiedSpots, a.availableSpots
}

func sumMonthInt(daily map[time.Time]int, now time.Time) int {
	total := 0
	for day, n := range daily {
		if day.Year() == now.Year() && day.Month() == now.Month() {
			total += n
		}
	}
	return total
}

func sumMonthFloat(daily map[time.Time]float64, now time.Time) float64 {
	total := 0.0
	for day, v := range daily {
		if day.Year() == now.Year() && day.Month() == now.Month() {
			total += v
		}
	}
	return total
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
