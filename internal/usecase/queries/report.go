package queries

import (
	"time"

	"parking-facility/internal/domain/vehicle"
)

type ReportPeriod string

const (
	PeriodDaily   ReportPeriod = "daily"
	PeriodMonthly ReportPeriod = "monthly"
)

type VehicleRow struct {
	Class                string  `json:"class"`
	Entries              int     `json:"entries"`
	Revenue              float64 `json:"revenue"`
	AverageDurationHours float64 `json:"average_duration_hours"`
	AccessiblePercentage float64 `json:"accessible_percentage"`
}

type ReportView struct {
	Title                string         `json:"title"`
	Period               ReportPeriod   `json:"period"`
	GeneratedAt          time.Time      `json:"generated_at"`
	TotalEntries         int            `json:"total_entries"`
	TotalRevenue         float64        `json:"total_revenue"`
	OccupancyPercentage  float64        `json:"occupancy_percentage"`
	AverageDurationHours float64        `json:"average_duration_hours"`
	Vehicles             []VehicleRow   `json:"vehicles"`
	Colors               map[string]int `json:"colors"`
}

// StatsReader is the read port onto the event-fed statistics aggregate.
type StatsReader interface {
	DailyEntries() int
	DailyRevenue() float64
	DailyClassEntries(c vehicle.Class) int
	DailyClassRevenue(c vehicle.Class) float64
	MonthlyEntries() int
	MonthlyRevenue() float64
	MonthlyClassEntries(c vehicle.Class) int
	MonthlyClassRevenue(c vehicle.Class) float64
	AverageDuration() float64
	AverageClassDuration(c vehicle.Class) float64
	AccessiblePercentage(c vehicle.Class) float64
	ColorCounts() map[string]int
}

type ReportQueries interface {
	Daily() *ReportView
	Monthly() *ReportView
}

type reportQueriesImpl struct {
	stats StatsReader
	lot   LotReader
}

func NewReportQueries(stats StatsReader, lot LotReader) ReportQueries {
	return &reportQueriesImpl{
		stats: stats,
		lot:   lot,
	}
}

var reportClasses = []vehicle.Class{vehicle.ClassCar, vehicle.ClassMotorcycle}

func (q *reportQueriesImpl) Daily() *ReportView {
	view := q.assemble("Daily Parking Report", PeriodDaily)
	view.TotalEntries = q.stats.DailyEntries()
	view.TotalRevenue = q.stats.DailyRevenue()
	for i, c := range reportClasses {
		view.Vehicles[i].Entries = q.stats.DailyClassEntries(c)
		view.Vehicles[i].Revenue = q.stats.DailyClassRevenue(c)
	}
	return view
}

func (q *reportQueriesImpl) Monthly() *ReportView {
	view := q.assemble("Monthly Parking Report", PeriodMonthly)
	view.TotalEntries = q.stats.MonthlyEntries()
	view.TotalRevenue = q.stats.MonthlyRevenue()
	for i, c := range reportClasses {
		view.Vehicles[i].Entries = q.stats.MonthlyClassEntries(c)
		view.Vehicles[i].Revenue = q.stats.MonthlyClassRevenue(c)
	}
	return view
}

// assemble fills the period-independent values; the callers overlay the
// period-scoped entry and revenue figures.
func (q *reportQueriesImpl) assemble(title string, period ReportPeriod) *ReportView {
	rows := make([]VehicleRow, len(reportClasses))
	for i, c := range reportClasses {
		rows[i] = VehicleRow{
			Class:                string(c),
			AverageDurationHours: q.stats.AverageClassDuration(c),
			AccessiblePercentage: q.stats.AccessiblePercentage(c),
		}
	}

	return &ReportView{
		Title:                title,
		Period:               period,
		GeneratedAt:          q.lot.Now(),
		OccupancyPercentage:  q.lot.OccupancyPercentage(),
		AverageDurationHours: q.stats.AverageDuration(),
		Vehicles:             rows,
		Colors:               q.stats.ColorCounts(),
	}
}
