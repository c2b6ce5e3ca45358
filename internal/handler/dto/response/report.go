package response

import (
	"time"

	"github.com/jinzhu/copier"

	"parking-facility/internal/usecase/queries"
)

type VehicleRowResponse struct {
	Class                string  `json:"class"`
	Entries              int     `json:"entries"`
	Revenue              float64 `json:"revenue"`
	AverageDurationHours float64 `json:"average_duration_hours"`
	AccessiblePercentage float64 `json:"accessible_percentage"`
}

type ReportResponse struct {
	Title                string               `json:"title"`
	Period               string               `json:"period"`
	GeneratedAt          time.Time            `json:"generated_at"`
	TotalEntries         int                  `json:"total_entries"`
	TotalRevenue         float64              `json:"total_revenue"`
	OccupancyPercentage  float64              `json:"occupancy_percentage"`
	AverageDurationHours float64              `json:"average_duration_hours"`
	Vehicles             []VehicleRowResponse `json:"vehicles"`
	Colors               map[string]int       `json:"colors"`
}

func FromReportView(v *queries.ReportView) (*ReportResponse, error) {
	var resp ReportResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	resp.Period = string(v.Period)
	return &resp, nil
}
