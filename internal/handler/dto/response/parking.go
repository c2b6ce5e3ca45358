package response

import (
	"time"

	"github.com/google/uuid"

	"parking-facility/internal/usecase/commands"
	"parking-facility/internal/usecase/queries"
)

type EntryResponse struct {
	SessionID      uuid.UUID `json:"session_id"`
	Plate          string    `json:"plate"`
	SpotID         int       `json:"spot_id"`
	EntryTime      time.Time `json:"entry_time"`
	IsSubscription bool      `json:"is_subscription"`
}

type ExitResponse struct {
	SessionID     uuid.UUID `json:"session_id"`
	Plate         string    `json:"plate"`
	SpotID        int       `json:"spot_id"`
	EntryTime     time.Time `json:"entry_time"`
	ExitTime      time.Time `json:"exit_time"`
	DurationHours float64   `json:"duration_hours"`
	Fee           float64   `json:"fee"`
}

type StatusResponse struct {
	TotalSpots          int     `json:"total_spots"`
	OccupiedSpots       int     `json:"occupied_spots"`
	AvailableSpots      int     `json:"available_spots"`
	OccupancyPercentage float64 `json:"occupancy_percentage"`
}

type SessionResponse struct {
	ID             uuid.UUID  `json:"id"`
	Plate          string     `json:"plate"`
	Owner          string     `json:"owner"`
	Class          string     `json:"class"`
	Accessible     bool       `json:"accessible"`
	Color          string     `json:"color"`
	SpotID         int        `json:"spot_id"`
	EntryTime      time.Time  `json:"entry_time"`
	ExitTime       *time.Time `json:"exit_time,omitempty"`
	DurationHours  float64    `json:"duration_hours"`
	IsSubscription bool       `json:"is_subscription"`
	AmountPaid     float64    `json:"amount_paid"`
	CurrentFee     *float64   `json:"current_fee,omitempty"`
}

func FromParkResult(r *commands.ParkResult) *EntryResponse {
	return &EntryResponse{
		SessionID:      r.SessionID,
		Plate:          r.Plate,
		SpotID:         r.SpotID,
		EntryTime:      r.EntryTime,
		IsSubscription: r.IsSubscription,
	}
}

func FromExitResult(r *commands.ExitResult) *ExitResponse {
	return &ExitResponse{
		SessionID:     r.SessionID,
		Plate:         r.Plate,
		SpotID:        r.SpotID,
		EntryTime:     r.EntryTime,
		ExitTime:      r.ExitTime,
		DurationHours: r.DurationHours,
		Fee:           r.Fee,
	}
}

func FromStatusView(v queries.StatusView) StatusResponse {
	return StatusResponse{
		TotalSpots:          v.TotalSpots,
		OccupiedSpots:       v.OccupiedSpots,
		AvailableSpots:      v.AvailableSpots,
		OccupancyPercentage: v.OccupancyPercentage,
	}
}

func FromSessionViews(views []queries.SessionView) []SessionResponse {
	out := make([]SessionResponse, 0, len(views))
	for _, v := range views {
		out = append(out, SessionResponse{
			ID:             v.ID,
			Plate:          v.Plate,
			Owner:          v.Owner,
			Class:          v.Class,
			Accessible:     v.Accessible,
			Color:          v.Color,
			SpotID:         v.SpotID,
			EntryTime:      v.EntryTime,
			ExitTime:       v.ExitTime,
			DurationHours:  v.DurationHours,
			IsSubscription: v.IsSubscription,
			AmountPaid:     v.AmountPaid,
			CurrentFee:     v.CurrentFee,
		})
	}
	return out
}
