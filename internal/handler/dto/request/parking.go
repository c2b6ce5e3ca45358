package request

import (
	"strings"

	"parking-facility/internal/domain/vehicle"
)

type EntryRequest struct {
	Plate          string  `json:"plate" binding:"required"`
	Owner          string  `json:"owner" binding:"required"`
	Class          string  `json:"class" binding:"required,oneof=car motorcycle"`
	Accessible     bool    `json:"accessible"`
	Color          string  `json:"color"`
	SubscriptionID *string `json:"subscription_id,omitempty"`
}

func (r EntryRequest) GetSubscriptionID() string {
	if r.SubscriptionID == nil {
		return ""
	}
	return strings.TrimSpace(*r.SubscriptionID)
}

func (r EntryRequest) ToDomain() (vehicle.Vehicle, error) {
	return vehicle.New(
		strings.TrimSpace(r.Plate),
		strings.TrimSpace(r.Owner),
		vehicle.Class(r.Class),
		r.Accessible,
		strings.TrimSpace(r.Color),
	)
}

type ExitRequest struct {
	Plate string `json:"plate" binding:"required"`
}
