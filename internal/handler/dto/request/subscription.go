package request

import (
	"parking-facility/internal/domain/subscription"
)

type CreateSubscriptionRequest struct {
	Plate      string `json:"plate" binding:"required"`
	Subscriber string `json:"subscriber" binding:"required"`
	Months     int    `json:"months" binding:"required,min=1"`
	Tier       string `json:"tier" binding:"required,oneof=standard premium vip"`
}

func (r CreateSubscriptionRequest) ToTier() (subscription.Tier, error) {
	return subscription.NewTier(r.Tier)
}
