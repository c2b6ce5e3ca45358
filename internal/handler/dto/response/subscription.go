package response

import (
	"time"

	"parking-facility/internal/usecase/commands"
	"parking-facility/internal/usecase/queries"
)

type SubscriptionResponse struct {
	ID         string    `json:"id"`
	Plate      string    `json:"plate"`
	Subscriber string    `json:"subscriber"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Tier       string    `json:"tier"`
	Active     bool      `json:"active"`
}

type ValidityResponse struct {
	ID    string `json:"id"`
	Valid bool   `json:"valid"`
}

type AnnualQuoteResponse struct {
	Class      string  `json:"class"`
	HourlyRate float64 `json:"hourly_rate"`
	AnnualFee  float64 `json:"annual_fee"`
}

func FromSubscriptionResult(r *commands.SubscriptionResult) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:         r.ID,
		Plate:      r.Plate,
		Subscriber: r.Subscriber,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Tier:       string(r.Tier),
		Active:     true,
	}
}

func FromSubscriptionView(v *queries.SubscriptionView) *SubscriptionResponse {
	return &SubscriptionResponse{
		ID:         v.ID,
		Plate:      v.Plate,
		Subscriber: v.Subscriber,
		StartDate:  v.StartDate,
		EndDate:    v.EndDate,
		Tier:       v.Tier,
		Active:     v.Active,
	}
}

func FromSubscriptionViews(views []queries.SubscriptionView) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(views))
	for i := range views {
		out = append(out, *FromSubscriptionView(&views[i]))
	}
	return out
}

func FromAnnualQuoteView(v *queries.AnnualQuoteView) *AnnualQuoteResponse {
	return &AnnualQuoteResponse{
		Class:      v.Class,
		HourlyRate: v.HourlyRate,
		AnnualFee:  v.AnnualFee,
	}
}
