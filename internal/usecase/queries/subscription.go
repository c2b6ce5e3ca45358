package queries

import (
	"time"

	"parking-facility/internal/domain/pricing"
	"parking-facility/internal/domain/subscription"
	"parking-facility/internal/domain/vehicle"
	"parking-facility/internal/pkg/errs"
)

var (
	ErrSubscriptionNotFound = errs.New("subscription not found")
	ErrUnknownVehicleClass  = errs.New("unknown vehicle class")
)

type SubscriptionView struct {
	ID         string    `json:"id"`
	Plate      string    `json:"plate"`
	Subscriber string    `json:"subscriber"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Tier       string    `json:"tier"`
	Active     bool      `json:"active"`
}

type AnnualQuoteView struct {
	Class      string  `json:"class"`
	HourlyRate float64 `json:"hourly_rate"`
	AnnualFee  float64 `json:"annual_fee"`
}

type SubscriptionStore interface {
	Find(id string) (*subscription.Subscription, bool)
	History(plate string) []*subscription.Subscription
}

type SubscriptionQueries interface {
	Get(id string) (*SubscriptionView, error)
	HistoryByPlate(plate string) []SubscriptionView
	AnnualQuote(class string) (*AnnualQuoteView, error)
}

type subscriptionQueriesImpl struct {
	store SubscriptionStore
	rates pricing.RateTable
	calc  *pricing.Calculator
}

func NewSubscriptionQueries(store SubscriptionStore, rates pricing.RateTable, calc *pricing.Calculator) SubscriptionQueries {
	return &subscriptionQueriesImpl{
		store: store,
		rates: rates,
		calc:  calc,
	}
}

func (q *subscriptionQueriesImpl) Get(id string) (*SubscriptionView, error) {
	sub, ok := q.store.Find(id)
	if !ok {
		return nil, ErrSubscriptionNotFound
	}
	view := newSubscriptionView(sub)
	return &view, nil
}

func (q *subscriptionQueriesImpl) HistoryByPlate(plate string) []SubscriptionView {
	subs := q.store.History(plate)
	views := make([]SubscriptionView, 0, len(subs))
	for _, sub := range subs {
		views = append(views, newSubscriptionView(sub))
	}
	return views
}

func (q *subscriptionQueriesImpl) AnnualQuote(class string) (*AnnualQuoteView, error) {
	c := vehicle.Class(class)
	if !c.IsValid() {
		return nil, ErrUnknownVehicleClass
	}

	rate := q.rates.HourlyRate(c, false)
	return &AnnualQuoteView{
		Class:      string(c),
		HourlyRate: rate,
		AnnualFee:  q.calc.AnnualSubscriptionFee(rate),
	}, nil
}

func newSubscriptionView(sub *subscription.Subscription) SubscriptionView {
	return SubscriptionView{
		ID:         sub.ID(),
		Plate:      sub.Plate(),
		Subscriber: sub.Subscriber(),
		StartDate:  sub.StartDate(),
		EndDate:    sub.EndDate(),
		Tier:       string(sub.Tier()),
		Active:     sub.Active(),
	}
}
