package commands

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	reqdto "parking-facility/internal/handler/dto/request"
	"parking-facility/internal/infra/lot"
	"parking-facility/internal/pkg/errs"
)

var (
	ErrLotFull             = errs.New("lot full")
	ErrDuplicatePlate      = errs.New("plate already parked")
	ErrVehicleNotFound     = errs.New("vehicle not found")
	ErrInvalidSubscription = errs.New("invalid or expired subscription")
	ErrDomainValidation    = errs.New("domain validation error")
)

type ParkResult struct {
	SessionID      uuid.UUID
	Plate          string
	SpotID         int
	EntryTime      time.Time
	IsSubscription bool
}

type ExitResult struct {
	SessionID     uuid.UUID
	Plate         string
	SpotID        int
	EntryTime     time.Time
	ExitTime      time.Time
	DurationHours float64
	Fee           float64
}

type ParkingCommands interface {
	Park(req reqdto.EntryRequest) (*ParkResult, error)
	Exit(req reqdto.ExitRequest) (*ExitResult, error)
	Reset()
}

type parkingCommandsImpl struct {
	engine        AllocationEngine
	subscriptions SubscriptionRegistry
}

func NewParkingCommands(engine AllocationEngine, subscriptions SubscriptionRegistry) ParkingCommands {
	return &parkingCommandsImpl{
		engine:        engine,
		subscriptions: subscriptions,
	}
}

func (p *parkingCommandsImpl) Park(req reqdto.EntryRequest) (*ParkResult, error) {
	v, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	isSubscription := false
	if id := req.GetSubscriptionID(); id != "" {
		// Validity is checked once, at the gate. A subscription lapsing
		// mid-stay does not retroactively meter the session.
		if !p.subscriptions.IsValid(id) {
			return nil, ErrInvalidSubscription
		}
		sub, ok := p.subscriptions.Find(id)
		if !ok || sub.Plate() != v.Plate() {
			return nil, ErrInvalidSubscription
		}
		isSubscription = true
	}

	ses, err := p.engine.Park(v, isSubscription)
	if err != nil {
		switch {
		case errs.Is(err, lot.ErrLotFull):
			return nil, errs.Mark(err, ErrLotFull)
		case errs.Is(err, lot.ErrDuplicatePlate):
			return nil, errs.Mark(err, ErrDuplicatePlate)
		default:
			return nil, err
		}
	}

	return &ParkResult{
		SessionID:      ses.ID(),
		Plate:          ses.Vehicle().Plate(),
		SpotID:         ses.SpotID(),
		EntryTime:      ses.EntryTime(),
		IsSubscription: ses.IsSubscription(),
	}, nil
}

func (p *parkingCommandsImpl) Exit(req reqdto.ExitRequest) (*ExitResult, error) {
	ses, err := p.engine.Remove(req.Plate)
	if err != nil {
		if errs.Is(err, lot.ErrNoActiveSession) {
			return nil, errs.Mark(err, ErrVehicleNotFound)
		}
		return nil, err
	}

	exitTime := ses.EntryTime()
	if t := ses.ExitTime(); t != nil {
		exitTime = *t
	}

	return &ExitResult{
		SessionID:     ses.ID(),
		Plate:         ses.Vehicle().Plate(),
		SpotID:        ses.SpotID(),
		EntryTime:     ses.EntryTime(),
		ExitTime:      exitTime,
		DurationHours: ses.DurationHours(exitTime),
		Fee:           ses.AmountPaid(),
	}, nil
}

func (p *parkingCommandsImpl) Reset() {
	slog.Warn("facility reset requested")
	p.engine.Reset()
}
