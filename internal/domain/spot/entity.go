package spot

import (
	"errors"

	"parking-facility/internal/domain/vehicle"
)

// ErrAlreadyOccupied is an invariant violation, not a business outcome: with
// correct engine locking an occupied spot is never selected for allocation.
var ErrAlreadyOccupied = errors.New("spot is already occupied")

// Spot is one physical parking location. Id and accessibility class are fixed
// at facility initialization; only the engine mutates the occupant.
type Spot struct {
	id         int
	accessible bool
	occupant   *vehicle.Vehicle
}

func New(id int, accessible bool) *Spot {
	return &Spot{
		id:         id,
		accessible: accessible,
	}
}

func (s *Spot) ID() int { return s.id }
func (s *Spot) Accessible() bool { return s.accessible }

func (s *Spot) Occupied() bool {
	return s.occupant != nil
}

func (s *Spot) Occupant() *vehicle.Vehicle {
	return s.occupant
}

// CanAccept reports whether the allocation policy permits v on this spot.
// An occupied spot accepts nothing. Accessible spots are reserved for
// accessibility-flagged vehicles, while flagged vehicles may overflow onto
// standard spots.
func (s *Spot) CanAccept(v vehicle.Vehicle) bool {
	if s.occupant != nil {
		return false
	}
	if s.accessible && !v.Accessible() {
		return false
	}
	return true
}

func (s *Spot) Occupy(v vehicle.Vehicle) error {
	if s.occupant != nil {
		return ErrAlreadyOccupied
	}
	s.occupant = &v
	return nil
}

// Vacate clears the spot and returns the previous occupant, nil if the spot
// was already empty.
func (s *Spot) Vacate() *vehicle.Vehicle {
	v := s.occupant
	s.occupant = nil
	return v
}
