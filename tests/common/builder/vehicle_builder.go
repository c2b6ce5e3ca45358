//go:build unit || e2e

package builder

import (
	"parking-facility/internal/domain/vehicle"
	reqdto "parking-facility/internal/handler/dto/request"
)

type VehicleBuilder struct {
	Plate      string
	Owner      string
	Class      string
	Accessible bool
	Color      string
}

func NewVehicleBuilder() *VehicleBuilder {
	return &VehicleBuilder{
		Plate:      "AB-123-CD",
		Owner:      "Alice Carter",
		Class:      "car",
		Accessible: false,
		Color:      "blue",
	}
}

func (b *VehicleBuilder) With(mutate func(*VehicleBuilder)) *VehicleBuilder {
	mutate(b)
	return b
}

func (b *VehicleBuilder) BuildDomain() (vehicle.Vehicle, error) {
	return vehicle.New(b.Plate, b.Owner, vehicle.Class(b.Class), b.Accessible, b.Color)
}

func (b *VehicleBuilder) BuildEntryDTO() reqdto.EntryRequest {
	return reqdto.EntryRequest{
		Plate:      b.Plate,
		Owner:      b.Owner,
		Class:      b.Class,
		Accessible: b.Accessible,
		Color:      b.Color,
	}
}
