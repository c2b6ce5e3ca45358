package vehicle

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyPlate       = errors.New("license plate cannot be empty")
	ErrEmptyOwner       = errors.New("owner name cannot be empty")
	ErrUnsupportedClass = errors.New("unsupported vehicle class")
)

// Vehicle is a flat value describing one vehicle inside the lot. The plate is
// its identity key; uniqueness among active sessions is the engine's job, not
// the vehicle's. The entry timestamp is stamped by the session that owns it.
type Vehicle struct {
	plate      string
	owner      string
	accessible bool
	color      string
	class      Class
	entryTime  *time.Time
}

func New(plate, owner string, class Class, accessible bool, color string) (Vehicle, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return Vehicle{}, ErrEmptyPlate
	}
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return Vehicle{}, ErrEmptyOwner
	}
	if !class.IsValid() {
		return Vehicle{}, ErrUnsupportedClass
	}

	return Vehicle{
		plate:      plate,
		owner:      owner,
		accessible: accessible,
		color:      strings.TrimSpace(color),
		class:      class,
	}, nil
}

func (v Vehicle) Plate() string { return v.plate }
func (v Vehicle) Owner() string { return v.owner }
func (v Vehicle) Accessible() bool { return v.accessible }
func (v Vehicle) Color() string { return v.color }
func (v Vehicle) Class() Class { return v.class }
func (v Vehicle) EntryTime() *time.Time { return v.entryTime }

// WithEntry returns a copy stamped with its lot entry time.
func (v Vehicle) WithEntry(t time.Time) Vehicle {
	c := v.Copy()
	c.entryTime = &t
	return c
}

// Copy is the explicit value-copy operation. Fields are flat, so a shallow
// copy plus a fresh entry-time pointer is a full copy.
func (v Vehicle) Copy() Vehicle {
	c := v
	if v.entryTime != nil {
		t := *v.entryTime
		c.entryTime = &t
	}
	return c
}
