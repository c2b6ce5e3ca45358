package vehicle

// Class is the closed set of vehicle kinds the facility admits. Rate lookup
// is keyed by (Class, accessibility flag) instead of per-type dispatch.
type Class string

const (
	ClassCar        Class = "car"
	ClassMotorcycle Class = "motorcycle"
)

func (c Class) String() string {
	return string(c)
}

func (c Class) IsValid() bool {
	switch c {
	case ClassCar, ClassMotorcycle:
		return true
	default:
		return false
	}
}
