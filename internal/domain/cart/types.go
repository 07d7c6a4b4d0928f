package cart

import (
	"errors"
	"strings"
)

var (
	ErrUnknownServiceType = errors.New("unknown service type")
	ErrInvalidQuantity    = errors.New("quantity must be between 1 and 10")
)

// ServiceType is the closed set of bookable services.
type ServiceType string

const (
	ServiceHotel   ServiceType = "hotel"
	ServiceFlight  ServiceType = "flight"
	ServiceCar     ServiceType = "car"
	ServicePackage ServiceType = "package"
)

var AllServiceTypes = []ServiceType{ServiceHotel, ServiceFlight, ServiceCar, ServicePackage}

func (t ServiceType) String() string {
	return string(t)
}

func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceHotel, ServiceFlight, ServiceCar, ServicePackage:
		return true
	default:
		return false
	}
}

func ParseServiceType(s string) (ServiceType, error) {
	t := ServiceType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrUnknownServiceType
	}
	return t, nil
}

const (
	MinQuantity = 1
	MaxQuantity = 10
)

type Quantity struct {
	value int
}

func NewQuantity(n int) (Quantity, error) {
	if n < MinQuantity || n > MaxQuantity {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: n}, nil
}

func (q Quantity) Value() int {
	return q.value
}

// MergeQuantity adds to an existing line, saturating at MaxQuantity.
func MergeQuantity(existing, add Quantity) Quantity {
	return Quantity{value: min(existing.value+add.value, MaxQuantity)}
}
