package commands

import (
	"fmt"

	"aerotrav/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnauthenticated    = errs.New("authentication required")
	ErrServiceUnavailable = errs.New("service is no longer available")
)

// UnavailableItemError names the cart item whose service could not be resolved.
type UnavailableItemError struct {
	ServiceType string
	ServiceID   uuid.UUID
}

func (e *UnavailableItemError) Error() string {
	return fmt.Sprintf("%s %s is no longer available", e.ServiceType, e.ServiceID)
}

func unavailable(serviceType string, serviceID uuid.UUID) error {
	return errs.Mark(&UnavailableItemError{ServiceType: serviceType, ServiceID: serviceID}, ErrServiceUnavailable)
}
