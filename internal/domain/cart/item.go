package cart

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDetails = errors.New("details must be a JSON object")

// Item is one cart line, unique per (user, service, service type).
type Item struct {
	id          uuid.UUID
	userID      uuid.UUID
	serviceID   uuid.UUID
	serviceType ServiceType
	quantity    Quantity
	details     json.RawMessage
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(userID, serviceID uuid.UUID, serviceType ServiceType, quantity Quantity, details json.RawMessage, now time.Time) (*Item, error) {
	if !serviceType.IsValid() {
		return nil, ErrUnknownServiceType
	}
	normalized, err := normalizeDetails(details)
	if err != nil {
		return nil, err
	}
	return &Item{
		id:          uuid.New(),
		userID:      userID,
		serviceID:   serviceID,
		serviceType: serviceType,
		quantity:    quantity,
		details:     normalized,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func normalizeDetails(details json.RawMessage) (json.RawMessage, error) {
	if len(details) == 0 || string(details) == "null" {
		return json.RawMessage(`{}`), nil
	}
	var obj map[string]any
	if err := json.Unmarshal(details, &obj); err != nil {
		return nil, ErrInvalidDetails
	}
	return details, nil
}

func (i *Item) ID() uuid.UUID { return i.id }
func (i *Item) UserID() uuid.UUID { return i.userID }
func (i *Item) ServiceID() uuid.UUID { return i.serviceID }
func (i *Item) ServiceType() ServiceType { return i.serviceType }
func (i *Item) Quantity() Quantity { return i.quantity }
func (i *Item) Details() json.RawMessage { return i.details }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
