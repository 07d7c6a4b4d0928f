package booking

import (
	"encoding/json"
	"errors"

	"aerotrav/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNoItems = errors.New("booking requires at least one item")

// LineItem is the frozen snapshot of one resolved cart line stored in bookings.details.
type LineItem struct {
	ServiceID   uuid.UUID        `json:"service_id"`
	ServiceType cart.ServiceType `json:"service_type"`
	ServiceName string           `json:"service_name"`
	Quantity    int              `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	TotalPrice  decimal.Decimal  `json:"total_price"`
	Details     json.RawMessage  `json:"details"`
	ServiceInfo map[string]any   `json:"service_info"`
}

func NewLineItem(serviceID uuid.UUID, serviceType cart.ServiceType, name string, qty cart.Quantity, unitPrice decimal.Decimal, details json.RawMessage, info map[string]any) LineItem {
	if len(details) == 0 {
		details = json.RawMessage(`{}`)
	}
	if info == nil {
		info = map[string]any{}
	}
	return LineItem{
		ServiceID:   serviceID,
		ServiceType: serviceType,
		ServiceName: name,
		Quantity:    qty.Value(),
		UnitPrice:   unitPrice,
		TotalPrice:  unitPrice.Mul(decimal.NewFromInt(int64(qty.Value()))),
		Details:     details,
		ServiceInfo: info,
	}
}

// Total sums unit_price × quantity over items, rounded to the cent.
func Total(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.Round(2)
}

// ResolveServiceType returns the shared service type, or "mixed".
func ResolveServiceType(items []LineItem) string {
	if len(items) == 0 {
		return ""
	}
	first := items[0].ServiceType
	for _, it := range items[1:] {
		if it.ServiceType != first {
			return ServiceTypeMixed
		}
	}
	return first.String()
}

func MarshalItems(items []LineItem) ([]byte, error) {
	return json.Marshal(items)
}

func UnmarshalItems(raw []byte) ([]LineItem, error) {
	if len(raw) == 0 {
		return []LineItem{}, nil
	}
	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
