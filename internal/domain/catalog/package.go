package catalog

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const StatusActive = "active"

// Package is a bookable travel package as seen by the recommender and checkout.
type Package struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Price        *decimal.Decimal
	BasePrice    *decimal.Decimal
	DurationDays int
	Activities   []string
	TravelStyles []string
	Tags         []string
	DestRegion   *string
	Status       string
}

// EffectivePrice is price when set, else base_price, else zero.
func (p Package) EffectivePrice() decimal.Decimal {
	switch {
	case p.Price != nil:
		return *p.Price
	case p.BasePrice != nil:
		return *p.BasePrice
	default:
		return decimal.Zero
	}
}

// InterestTags is the package side of the interest match.
func (p Package) InterestTags() []string {
	tags := make([]string, 0, len(p.Activities)+len(p.TravelStyles)+1)
	tags = append(tags, p.Activities...)
	tags = append(tags, p.TravelStyles...)
	if p.DestRegion != nil {
		if region := strings.TrimSpace(*p.DestRegion); region != "" {
			tags = append(tags, region)
		}
	}
	return tags
}

// ParseTagList reads a JSON array column. Null, malformed or non-array input
// yields an empty list.
func ParseTagList(raw *string) []string {
	if raw == nil {
		return []string{}
	}
	var items []any
	if err := json.Unmarshal([]byte(*raw), &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
