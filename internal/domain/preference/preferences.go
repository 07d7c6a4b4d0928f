package preference

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrTooManyTags   = errors.New("too many preference tags")
	ErrInvalidTag    = errors.New("preference tag must be between 1 and 100 characters")
	ErrInvalidBudget = errors.New("budget must be non-negative and min must not exceed max")
)

const (
	DefaultBudgetMin = 500.0
	DefaultBudgetMax = 3000.0

	maxTagsPerList = 50
	maxTagLength   = 100
)

// Preferences is the typed view of a user's preference rows.
// A nil budget bound means the user never set it.
type Preferences struct {
	PreferredActivities  []string
	FavoriteDestinations []string
	TravelStyles         []string
	BudgetMin            *float64
	BudgetMax            *float64
}

type BudgetRange struct {
	Min float64
	Max float64
}

func (b BudgetRange) Mid() float64 {
	return (b.Min + b.Max) / 2
}

func (b BudgetRange) HalfSpan() float64 {
	return (b.Max - b.Min) / 2
}

// New validates user input before it is persisted. Tags are trimmed and
// blank entries dropped.
func New(activities, destinations, styles []string, budgetMin, budgetMax *float64) (Preferences, error) {
	var err error
	p := Preferences{BudgetMin: budgetMin, BudgetMax: budgetMax}

	if p.PreferredActivities, err = normalizeTags(activities); err != nil {
		return Preferences{}, err
	}
	if p.FavoriteDestinations, err = normalizeTags(destinations); err != nil {
		return Preferences{}, err
	}
	if p.TravelStyles, err = normalizeTags(styles); err != nil {
		return Preferences{}, err
	}

	for _, v := range []*float64{budgetMin, budgetMax} {
		if v != nil && (*v < 0 || math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return Preferences{}, ErrInvalidBudget
		}
	}
	if budgetMin != nil && budgetMax != nil && *budgetMin > *budgetMax {
		return Preferences{}, ErrInvalidBudget
	}

	return p, nil
}

func normalizeTags(in []string) ([]string, error) {
	if in == nil {
		return nil, nil
	}
	if len(in) > maxTagsPerList {
		return nil, ErrTooManyTags
	}
	out := make([]string, 0, len(in))
	for _, tag := range in {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if len([]rune(tag)) > maxTagLength {
			return nil, ErrInvalidTag
		}
		out = append(out, tag)
	}
	return out, nil
}

// Tags is the user's interest set: activities, travel styles and destinations.
func (p Preferences) Tags() []string {
	tags := make([]string, 0, len(p.PreferredActivities)+len(p.TravelStyles)+len(p.FavoriteDestinations))
	tags = append(tags, p.PreferredActivities...)
	tags = append(tags, p.TravelStyles...)
	tags = append(tags, p.FavoriteDestinations...)
	return tags
}

// Budget fills a missing bound with its default and orders the pair.
func (p Preferences) Budget() BudgetRange {
	b := BudgetRange{Min: DefaultBudgetMin, Max: DefaultBudgetMax}
	if p.BudgetMin != nil {
		b.Min = *p.BudgetMin
	}
	if p.BudgetMax != nil {
		b.Max = *p.BudgetMax
	}
	if b.Min > b.Max {
		b.Min, b.Max = b.Max, b.Min
	}
	return b
}
