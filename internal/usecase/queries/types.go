package queries

import (
	"encoding/json"
	"time"

	"aerotrav/internal/domain/booking"
	"aerotrav/internal/domain/preference"
	"aerotrav/internal/domain/recommendation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
}

type PreferencesView struct {
	PreferredActivities  []string `json:"preferred_activities"`
	FavoriteDestinations []string `json:"favorite_destinations"`
	TravelStyles         []string `json:"travel_style"`
	BudgetMin            *float64 `json:"budget_range_min"`
	BudgetMax            *float64 `json:"budget_range_max"`
}

func NewPreferencesView(p preference.Preferences) PreferencesView {
	return PreferencesView{
		PreferredActivities:  nonNil(p.PreferredActivities),
		FavoriteDestinations: nonNil(p.FavoriteDestinations),
		TravelStyles:         nonNil(p.TravelStyles),
		BudgetMin:            p.BudgetMin,
		BudgetMax:            p.BudgetMax,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type PackageView struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"duration_days"`
	Activities   []string        `json:"activities"`
	TravelStyles []string        `json:"travel_styles"`
	Tags         []string        `json:"tags"`
	DestRegion   *string         `json:"dest_region,omitempty"`
}

type ScoredPackageView struct {
	PackageView
	SimilarityScore float64 `json:"similarity_score"`
	InterestScore   float64 `json:"interest_score"`
	PriceScore      float64 `json:"price_score"`
}

type RecommendationsView struct {
	Packages        []ScoredPackageView       `json:"packages"`
	Pagination      recommendation.Pagination `json:"pagination"`
	UserPreferences PreferencesView           `json:"user_preferences"`
}

type CartItemView struct {
	ID          uuid.UUID       `json:"id"`
	ServiceID   uuid.UUID       `json:"service_id"`
	ServiceType string          `json:"service_type"`
	Quantity    int             `json:"quantity"`
	Details     json.RawMessage `json:"details"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CartView struct {
	Items     []CartItemView `json:"items"`
	ItemCount int            `json:"item_count"`
}

type BookingView struct {
	ID               uuid.UUID          `json:"id"`
	BookingReference string             `json:"booking_reference"`
	ServiceType      string             `json:"service_type"`
	Items            []booking.LineItem `json:"details"`
	TotalAmount      decimal.Decimal    `json:"total_amount"`
	PaymentStatus    string             `json:"payment_status"`
	BookingStatus    string             `json:"booking_status"`
	BookingDate      string             `json:"booking_date"`
	ReturnDate       *string            `json:"return_date,omitempty"`
	SpecialRequests  *string            `json:"special_requests,omitempty"`
	PaymentMethod    string             `json:"payment_method"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

type BookingListView struct {
	Bookings   []BookingView             `json:"bookings"`
	Pagination recommendation.Pagination `json:"pagination"`
}
