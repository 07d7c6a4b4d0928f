package request

type SavePreferencesRequest struct {
	PreferredActivities  []string `json:"preferred_activities" binding:"omitempty,dive,max=100"`
	FavoriteDestinations []string `json:"favorite_destinations" binding:"omitempty,dive,max=100"`
	TravelStyles         []string `json:"travel_style" binding:"omitempty,dive,max=100"`
	BudgetMin            *float64 `json:"budget_range_min" binding:"omitempty,gte=0"`
	BudgetMax            *float64 `json:"budget_range_max" binding:"omitempty,gte=0"`
}
