package request

// PageQuery binds ?page=&limit=. Zero values fall back to the defaults downstream.
type PageQuery struct {
	Page  int `form:"page" binding:"omitempty,min=0"`
	Limit int `form:"limit" binding:"omitempty,min=0"`
}
