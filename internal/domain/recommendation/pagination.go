package recommendation

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

// NormalizePage applies defaults to non-positive values and caps limit.
func NormalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Paginate slices items in memory. page and limit must already be positive.
func Paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	total := len(items)
	offset := total
	if page-1 <= total/limit {
		offset = (page - 1) * limit
	}

	start := min(offset, total)
	end := min(offset+limit, total)

	return items[start:end], Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   (total + limit - 1) / limit,
		HasNext: offset+limit < total,
		HasPrev: page > 1,
	}
}
