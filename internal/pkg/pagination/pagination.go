package pagination

// Params represents pagination parameters
type Params struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Meta represents pagination metadata
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// DefaultLimit is the default number of items per page
const DefaultLimit = 5

// MaxLimit is the maximum number of items per page
const MaxLimit = 100

// Normalize clamps page and limit into usable ranges
func Normalize(page, limit int) Params {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// GetMeta calculates pagination metadata. An empty collection still has
// one (empty) page.
func GetMeta(params Params, total int) Meta {
	totalPages := total / params.Limit
	if total%params.Limit > 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	return Meta{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
		HasPrev:    params.Page > 1,
	}
}

// Bounds returns the half-open slice range [start, end) for the page
// within a collection of the given length. A page past the end yields an
// empty range rather than an error.
func Bounds(params Params, total int) (start, end int) {
	start = (params.Page - 1) * params.Limit
	if start > total {
		start = total
	}
	end = start + params.Limit
	if end > total {
		end = total
	}
	return start, end
}
