package model

// PageQuery 分頁查詢參數
type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Pagination 分頁資訊
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// Normalize clamps the query to sane bounds and fills defaults.
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}
}

// NewPagination computes the envelope for a page over total rows.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
