package pagination

// Window is a validated page/limit request over an ordered result set.
// Page is 1-based.
type Window struct {
	Page  int
	Limit int
}

// Meta describes the position of a returned page within the full result
// set, derived from the total count and the window bounds.
type Meta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalUsers  int64 `json:"totalUsers"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// NewWindow normalizes raw page/limit values: page < 1 becomes 1,
// limit < 1 becomes DefaultLimit, limit > MaxLimit is capped.
func NewWindow(page, limit int) Window {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Window{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip for this window.
func (w Window) Offset() int {
	return (w.Page - 1) * w.Limit
}

// MetaFor computes pagination metadata given the total count and the
// number of rows actually returned for this window.
func (w Window) MetaFor(total int64, returned int) Meta {
	totalPages := int(total) / w.Limit
	if int(total)%w.Limit != 0 {
		totalPages++
	}
	return Meta{
		CurrentPage: w.Page,
		TotalPages:  totalPages,
		TotalUsers:  total,
		HasNext:     int64(w.Offset()+returned) < total,
		HasPrev:     w.Page > 1,
	}
}
