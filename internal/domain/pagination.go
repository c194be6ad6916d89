package domain

const MaxActivityPage = 3

type PageParams struct {
	Page    int `json:"page" query:"page"`
	PerPage int `json:"per_page" query:"-"`
}

// SimplePage mirrors a "simple" paginator: no total count, only whether another page follows.
type SimplePage[T any] struct {
	Data     []T  `json:"data"`
	Page     int  `json:"page"`
	PerPage  int  `json:"per_page"`
	HasMore  bool `json:"has_more"`
	HasPrev  bool `json:"has_prev"`
	NextPage *int `json:"next_page,omitempty"`
}

func NewPageParams(page, perPage int) PageParams {
	p := PageParams{Page: page, PerPage: perPage}
	if p.Page < 1 {
		p.Page = 1
	}
	return p
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Limit is one past the page size so the caller can tell whether another page exists.
func (p PageParams) Limit() int {
	return p.PerPage + 1
}

func NewSimplePage[T any](rows []T, params PageParams) SimplePage[T] {
	hasMore := len(rows) > params.PerPage
	if hasMore {
		rows = rows[:params.PerPage]
	}
	if rows == nil {
		rows = []T{}
	}

	page := SimplePage[T]{
		Data:    rows,
		Page:    params.Page,
		PerPage: params.PerPage,
		HasMore: hasMore,
		HasPrev: params.Page > 1,
	}
	if hasMore {
		next := params.Page + 1
		page.NextPage = &next
	}
	return page
}
