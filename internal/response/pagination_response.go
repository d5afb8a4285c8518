package response

type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	TotalItems int  `json:"total_items"`
	HasMore    bool `json:"has_more"`
	From       int  `json:"from"`
	To         int  `json:"to"`
}

// Paginate computes the envelope and slice bounds for a page over total
// items. From/To are 1-based and inclusive; both are 0 for an empty page.
func Paginate(total, page, pageSize int) (Pagination, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	p := Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    end < total,
	}
	if end > start {
		p.From = start + 1
		p.To = end
	}
	return p, start, end
}
