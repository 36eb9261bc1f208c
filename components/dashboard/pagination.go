package dashboard

// DefaultPageSize is used when a request does not ask for a size.
const DefaultPageSize = 10

// MaxPageSize caps oversized requests.
const MaxPageSize = 100

// PageRequest is the requested page (1-based) and size.
type PageRequest struct {
	Number int
	Size   int
}

// PageInfo describes the slice returned to the caller.
type PageInfo struct {
	Number     int  `json:"number"`
	Size       int  `json:"size"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

func (r PageRequest) normalize(defaultSize int) PageRequest {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if r.Size <= 0 {
		r.Size = defaultSize
	}
	if r.Size > MaxPageSize {
		r.Size = MaxPageSize
	}
	if r.Number <= 0 {
		r.Number = 1
	}
	return r
}

// Paginate slices items for the requested page, clamping out-of-range pages to the last page.
func Paginate[T any](items []T, req PageRequest, defaultSize int) ([]T, PageInfo) {
	req = req.normalize(defaultSize)
	total := len(items)
	pages := (total + req.Size - 1) / req.Size
	if pages == 0 {
		pages = 1
	}
	if req.Number > pages {
		req.Number = pages
	}
	start := (req.Number - 1) * req.Size
	end := start + req.Size
	if end > total {
		end = total
	}
	info := PageInfo{
		Number:     req.Number,
		Size:       req.Size,
		TotalItems: total,
		TotalPages: pages,
		HasPrev:    req.Number > 1,
		HasNext:    req.Number < pages,
	}
	if start >= total {
		return []T{}, info
	}
	return items[start:end], info
}
