package shared

// Filter represents query filter options
type Filter struct {
	Offset   int
	Limit    int
	OrderBy  string
	OrderDir string
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Offset:   0,
		Limit:    100,
		OrderBy:  "created_at",
		OrderDir: "desc",
	}
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, offset, limit int) Paginated[T] {
	return Paginated[T]{
		Items:  items,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}
}
