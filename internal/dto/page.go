package dto

// Page is the envelope for paginated list responses.
type Page[T any] struct {
	Items []T `json:"data"`
	Total int `json:"total"`
}

// NewPage wraps items and the total row count. A nil slice is encoded as [].
func NewPage[T any](items []T, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total}
}
